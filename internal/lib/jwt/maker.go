// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// Токен несет идентичность пользователя и снимок его разрешений на момент
// выпуска: последующие изменения роли не влияют на уже выданный токен
// до его перевыпуска, staleness ограничен временем жизни токена.
package jwt

import (
	"time"

	"github.com/invtrack/inventtrack/internal/models"
)

// Maker описывает интерфейс выпуска и разбора токенов доступа.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пользователя.
	GenerateToken(user *models.User) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker на основе секретного ключа HS256
// и времени жизни токена.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создает новый MakerImpl с заданным ключом и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
