package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/permissions"
)

// Claims описывает данные, хранящиеся в токене: идентичность пользователя
// и снимок его разрешений на момент выпуска.
type Claims struct {
	UserID               int64    `json:"user_id"`
	Email                string   `json:"email"`
	IsSuperuser          bool     `json:"is_superuser"`
	Permissions          []string `json:"permissions"`
	jwt.RegisteredClaims          // стандартные claims: ExpiresAt, IssuedAt и пр.
}

// GenerateToken выпускает HS256 токен с идентичностью пользователя и
// набором разрешений, вычисленным из его роли. Срок действия задается
// полем tokenTTL.
func (j *MakerImpl) GenerateToken(user *models.User) (string, error) {
	const op = "jwt.GenerateToken"
	claims := Claims{
		UserID:      user.ID,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
		Permissions: permissions.For(user.IsSuperuser),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken разбирает токен, проверяет подпись и срок действия.
// Возвращает Claims, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
