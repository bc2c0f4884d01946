package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/permissions"
)

func testUser(id int64, email string, superuser bool) *models.User {
	return &models.User{
		ID:          id,
		Email:       email,
		IsActive:    true,
		IsSuperuser: superuser,
	}
}

func TestMaker_GenerateAndParseToken(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewMaker(secretKey, tokenTTL)

	tests := []struct {
		name      string
		user      *models.User
		wantPerms []string
	}{
		{
			name:      "ordinary user gets the view set",
			user:      testUser(1, "alice@example.com", false),
			wantPerms: permissions.For(false),
		},
		{
			name:      "elevated user gets the full set",
			user:      testUser(2, "root@example.com", true),
			wantPerms: permissions.For(true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.user)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.user.ID, claims.UserID)
			assert.Equal(t, tt.user.Email, claims.Email)
			assert.Equal(t, tt.user.IsSuperuser, claims.IsSuperuser)
			assert.ElementsMatch(t, tt.wantPerms, claims.Permissions)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

// Разрешения в токене — снимок на момент выпуска: понижение роли
// не меняет уже выданный токен.
func TestMaker_PermissionsAreSnapshot(t *testing.T) {
	maker := NewMaker("test_secret_key", 15*time.Minute)

	user := testUser(5, "boss@example.com", true)
	token, err := maker.GenerateToken(user)
	require.NoError(t, err)

	user.IsSuperuser = false

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.ElementsMatch(t, permissions.For(true), claims.Permissions)
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey, 15*time.Minute)

	validToken, err := maker.GenerateToken(testUser(1, "alice@example.com", false))
	require.NoError(t, err)

	expiredMaker := NewMaker(secretKey, -time.Hour)
	expiredToken, err := expiredMaker.GenerateToken(testUser(1, "alice@example.com", false))
	require.NoError(t, err)

	wrongKeyMaker := NewMaker("wrong_secret_key", 15*time.Minute)
	wrongKeyToken, err := wrongKeyMaker.GenerateToken(testUser(1, "alice@example.com", false))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: expiredToken},
		{name: "wrong secret key", token: wrongKeyToken},
		{name: "tampered token", token: validToken + "tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestMaker_TokenExpiration(t *testing.T) {
	maker := NewMaker("test_secret_key", 100*time.Millisecond)

	token, err := maker.GenerateToken(testUser(1, "alice@example.com", false))
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(150 * time.Millisecond)

	claims, err = maker.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
