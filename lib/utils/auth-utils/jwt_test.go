package authutils

import (
	"testing"
	"workvera-backend/config"
	"workvera-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120

	t.Run(`refresh token round trip`, func(t *testing.T) {
		refresh, err := GetRefreshToken("u1", "User")
		require.NoError(t, err)
		userID, err := ParseRefreshToken(refresh)
		require.NoError(t, err)
		require.Equal(t, "u1", userID)
	})
	t.Run(`access token is not a refresh token`, func(t *testing.T) {
		access, err := GetToken("u1", "User", models.RoleSeeker)
		require.NoError(t, err)
		_, err = ParseRefreshToken(access)
		require.Error(t, err)

		token, err := jwt.Parse(access, func(*jwt.Token) (interface{}, error) { return []byte("test-secret"), nil })
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.True(t, IsAccessToken(claims))
		require.Equal(t, "seeker", claims["role"])
	})
	t.Run(`foreign signature`, func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "typ": "refresh"})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, err = ParseRefreshToken(signed)
		require.Error(t, err)
	})
}
