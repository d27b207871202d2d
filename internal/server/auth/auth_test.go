package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.True(t, CheckPassword(hash, "correct horse"))
	require.False(t, CheckPassword(hash, "wrong horse"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionToken(42, secret, time.Hour)
	require.NoError(t, err)

	userID, err := UserIDFromSessionToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(42, []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = UserIDFromSessionToken(token, []byte("secret-b"))
	require.ErrorIs(t, err, common.ErrInvalidSessionToken)
}

func TestSessionTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionToken(42, secret, -time.Minute)
	require.NoError(t, err)

	_, err = UserIDFromSessionToken(token, secret)
	require.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := UserIDFromSessionToken("not.a.token", []byte("test-secret"))
	require.ErrorIs(t, err, common.ErrInvalidSessionToken)
}
