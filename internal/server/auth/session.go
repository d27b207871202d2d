package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Algo-jtx/SoulSpace/internal/common"
)

// Claims carries the session's user id on top of the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// GenerateSessionToken mints an HS256 token identifying userID, valid for
// ttl. The jti makes otherwise-identical sessions distinguishable in logs.
func GenerateSessionToken(userID int64, secretKey []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UserIDFromSessionToken validates the token and returns the user id it
// names. Expired tokens yield common.ErrSessionExpired, everything else
// invalid yields common.ErrInvalidSessionToken.
func UserIDFromSessionToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrSessionExpired
		}
		return 0, common.ErrInvalidSessionToken
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, common.ErrInvalidSessionToken
	}

	return claims.UserID, nil
}
