package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminSubject is the only subject tokens are issued for.
const AdminSubject = "admin"

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs HS256 bearer tokens for API clients. Tokens carry no
// expiry, matching the browser session. The jti doubles as the session id.
type TokenIssuer struct {
	key []byte
	now func() time.Time
}

func NewTokenIssuer(key []byte) *TokenIssuer {
	return &TokenIssuer{key: key, now: time.Now}
}

func (t *TokenIssuer) Issue() (token string, sid string, err error) {
	sid = uuid.NewString()
	claims := jwt.RegisteredClaims{
		Subject:  AdminSubject,
		ID:       sid,
		IssuedAt: jwt.NewNumericDate(t.now()),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, sid, nil
}

// Verify checks the signature and subject and returns the token's session id.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject != AdminSubject || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
