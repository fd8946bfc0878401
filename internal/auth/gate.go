package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Gate checks the shared admin password. The configured secret is either the
// plain password or a bcrypt hash of it.
type Gate struct {
	secret string
	hashed bool
}

func NewGate(secret string) *Gate {
	return &Gate{
		secret: secret,
		hashed: isBcryptHash(secret),
	}
}

// Configured reports whether a secret is set. Without one the gate never opens.
func (g *Gate) Configured() bool {
	return g.secret != ""
}

func (g *Gate) Check(password string) bool {
	if !g.Configured() || password == "" {
		return false
	}
	if g.hashed {
		return bcrypt.CompareHashAndPassword([]byte(g.secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(password)) == 1
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
