package auth

import (
	"crypto/sha256"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	adminSessionName = "frames-admin"
	flashSessionName = "frames-flash"

	sessionAuthenticatedKey = "authenticated"
	sessionIDKey            = "sid"
)

var ErrNoSession = errors.New("no admin session")

// Manager keeps the admin login in a signed, encrypted cookie. The cookie has
// no MaxAge so it ends with the browser session.
type Manager struct {
	store *sessions.CookieStore
	key   []byte
}

// NewManager builds the cookie store from secret. An empty secret gets a
// random key, which means sessions do not survive a restart.
func NewManager(secret string, secure bool) *Manager {
	var key []byte
	if secret == "" {
		key = securecookie.GenerateRandomKey(32)
	} else {
		sum := sha256.Sum256([]byte(secret))
		key = sum[:]
	}

	hashKey := sha256.Sum256(append([]byte("hash:"), key...))
	store := sessions.NewCookieStore(hashKey[:], key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, key: key}
}

// SigningKey is shared with the token issuer.
func (m *Manager) SigningKey() []byte {
	return m.key
}

// Login marks the session authenticated and returns its id.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request) (string, error) {
	session, _ := m.store.Get(r, adminSessionName)

	sid := uuid.NewString()
	session.Values[sessionAuthenticatedKey] = true
	session.Values[sessionIDKey] = sid

	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return sid, nil
}

// Logout destroys the session and returns the id it had, if any.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) (string, error) {
	session, _ := m.store.Get(r, adminSessionName)
	sid, _ := session.Values[sessionIDKey].(string)

	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1

	return sid, session.Save(r, w)
}

// SessionID returns the id of an authenticated session.
func (m *Manager) SessionID(r *http.Request) (string, error) {
	session, err := m.store.Get(r, adminSessionName)
	if err != nil {
		return "", err
	}

	ok, _ := session.Values[sessionAuthenticatedKey].(bool)
	sid, _ := session.Values[sessionIDKey].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, _ := m.store.Get(r, flashSessionName)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes pops all pending flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := m.store.Get(r, flashSessionName)
	if err != nil {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
