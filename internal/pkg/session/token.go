// Package session binds a browser to its server-side view state. The
// session cookie is a signed token carrying only the session id; it is not
// an authentication mechanism.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const CookieName = "hris_session"

var ErrInvalidSession = errors.New("invalid session token")

type contextKey struct{}

type Manager struct {
	tokenAuth *jwtauth.JWTAuth
	ttl       time.Duration
	secure    bool
	now       func() time.Time
}

// NewManager signs session tokens with secret. Tokens and cookies expire
// after ttl without a request.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		ttl:       ttl,
		secure:    secure,
		now:       time.Now,
	}
}

// Issue signs a token for sid.
func (m *Manager) Issue(sid string) (token string, expiresAt time.Time, err error) {
	expiresAt = m.now().Add(m.ttl)
	_, token, err = m.tokenAuth.Encode(map[string]interface{}{
		"sid":  sid,
		"type": "session",
		"exp":  expiresAt.Unix(),
	})
	return token, expiresAt, err
}

// Parse verifies a token and returns its session id.
func (m *Manager) Parse(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(m.tokenAuth, tokenString)
	if err != nil {
		return "", errors.Join(ErrInvalidSession, err)
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "session" {
		return "", ErrInvalidSession
	}

	sidVal, ok := token.Get("sid")
	if !ok {
		return "", ErrInvalidSession
	}
	sid, ok := sidVal.(string)
	if !ok || sid == "" {
		return "", ErrInvalidSession
	}

	return sid, nil
}

func (m *Manager) Cookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware resolves the session id from the cookie, starting a new
// session when the cookie is missing or invalid. The cookie is re-issued on
// every request so idle expiry slides.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(CookieName); err == nil {
			sid, _ = m.Parse(c.Value)
		}
		if sid == "" {
			sid = uuid.NewString()
		}

		token, expiresAt, err := m.Issue(sid)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, m.Cookie(token, expiresAt))

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), sid)))
	})
}

func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, contextKey{}, sid)
}

func IDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(contextKey{}).(string)
	return sid, ok && sid != ""
}
