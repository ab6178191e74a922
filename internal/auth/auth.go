// Package auth gates API requests behind a shared bearer secret.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync/atomic"
)

// Authenticator decides whether a presented credential is acceptable.
type Authenticator interface {
	Check(credential string) bool
}

// BearerAuthenticator accepts exactly one shared secret. The secret can be
// replaced at runtime (config reload) without locking request handling.
// An empty secret accepts nothing.
type BearerAuthenticator struct {
	secret atomic.Pointer[string]
}

// NewBearerAuthenticator creates an authenticator for secret.
func NewBearerAuthenticator(secret string) *BearerAuthenticator {
	a := &BearerAuthenticator{}
	a.SetSecret(secret)
	return a
}

// SetSecret swaps the accepted secret.
func (a *BearerAuthenticator) SetSecret(secret string) {
	a.secret.Store(&secret)
}

// Enabled reports whether a non-empty secret is configured.
func (a *BearerAuthenticator) Enabled() bool {
	return *a.secret.Load() != ""
}

// Check uses constant-time comparison to prevent timing attacks.
func (a *BearerAuthenticator) Check(credential string) bool {
	secret := *a.secret.Load()
	if secret == "" || credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(secret)) == 1
}

// ExtractBearer returns the token from an "Authorization: Bearer <token>"
// header, or "" when the header is absent or uses another scheme.
func ExtractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}
