// Package session holds the client's authentication state for the lifetime
// of the program. The token is an opaque string; its mere presence counts as
// "authenticated". It is passed explicitly to whoever needs it instead of
// living in an ambient global.
package session

// Session is the explicit session context. Not safe for concurrent use; the
// client is single-goroutine by design.
type Session struct {
	token string
}

func New() *Session {
	return &Session{}
}

// SetToken stores the token obtained from a successful login.
func (s *Session) SetToken(token string) {
	s.token = token
}

// Clear drops the token; used on logout.
func (s *Session) Clear() {
	s.token = ""
}

// Token returns the stored token, empty when logged out.
func (s *Session) Token() string {
	return s.token
}

// Authenticated reports whether a token is present. Presence is the only
// check the client performs.
func (s *Session) Authenticated() bool {
	return s.token != ""
}
