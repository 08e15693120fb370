// Package auth decides whether a request may reach an authoring operation.
//
// A Gate is built once from configuration. With no password configured it
// allows everything and never touches the session; otherwise a single
// boolean in the caller's session bag records a successful login.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SessionKey is the session bag entry marking an authenticated client.
const SessionKey = "slides_authenticated"

// Decision is the outcome of Authorize.
type Decision int

const (
	// Allow lets the request proceed.
	Allow Decision = iota
	// Challenge replaces the response with the login form.
	Challenge
	// ChallengeInvalid is Challenge after a wrong password was submitted.
	ChallengeInvalid
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Challenge:
		return "challenge"
	case ChallengeInvalid:
		return "challenge_invalid"
	}
	return fmt.Sprintf("decision(%d)", int(d))
}

// Session is the per-client session bag. gin-contrib/sessions.Session
// satisfies it.
type Session interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Clear()
	Save() error
}

// Attempt carries a login submission found on the request, if any.
type Attempt struct {
	Submitted bool
	Password  string
}

// Options configures a Gate. Both fields empty disables authentication.
type Options struct {
	Password     string
	PasswordHash string
}

// Gate is the authentication state machine shared by all requests.
type Gate struct {
	password []byte
	hash     []byte
}

// New builds a Gate. When both a hash and a plain password are given, the
// hash wins.
func New(opts Options) *Gate {
	g := &Gate{}
	if opts.PasswordHash != "" {
		g.hash = []byte(opts.PasswordHash)
		return g
	}
	if opts.Password != "" {
		g.password = []byte(opts.Password)
	}
	return g
}

// Enabled reports whether a password is configured.
func (g *Gate) Enabled() bool {
	return g != nil && (len(g.hash) > 0 || len(g.password) > 0)
}

// Authorize applies the gate to one request.
func (g *Gate) Authorize(sess Session, attempt Attempt) (Decision, error) {
	if !g.Enabled() {
		return Allow, nil
	}

	if authed, ok := sess.Get(SessionKey).(bool); ok && authed {
		return Allow, nil
	}

	if !attempt.Submitted {
		return Challenge, nil
	}

	if !g.matches(attempt.Password) {
		return ChallengeInvalid, nil
	}

	sess.Set(SessionKey, true)
	if err := sess.Save(); err != nil {
		return Challenge, fmt.Errorf("save session: %w", err)
	}
	return Allow, nil
}

// Logout forgets the client's authenticated state.
func (g *Gate) Logout(sess Session) error {
	sess.Clear()
	return sess.Save()
}

func (g *Gate) matches(password string) bool {
	if len(g.hash) > 0 {
		err := bcrypt.CompareHashAndPassword(g.hash, []byte(password))
		return err == nil
	}
	return subtle.ConstantTimeCompare(g.password, []byte(password)) == 1
}

// HashPassword returns a bcrypt hash suitable for Options.PasswordHash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
