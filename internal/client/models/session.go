package models

import "time"

// Identity is the signed-in user.
type Identity struct {
	UserID string
	Email  string
}

// Session is what a successful sign-in or refresh yields.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     Identity
}

type SessionEventKind int

const (
	SignedIn SessionEventKind = iota
	TokenRefreshed
	SignedOut
	SessionExpired
)

func (k SessionEventKind) String() string {
	switch k {
	case SignedIn:
		return "signed_in"
	case TokenRefreshed:
		return "token_refreshed"
	case SignedOut:
		return "signed_out"
	case SessionExpired:
		return "session_expired"
	}
	return "unknown"
}

// SessionEvent is published by the data store client whenever its session
// changes. Session is nil for SignedOut and SessionExpired.
type SessionEvent struct {
	Kind    SessionEventKind
	Session *Session
}
