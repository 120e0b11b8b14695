package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/client/repositories/session"
	"github.com/dmitrijs2005/touchbase/internal/logging"
)

// SessionManager owns who is signed in. Identity changes arrive as events
// from the data store client; this type applies them to the State and keeps
// the refresh token on disk so the next run can resume.
type SessionManager struct {
	client client.Client
	repo   session.Repository
	state  *State
	logger logging.Logger

	mu          sync.Mutex
	unsubscribe func()
}

func NewSessionManager(c client.Client, repo session.Repository, state *State, logger logging.Logger) *SessionManager {
	return &SessionManager{client: c, repo: repo, state: state, logger: logger}
}

// Start subscribes to session changes. Calling it twice is a no-op.
func (m *SessionManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unsubscribe == nil {
		m.unsubscribe = m.client.Subscribe(m.handle)
	}
}

// Close unsubscribes. Events published afterwards are not applied.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *SessionManager) handle(ev models.SessionEvent) {
	ctx := context.Background()
	m.logger.Debug(ctx, "session event", "kind", ev.Kind.String())

	switch ev.Kind {
	case models.SignedIn, models.TokenRefreshed:
		if ev.Session == nil {
			return
		}
		m.state.SetIdentity(&ev.Session.Identity)
		m.persist(ctx, ev.Session)
	case models.SignedOut, models.SessionExpired:
		m.state.SetIdentity(nil)
		if err := m.repo.Clear(ctx); err != nil {
			m.logger.Warn(ctx, "failed to clear saved session", "error", err)
		}
	}
}

func (m *SessionManager) persist(ctx context.Context, s *models.Session) {
	for k, v := range map[string]string{
		session.KeyRefreshToken: s.RefreshToken,
		session.KeyUserID:       s.Identity.UserID,
		session.KeyEmail:        s.Identity.Email,
	} {
		if err := m.repo.Set(ctx, k, v); err != nil {
			m.logger.Warn(ctx, "failed to save session", "key", k, "error", err)
		}
	}
}

func (m *SessionManager) Identity() *models.Identity {
	return m.state.Identity()
}

func credentials(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", &ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return "", &ValidationError{Field: "password", Reason: "is required"}
	}
	return email, nil
}

// SignUp creates an account. It reports whether the store wants the address
// confirmed before the first sign-in. No session is established.
func (m *SessionManager) SignUp(ctx context.Context, email, password string) (bool, error) {
	email, err := credentials(email, password)
	if err != nil {
		return false, err
	}
	return m.client.SignUp(ctx, email, password)
}

func (m *SessionManager) Confirm(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return &ValidationError{Field: "token", Reason: "is required"}
	}
	return m.client.Confirm(ctx, token)
}

// SignIn authenticates and loads the user's data. A store rejection is
// returned as is, so its message reaches the user unchanged.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) error {
	email, err := credentials(email, password)
	if err != nil {
		return err
	}
	if _, err := m.client.SignIn(ctx, email, password); err != nil {
		return err
	}
	if err := m.state.Reload(ctx); err != nil {
		return fmt.Errorf("signed in, but loading data failed: %w", err)
	}
	return nil
}

// SignOut revokes the session remotely when possible. Local identity, the
// snapshot and the saved token are dropped regardless.
func (m *SessionManager) SignOut(ctx context.Context) error {
	err := m.client.SignOut(ctx)

	m.state.SetIdentity(nil)
	if cerr := m.repo.Clear(ctx); cerr != nil {
		m.logger.Warn(ctx, "failed to clear saved session", "error", cerr)
	}

	if errors.Is(err, client.ErrNotSignedIn) {
		return err
	}
	if err != nil {
		m.logger.Warn(ctx, "remote sign out failed", "error", err)
	}
	return nil
}

// Restore resumes the session saved by a previous run. It reports whether a
// session was resumed. A token the store refuses is forgotten; any other
// failure keeps it for the next run.
func (m *SessionManager) Restore(ctx context.Context) (bool, error) {
	token, err := m.repo.Get(ctx, session.KeyRefreshToken)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}

	if _, err := m.client.RefreshSession(ctx, token); err != nil {
		m.logger.Info(ctx, "saved session not resumed", "error", err)
		if !IsSessionRejected(err) {
			return false, err
		}
		if cerr := m.repo.Clear(ctx); cerr != nil {
			m.logger.Warn(ctx, "failed to clear saved session", "error", cerr)
		}
		return false, err
	}

	if err := m.state.Reload(ctx); err != nil {
		return true, fmt.Errorf("session resumed, but loading data failed: %w", err)
	}
	return true, nil
}

// IsSessionRejected reports whether err means the store no longer accepts the
// session, as opposed to the store being unreachable.
func IsSessionRejected(err error) bool {
	return errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrSessionExpired)
}
