package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inovacc/catalogr/internal/api"
	"github.com/inovacc/catalogr/internal/database"
	"github.com/inovacc/catalogr/internal/model"
)

// ErrNoSession is returned when an operation needs an authenticated
// session and none is available.
var ErrNoSession = errors.New("not signed in, run 'catalogr login' first")

// SessionManager owns the persisted session: it signs in, restores a
// stored token on startup and attaches whatever it finds to the API
// client.
type SessionManager struct {
	client *api.Client
	store  database.Store
	logger *slog.Logger
}

// NewSessionManager creates a session manager bound to a client and store.
func NewSessionManager(client *api.Client, store database.Store, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionManager{client: client, store: store, logger: logger}
}

// Restore loads a previously persisted session, attaches its token and
// verifies it against the server. Any failure along the way (nothing
// stored, expired token, network error, rejection) simply reports an
// unauthenticated state; restore is never fatal.
func (m *SessionManager) Restore(ctx context.Context) (*model.Session, bool) {
	sess, err := m.store.GetSession()
	if err != nil {
		m.logger.Debug("session restore failed", slog.String("error", err.Error()))

		return nil, false
	}

	if sess == nil {
		return nil, false
	}

	if sess.Expired() {
		m.logger.Debug("stored session expired", slog.Time("expiry", sess.Expiry))

		return nil, false
	}

	m.client.SetToken(sess.Token)

	if err := m.client.Check(ctx); err != nil {
		m.logger.Debug("session check rejected", slog.String("error", err.Error()))
		m.client.SetToken("")

		return nil, false
	}

	return sess, true
}

// SignIn exchanges credentials for a session, persists it and attaches
// the token to the client. On failure nothing is persisted and the client
// keeps whatever token it had.
func (m *SessionManager) SignIn(ctx context.Context, username, password string) (*model.Session, error) {
	sess, err := m.client.SignIn(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}

	if err := m.store.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.client.SetToken(sess.Token)

	return sess, nil
}

// Logout deletes the locally persisted session. The API has no sign-out
// endpoint, so the server-side token simply ages out.
func (m *SessionManager) Logout() error {
	m.client.SetToken("")

	return m.store.DeleteSession()
}
