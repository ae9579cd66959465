package usecase

//go:generate mockgen -source=session.go -destination=../../tests/mock/usecase/session_mock.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"booking-console/internal/domain/session"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/pkg/jwt"
	"booking-console/internal/usecase/shared"
)

var ErrSessionSuperseded = errs.New("session changed while the request was in flight")

// SessionManager owns the authentication state and is the only writer of the
// credential store.
type SessionManager interface {
	// Restore rebuilds the session from persisted credentials on start.
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	RefreshIdentity(ctx context.Context) error
	// HandleUnauthorized forces a logout when token is still the persisted access token.
	HandleUnauthorized(ctx context.Context, token string)
	Current() session.Session
	HasPersistedToken(ctx context.Context) bool
	Subscribe(fn func(session.Session)) (unsubscribe func())
}

type sessionManagerImpl struct {
	store  shared.CredentialStore
	api    shared.AuthAPI
	logger *slog.Logger

	mu          sync.Mutex
	state       session.Session
	generation  shared.Generation
	// signOuts only moves on an explicit Logout, so identity refreshes never supersede a login.
	signOuts    shared.Generation
	subscribers map[int]func(session.Session)
	nextSubID   int
}

func NewSessionManager(store shared.CredentialStore, api shared.AuthAPI, logger *slog.Logger) SessionManager {
	return &sessionManagerImpl{
		store:       store,
		api:         api,
		logger:      logger,
		state:       session.Session{Status: session.StatusUninitialized},
		subscribers: make(map[int]func(session.Session)),
	}
}

func (m *sessionManagerImpl) Restore(ctx context.Context) error {
	m.mu.Lock()
	username, err := m.store.Get(ctx, session.KeyUser)
	if err != nil {
		m.logger.Warn("Failed to read persisted username", slog.String("error", err.Error()))
	}
	snap := m.setLocked(session.Session{Status: session.StatusLoading, Username: username})
	m.mu.Unlock()
	m.notify(snap)

	return m.RefreshIdentity(ctx)
}

func (m *sessionManagerImpl) Login(ctx context.Context, username, password string) error {
	creds, err := session.NewCredentials(username, password)
	if err != nil {
		return errs.NewLocalCause(errs.ErrValidationFailed, err, "Please enter username and password.")
	}

	m.mu.Lock()
	signOut := m.signOuts.Current()
	m.mu.Unlock()

	pair, err := m.api.Login(ctx, creds)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if !m.signOuts.IsCurrent(signOut) {
		m.mu.Unlock()
		m.logger.Info("Discarding login superseded by a logout", slog.String("username", creds.Username))
		return ErrSessionSuperseded
	}
	m.generation.Next()

	if err := m.persistLocked(ctx, pair, creds.Username); err != nil {
		m.mu.Unlock()
		return err
	}

	snap := m.setLocked(session.Session{
		Status:         session.StatusAuthenticated,
		Username:       creds.Username,
		TokenExpiresAt: tokenExpiry(pair.AccessToken),
	})
	m.mu.Unlock()
	m.notify(snap)

	m.logger.Info("Logged in", slog.String("username", creds.Username))
	return m.RefreshIdentity(ctx)
}

func (m *sessionManagerImpl) persistLocked(ctx context.Context, pair session.TokenPair, username string) error {
	values := map[string]string{
		session.KeyAccess:  pair.AccessToken,
		session.KeyRefresh: pair.RefreshToken,
		session.KeyUser:    username,
	}
	for _, key := range session.Keys {
		if err := m.store.Set(ctx, key, values[key]); err != nil {
			if clearErr := m.store.Clear(ctx); clearErr != nil {
				m.logger.Error("Failed to roll back partial credentials", slog.String("error", clearErr.Error()))
			}
			return errs.Wrap(err, "persist credentials")
		}
	}
	return nil
}

func (m *sessionManagerImpl) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.signOuts.Next()
	snap, err := m.logoutLocked(ctx)
	m.mu.Unlock()
	m.notify(snap)
	return err
}

// logoutLocked invalidates every in-flight login and identity refresh before clearing.
func (m *sessionManagerImpl) logoutLocked(ctx context.Context) (session.Session, error) {
	m.generation.Next()
	err := m.store.Clear(ctx)
	snap := m.setLocked(session.Session{Status: session.StatusAnonymous})
	if err != nil {
		m.logger.Error("Failed to clear credentials", slog.String("error", err.Error()))
		return snap, errs.Wrap(err, "clear credentials")
	}
	return snap, nil
}

func (m *sessionManagerImpl) RefreshIdentity(ctx context.Context) error {
	m.mu.Lock()
	token, err := m.store.Get(ctx, session.KeyAccess)
	if err != nil || token == "" {
		m.generation.Next()
		snap := m.setLocked(session.Session{Status: session.StatusAnonymous})
		m.mu.Unlock()
		m.notify(snap)
		if err != nil {
			return errs.Wrap(err, "read access token")
		}
		return nil
	}

	gen := m.generation.Next()
	var snap *session.Session
	if !m.state.Status.IsResolved() || m.state.Status == session.StatusAnonymous {
		loading := m.state
		loading.Status = session.StatusLoading
		loading.IsAdmin = false
		loading.PrivilegeResolved = false
		s := m.setLocked(loading)
		snap = &s
	}
	m.mu.Unlock()
	if snap != nil {
		m.notify(*snap)
	}

	identity, err := m.api.Me(ctx)

	m.mu.Lock()
	if !m.generation.IsCurrent(gen) {
		m.mu.Unlock()
		m.logger.Debug("Discarding stale identity result")
		return nil
	}

	var next session.Session
	switch {
	case err == nil:
		username := identity.Username
		if username == "" {
			username = m.state.Username
		}
		if username != m.state.Username {
			if setErr := m.store.Set(ctx, session.KeyUser, username); setErr != nil {
				m.logger.Warn("Failed to persist username", slog.String("error", setErr.Error()))
			}
		}
		next = session.Session{
			Status:            session.StatusAuthenticated,
			Username:          username,
			IsAdmin:           identity.IsAdmin(),
			PrivilegeResolved: true,
			TokenExpiresAt:    tokenExpiry(token),
		}
	case errors.Is(err, errs.ErrUnauthorized):
		m.logger.Info("Access token rejected, logging out")
		s, logoutErr := m.logoutLocked(ctx)
		m.mu.Unlock()
		m.notify(s)
		return logoutErr
	default:
		// Privilege is never inferred from an ambiguous failure.
		m.logger.Warn("Identity check failed, dropping admin privilege",
			slog.String("kind", errs.Kind(err)),
			slog.String("error", err.Error()),
		)
		next = session.Session{
			Status:            session.StatusAuthenticated,
			Username:          m.state.Username,
			IsAdmin:           false,
			PrivilegeResolved: true,
			TokenExpiresAt:    tokenExpiry(token),
		}
	}

	s := m.setLocked(next)
	m.mu.Unlock()
	m.notify(s)
	return nil
}

func (m *sessionManagerImpl) HandleUnauthorized(ctx context.Context, token string) {
	m.mu.Lock()
	current, err := m.store.Get(ctx, session.KeyAccess)
	if err != nil || current == "" || current != token {
		m.mu.Unlock()
		m.logger.Debug("Ignoring unauthorized signal for a superseded token")
		return
	}

	snap, _ := m.logoutLocked(ctx)
	m.mu.Unlock()
	m.notify(snap)
	m.logger.Info("Session expired, logged out")
}

func (m *sessionManagerImpl) Current() session.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *sessionManagerImpl) HasPersistedToken(ctx context.Context) bool {
	token, err := m.store.Get(ctx, session.KeyAccess)
	return err == nil && token != ""
}

func (m *sessionManagerImpl) Subscribe(fn func(session.Session)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

func (m *sessionManagerImpl) setLocked(next session.Session) session.Session {
	next.Revision = m.state.Revision + 1
	if !next.Status.IsResolved() || next.Status == session.StatusAnonymous {
		next.IsAdmin = false
	}
	m.state = next
	return next
}

// notify runs outside the lock; subscribers use Revision to drop out-of-order deliveries.
func (m *sessionManagerImpl) notify(s session.Session) {
	m.mu.Lock()
	subs := make([]func(session.Session), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

func tokenExpiry(token string) *time.Time {
	if exp, ok := jwt.ExpiresAt(token); ok {
		return &exp
	}
	return nil
}
