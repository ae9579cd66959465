//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"booking-console/internal/domain/session"
	"booking-console/internal/infra/credstore"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/pkg/jwt"
	"booking-console/internal/usecase"
	sharedmock "booking-console/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type SessionManagerTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	mockAPI  *sharedmock.MockAuthAPI
	store    *credstore.MemoryStore
	manager  usecase.SessionManager
	tokens   *jwt.Service
}

func (s *SessionManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = sharedmock.NewMockAuthAPI(s.mockCtrl)
	s.store = credstore.NewMemoryStore()
	s.manager = usecase.NewSessionManager(s.store, s.mockAPI, discardLogger)
	s.tokens = jwt.NewService("test-secret", time.Hour, 24*time.Hour)
}

func (s *SessionManagerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *SessionManagerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionManagerSuite(t *testing.T) {
	suite.Run(t, new(SessionManagerTestSuite))
}

func (s *SessionManagerTestSuite) pair() session.TokenPair {
	access, err := s.tokens.GenerateAccessToken(1)
	s.Require().NoError(err)
	refresh, err := s.tokens.GenerateRefreshToken(1)
	s.Require().NoError(err)
	return session.TokenPair{AccessToken: access, RefreshToken: refresh}
}

func (s *SessionManagerTestSuite) persisted(key string) string {
	value, err := s.store.Get(s.ctx, key)
	s.Require().NoError(err)
	return value
}

func (s *SessionManagerTestSuite) seed(access, username string) {
	s.Require().NoError(s.store.Set(s.ctx, session.KeyAccess, access))
	s.Require().NoError(s.store.Set(s.ctx, session.KeyRefresh, "refresh"))
	s.Require().NoError(s.store.Set(s.ctx, session.KeyUser, username))
}

func (s *SessionManagerTestSuite) TestRestore() {
	s.Run("without a token ends anonymous without calling the API", func() {
		s.Require().NoError(s.manager.Restore(s.ctx))

		current := s.manager.Current()
		s.Equal(session.StatusAnonymous, current.Status)
		s.False(current.IsAdmin)
	})

	s.Run("with a token restores the identity", func() {
		s.seed("a1", "alice")
		s.mockAPI.EXPECT().Me(gomock.Any()).
			Return(session.Identity{ID: 1, Username: "alice", IsStaff: true}, nil).Times(1)

		var seen []session.Session
		s.manager.Subscribe(func(snap session.Session) { seen = append(seen, snap) })

		s.Require().NoError(s.manager.Restore(s.ctx))

		current := s.manager.Current()
		s.Equal(session.StatusAuthenticated, current.Status)
		s.Equal("alice", current.Username)
		s.True(current.IsAdmin)
		s.True(current.PrivilegeResolved)

		s.Require().NotEmpty(seen)
		s.Equal(session.StatusLoading, seen[0].Status)
		s.Equal("alice", seen[0].Username)
		for i := 1; i < len(seen); i++ {
			s.Greater(seen[i].Revision, seen[i-1].Revision)
		}
	})
}

func (s *SessionManagerTestSuite) TestLogin() {
	s.Run("success persists credentials and resolves privilege", func() {
		pair := s.pair()
		s.mockAPI.EXPECT().Login(gomock.Any(), session.Credentials{Username: "alice", Password: "pw"}).
			Return(pair, nil).Times(1)
		s.mockAPI.EXPECT().Me(gomock.Any()).
			Return(session.Identity{ID: 1, Username: "alice", IsSuperuser: true}, nil).Times(1)

		var seen []session.Session
		s.manager.Subscribe(func(snap session.Session) { seen = append(seen, snap) })

		s.Require().NoError(s.manager.Login(s.ctx, " alice ", "pw"))

		s.Equal(pair.AccessToken, s.persisted(session.KeyAccess))
		s.Equal(pair.RefreshToken, s.persisted(session.KeyRefresh))
		s.Equal("alice", s.persisted(session.KeyUser))

		current := s.manager.Current()
		s.Equal(session.StatusAuthenticated, current.Status)
		s.True(current.IsAdmin)
		s.Require().NotNil(current.TokenExpiresAt)
		s.WithinDuration(time.Now().Add(time.Hour), *current.TokenExpiresAt, 5*time.Second)

		s.Require().NotEmpty(seen)
		s.Equal(session.StatusAuthenticated, seen[0].Status)
		s.False(seen[0].PrivilegeResolved)
		s.False(seen[0].IsAdmin)
	})

	s.Run("rejected credentials leave the session unchanged", func() {
		s.Require().NoError(s.manager.Restore(s.ctx))
		before := s.manager.Current()

		s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(session.TokenPair{}, fmt.Errorf("login: %w", errs.ErrInvalidCredentials)).Times(1)

		err := s.manager.Login(s.ctx, "alice", "wrong")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
		s.Equal(before, s.manager.Current())
		s.Empty(s.persisted(session.KeyAccess))
	})

	s.Run("blank credentials never reach the API", func() {
		err := s.manager.Login(s.ctx, "  ", "pw")
		s.ErrorIs(err, errs.ErrValidationFailed)
		s.Equal("Please enter username and password.", errs.Message(err, ""))
	})

	s.Run("login superseded by a logout persists nothing", func() {
		pair := s.pair()
		started := make(chan struct{})
		release := make(chan struct{})
		s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, session.Credentials) (session.TokenPair, error) {
				close(started)
				<-release
				return pair, nil
			}).Times(1)

		done := make(chan error, 1)
		go func() { done <- s.manager.Login(s.ctx, "alice", "pw") }()

		<-started
		s.Require().NoError(s.manager.Logout(s.ctx))
		close(release)

		s.ErrorIs(<-done, usecase.ErrSessionSuperseded)
		s.Equal(session.StatusAnonymous, s.manager.Current().Status)
		s.Empty(s.persisted(session.KeyAccess))
	})

	s.Run("restore finishing during a login does not supersede it", func() {
		s.seed("old", "bob")
		pair := s.pair()
		started := make(chan struct{})
		release := make(chan struct{})
		s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, session.Credentials) (session.TokenPair, error) {
				close(started)
				<-release
				return pair, nil
			}).Times(1)
		gomock.InOrder(
			s.mockAPI.EXPECT().Me(gomock.Any()).Return(session.Identity{ID: 2, Username: "bob"}, nil),
			s.mockAPI.EXPECT().Me(gomock.Any()).Return(session.Identity{ID: 1, Username: "alice"}, nil),
		)

		done := make(chan error, 1)
		go func() { done <- s.manager.Login(s.ctx, "alice", "pw") }()

		<-started
		s.Require().NoError(s.manager.Restore(s.ctx))
		close(release)

		s.Require().NoError(<-done)
		s.Equal(pair.AccessToken, s.persisted(session.KeyAccess))
		current := s.manager.Current()
		s.Equal(session.StatusAuthenticated, current.Status)
		s.Equal("alice", current.Username)
	})
}

func (s *SessionManagerTestSuite) TestReloadRestoresSession() {
	pair := s.pair()
	s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).Return(pair, nil).Times(1)
	s.mockAPI.EXPECT().Me(gomock.Any()).
		Return(session.Identity{ID: 1, Username: "alice"}, nil).Times(2)

	s.Require().NoError(s.manager.Login(s.ctx, "alice", "pw"))
	before := s.manager.Current()

	reloaded := usecase.NewSessionManager(s.store, s.mockAPI, discardLogger)
	s.Require().NoError(reloaded.Restore(s.ctx))

	after := reloaded.Current()
	s.Equal(before.Status, after.Status)
	s.Equal(before.Username, after.Username)
	s.Equal(before.IsAdmin, after.IsAdmin)
}

func (s *SessionManagerTestSuite) TestRefreshIdentity() {
	s.Run("no token yields anonymous", func() {
		s.Require().NoError(s.manager.RefreshIdentity(s.ctx))
		s.Equal(session.StatusAnonymous, s.manager.Current().Status)
	})

	s.Run("non authorization failure fails closed", func() {
		s.seed("a1", "alice")
		s.mockAPI.EXPECT().Me(gomock.Any()).
			Return(session.Identity{Username: "alice", IsStaff: true}, nil).Times(1)
		s.Require().NoError(s.manager.Restore(s.ctx))
		s.Require().True(s.manager.Current().IsAdmin)

		s.mockAPI.EXPECT().Me(gomock.Any()).
			Return(session.Identity{}, fmt.Errorf("me: %w", errs.ErrTransport)).Times(1)
		s.Require().NoError(s.manager.RefreshIdentity(s.ctx))

		current := s.manager.Current()
		s.Equal(session.StatusAuthenticated, current.Status)
		s.Equal("alice", current.Username)
		s.False(current.IsAdmin)
		s.True(current.PrivilegeResolved)
		s.Equal("a1", s.persisted(session.KeyAccess))
	})

	s.Run("authorization failure logs out", func() {
		s.seed("a1", "alice")
		s.mockAPI.EXPECT().Me(gomock.Any()).
			Return(session.Identity{}, fmt.Errorf("me: %w", errs.ErrUnauthorized)).Times(1)

		s.Require().NoError(s.manager.Restore(s.ctx))

		s.Equal(session.StatusAnonymous, s.manager.Current().Status)
		for _, key := range session.Keys {
			s.Empty(s.persisted(key))
		}
	})

	s.Run("result arriving after logout is discarded", func() {
		s.seed("a1", "alice")
		started := make(chan struct{})
		release := make(chan struct{})
		s.mockAPI.EXPECT().Me(gomock.Any()).
			DoAndReturn(func(context.Context) (session.Identity, error) {
				close(started)
				<-release
				return session.Identity{Username: "alice", IsSuperuser: true}, nil
			}).Times(1)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.manager.Restore(s.ctx))
		}()

		<-started
		s.Require().NoError(s.manager.Logout(s.ctx))
		close(release)
		wg.Wait()

		current := s.manager.Current()
		s.Equal(session.StatusAnonymous, current.Status)
		s.False(current.IsAdmin)
	})
}

func (s *SessionManagerTestSuite) TestHandleUnauthorized() {
	s.Run("superseded token is ignored", func() {
		s.seed("new-token", "alice")
		s.mockAPI.EXPECT().Me(gomock.Any()).Return(session.Identity{Username: "alice"}, nil).Times(1)
		s.Require().NoError(s.manager.Restore(s.ctx))

		s.manager.HandleUnauthorized(s.ctx, "old-token")

		s.Equal(session.StatusAuthenticated, s.manager.Current().Status)
		s.Equal("new-token", s.persisted(session.KeyAccess))
	})

	s.Run("current token forces logout", func() {
		s.seed("a1", "alice")
		s.mockAPI.EXPECT().Me(gomock.Any()).Return(session.Identity{Username: "alice"}, nil).Times(1)
		s.Require().NoError(s.manager.Restore(s.ctx))

		s.manager.HandleUnauthorized(s.ctx, "a1")

		s.Equal(session.StatusAnonymous, s.manager.Current().Status)
		s.Empty(s.persisted(session.KeyAccess))
		s.False(s.manager.HasPersistedToken(s.ctx))
	})
}

func (s *SessionManagerTestSuite) TestSubscribeUnsubscribe() {
	calls := 0
	unsubscribe := s.manager.Subscribe(func(session.Session) { calls++ })

	s.Require().NoError(s.manager.Logout(s.ctx))
	s.Equal(1, calls)

	unsubscribe()
	s.Require().NoError(s.manager.Logout(s.ctx))
	s.Equal(1, calls)
}
