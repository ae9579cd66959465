//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"booking-console/cmd/bootstrap"
	"booking-console/cmd/bootstrap/components"
	resdto "booking-console/internal/handler/dto/response"
	"booking-console/internal/pkg/config"
	"booking-console/tests/common/fakeapi"
	"booking-console/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.PlatformModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SessionModule,

		fx.Populate(&router),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("console router was not built")
	}
	return router, app
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------

// SharedSuite runs the whole console against the fake platform. The credential store is a
// SQLite file, so Restart behaves like reopening the console on the same machine.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	API    *fakeapi.Server
	Config config.Config

	app *fx.App
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *SharedSuite) SetupTest() {
	t := s.T()

	s.API = fakeapi.New()
	s.Config = config.NewTestConfig()
	s.Config.API.BaseURL = s.API.Start(t)
	s.Config.Store.Driver = "sqlite"
	s.Config.Store.SQLitePath = filepath.Join(t.TempDir(), "credentials.db")

	s.start()
	t.Cleanup(s.stop)
}

// Restart stops the console and starts a new one over the same credential store.
func (s *SharedSuite) Restart() {
	s.stop()
	s.start()
}

func (s *SharedSuite) start() {
	s.Router, s.app = buildE2EApp(s.Config)
	s.WaitForSession()
}

func (s *SharedSuite) stop() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("Failed to stop the console", "error", err.Error())
	}
	s.app = nil
}

// WaitForSession blocks until the restore started with the app has resolved.
func (s *SharedSuite) WaitForSession() resdto.SessionResponse {
	var body resdto.SessionResponse
	require.Eventually(s.T(), func() bool {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/session", nil)
		if w.Code != http.StatusOK {
			return false
		}
		body = resdto.SessionResponse{}
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &body)
		return body.Status == "authenticated" || body.Status == "anonymous"
	}, 5*time.Second, 20*time.Millisecond, "session never resolved")
	return body
}

func (s *SharedSuite) Login(username, password string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/login",
		map[string]string{"username": username, "password": password})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
}
