//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-console/internal/domain/session"
	"booking-console/internal/domain/user"
	"booking-console/internal/handler/api"
	resdto "booking-console/internal/handler/dto/response"
	"booking-console/internal/infra/platform"
	"booking-console/internal/pkg/config"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase"
	"booking-console/tests/common/builder"
	"booking-console/tests/common/httptest"
	usecasemock "booking-console/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockSessions     *usecasemock.MockSessionManager
	mockRegistration *usecasemock.MockRegistrationUseCase
	handler          *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = usecasemock.NewMockSessionManager(s.mockCtrl)
	s.mockRegistration = usecasemock.NewMockRegistrationUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockSessions, s.mockRegistration, config.NewTestConfig())

	s.router.GET("/session", s.handler.Session)
	s.router.POST("/login", s.handler.Login)
	s.router.POST("/register", s.handler.Register)
	s.router.POST("/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestSession() {
	s.Run("success: navigation follows the username", func() {
		s.mockSessions.EXPECT().Current().
			Return(session.Session{Status: session.StatusAuthenticated, Username: "alice", PrivilegeResolved: true, Revision: 3}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil)

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("authenticated", response.Status)
		s.Equal("alice", response.Username)
		s.True(response.ShowNavigation)
		s.False(response.IsAdmin)
		s.Equal(uint64(3), response.Revision)
	})

	s.Run("success: anonymous session hides navigation", func() {
		s.mockSessions.EXPECT().Current().Return(session.Session{Status: session.StatusAnonymous}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/session", nil)

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.ShowNavigation)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"
	reqBody := map[string]any{"username": "alice", "password": "secret1"}

	s.Run("success: returns the session and the dashboard target", func() {
		s.mockSessions.EXPECT().Login(gomock.Any(), "alice", "secret1").Return(nil).Times(1)
		s.mockSessions.EXPECT().Current().
			Return(session.Session{Status: session.StatusAuthenticated, Username: "alice"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response api.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("/dashboard", response.Redirect)
		s.Equal("alice", response.Session.Username)
	})

	s.Run("error: maps session errors to notices", func() {
		testCases := []struct {
			name           string
			loginError     error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "blank form",
				loginError:     errs.NewLocalCause(errs.ErrValidationFailed, session.ErrCredentialsRequired, "Please enter username and password."),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Please enter username and password.",
			},
			{
				name: "rejected credentials",
				loginError: &platform.Error{
					Status: http.StatusUnauthorized,
					Kind:   errs.ErrInvalidCredentials,
					Detail: "No active account found with the given credentials",
				},
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "No active account found with the given credentials",
			},
			{
				name:           "unreachable service",
				loginError:     &platform.TransportError{Method: http.MethodPost, Path: "auth/login/", Err: errors.New("dial tcp")},
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Network error",
			},
			{
				name:           "server error without a message",
				loginError:     &platform.Error{Status: http.StatusInternalServerError, Kind: errs.ErrUnknown},
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Login failed.",
			},
			{
				name:           "logout while signing in",
				loginError:     usecase.ErrSessionSuperseded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Sign-in was interrupted",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSessions.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.loginError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/register"
	reqBody := builder.NewRegistrationBuilder().BuildDTO()

	s.Run("success: 201 Created and back to login", func() {
		s.mockRegistration.EXPECT().Register(gomock.Any(), builder.NewRegistrationBuilder().BuildInput()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response api.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("/login", response.Redirect)
	})

	s.Run("success: the confirmation travels as password2", func() {
		requestMap := httptest.JSONMap(s.T(), reqBody, map[string]any{"password2": "other12"})
		expected := builder.NewRegistrationBuilder().WithPassword("secret1", "other12").BuildInput()
		s.mockRegistration.EXPECT().Register(gomock.Any(), expected).
			Return(errs.NewLocalCause(errs.ErrValidationFailed, user.ErrPasswordsMismatch, "Passwords do not match.")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Passwords do not match.")
	})

	s.Run("error: field error from the server wins", func() {
		s.mockRegistration.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&platform.Error{
				Status:         http.StatusBadRequest,
				Kind:           errs.ErrValidationFailed,
				FieldErrors:    map[string][]string{"email": {"Enter a valid email address."}},
				NonFieldErrors: []string{"ignored"},
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Enter a valid email address.")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: redirects to login", func() {
		s.mockSessions.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/logout", nil)
		httptest.AssertRedirect(s.T(), rec, "/login")
	})

	s.Run("error: store failure is reported", func() {
		s.mockSessions.EXPECT().Logout(gomock.Any()).Return(errors.New("disk full")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/logout", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Could not sign out.")
	})
}
