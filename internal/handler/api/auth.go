package api

import (
	"errors"
	"net/http"

	reqdto "booking-console/internal/handler/dto/request"
	resdto "booking-console/internal/handler/dto/response"
	"booking-console/internal/handler/httperr"
	"booking-console/internal/pkg/config"
	"booking-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

const dashboardPath = "/dashboard"

type AuthHandler struct {
	sessions     usecase.SessionManager
	registration usecase.RegistrationUseCase
	console      config.ConsoleConfig
}

type LoginResponse struct {
	Message  string                  `json:"message"`
	Redirect string                  `json:"redirect"`
	Session  *resdto.SessionResponse `json:"session"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func NewAuthHandler(sessions usecase.SessionManager, registration usecase.RegistrationUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:     sessions,
		registration: registration,
		console:      cfg.Console,
	}
}

// @Summary Current session
// @Description Session snapshot used to render the navigation bar and pick a view
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	res, err := resdto.FromSession(h.sessions.Current())
	if err != nil {
		abortRender(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Sign in
// @Description Exchange username and password for a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.sessions.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, usecase.ErrSessionSuperseded) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Sign-in was interrupted. Please try again.", nil)
			return
		}
		abortWithNotice(c, h.console, err, "Login failed.")
		return
	}

	current, err := resdto.FromSession(h.sessions.Current())
	if err != nil {
		abortRender(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Message:  "Login successful.",
		Redirect: dashboardPath,
		Session:  current,
	})
}

// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} httperr.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.registration.Register(c.Request.Context(), req.ToInput()); err != nil {
		abortWithNotice(c, h.console, err, "Failed to register.")
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message:  "Account created successfully.",
		Redirect: h.console.LoginPath,
	})
}

// @Summary Sign out
// @Description Clears the persisted credentials and sends the client to login
// @Tags auth
// @Success 302 "Found"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Could not sign out.", nil)
		return
	}
	httperr.AbortWithRedirect(c, h.console.LoginPath)
}
