package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-console/internal/handler/api"
	"booking-console/internal/handler/httperr"
	"booking-console/internal/handler/middleware"
	"booking-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Dashboard   *api.DashboardHandler
	Booking     *api.BookingHandler
	Reservation *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, guard *middleware.GuardMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.Console, h, guard)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	slogger := logger.GetSlogLogger()
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, console config.ConsoleConfig, h Handlers, guard *middleware.GuardMiddleware) {
	toLogin := func(c *gin.Context) { httperr.AbortWithRedirect(c, console.LoginPath) }

	engine.GET("/health", healthCheck)
	engine.GET("/", toLogin)
	engine.NoRoute(toLogin)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	public := engine.Group("")
	addRoutes(public, []route{
		{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
	})

	authRequired := engine.Group("")
	authRequired.Use(guard.RequireAuth())
	addRoutes(authRequired, []route{
		{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Dashboard},
		{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.MyBookings},
		{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.CancelMine},
		{Method: http.MethodGet, Path: "/create", Handler: h.Reservation.Show},
		{Method: http.MethodPost, Path: "/create/service", Handler: h.Reservation.SelectService},
		{Method: http.MethodPost, Path: "/create/date", Handler: h.Reservation.SelectDate},
		{Method: http.MethodPost, Path: "/create/slot", Handler: h.Reservation.SelectSlot},
		{Method: http.MethodDelete, Path: "/create/slot", Handler: h.Reservation.ClearSlot},
		{Method: http.MethodPost, Path: "/create/submit", Handler: h.Reservation.Submit},
	})

	admin := engine.Group("/admin")
	admin.Use(guard.RequireAdmin())
	addRoutes(admin, []route{
		{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.AdminBookings},
		{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.AdminConfirm},
		{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.AdminCancel},
	})
}

// @Summary Health check
// @Description Check if the console is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Console is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
