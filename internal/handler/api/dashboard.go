package api

import (
	"net/http"

	resdto "booking-console/internal/handler/dto/response"
	"booking-console/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// @Summary Dashboard
// @Description Greeting and the actions available to the signed-in user
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Success 202 {object} map[string]string
// @Success 302 "Found"
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	current, _ := middleware.CurrentSession(c)

	greeting := "Hello."
	if current.Username != "" {
		greeting = "Hello, " + current.Username + "."
	}

	actions := []resdto.Action{
		{Label: "My Bookings", Path: "/bookings"},
		{Label: "Create Booking", Path: "/create"},
	}
	if current.IsAdmin {
		actions = append(actions, resdto.Action{Label: "Admin Bookings Management", Path: "/admin/bookings"})
	}

	c.JSON(http.StatusOK, resdto.DashboardResponse{
		Greeting: greeting,
		Username: current.Username,
		IsAdmin:  current.IsAdmin,
		Actions:  actions,
	})
}
