package api

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"booking-console/internal/domain/booking"
	reqdto "booking-console/internal/handler/dto/request"
	resdto "booking-console/internal/handler/dto/response"
	"booking-console/internal/handler/httperr"
	"booking-console/internal/pkg/config"
	"booking-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	own     usecase.BookingBoard
	admin   usecase.BookingBoard
	console config.ConsoleConfig
}

func NewBookingHandler(own, admin usecase.BookingBoard, cfg config.Config) *BookingHandler {
	return &BookingHandler{
		own:     own,
		admin:   admin,
		console: cfg.Console,
	}
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Failure 502 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) MyBookings(c *gin.Context) {
	if err := h.own.Load(c.Request.Context(), booking.Filter{}); err != nil {
		abortWithNotice(c, h.console, err, "Could not load bookings.")
		return
	}
	h.renderBoard(c, h.own, false)
}

// @Summary Cancel one of my bookings
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BoardActionResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelMine(c *gin.Context) {
	h.act(c, h.own, false, "Cancel failed.", "Booking #%d cancelled.", usecase.BookingBoard.Cancel)
}

// @Summary All bookings
// @Description Admin board with service, status, date and username filters
// @Tags admin
// @Produce json
// @Param service query int false "Service ID"
// @Param status query string false "PENDING, CONFIRMED or CANCELLED"
// @Param date query string false "YYYY-MM-DD"
// @Param username query string false "Owner username"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) AdminBookings(c *gin.Context) {
	var query reqdto.AdminFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter.", nil)
		return
	}
	filter, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter.", nil)
		return
	}

	if err := h.admin.Load(c.Request.Context(), filter); err != nil {
		abortWithNotice(c, h.console, err, "Could not load bookings.")
		return
	}
	h.renderBoard(c, h.admin, true)
}

// @Summary Confirm a pending booking
// @Tags admin
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BoardActionResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings/{id}/confirm [post]
func (h *BookingHandler) AdminConfirm(c *gin.Context) {
	h.act(c, h.admin, true, "Could not confirm booking.", "Booking #%d confirmed.", usecase.BookingBoard.Confirm)
}

// @Summary Cancel any booking
// @Tags admin
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BoardActionResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings/{id}/cancel [post]
func (h *BookingHandler) AdminCancel(c *gin.Context) {
	h.act(c, h.admin, true, "Could not cancel booking.", "Booking #%d cancelled.", usecase.BookingBoard.Cancel)
}

type boardAction func(usecase.BookingBoard, context.Context, int64) error

func (h *BookingHandler) act(c *gin.Context, board usecase.BookingBoard, withFilter bool, fallback, success string, action boardAction) {
	var uri reqdto.BookingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id.", nil)
		return
	}

	ctx := c.Request.Context()
	// A console restart leaves the board empty; the action needs the booking to judge it.
	if !boardHas(board.State(), uri.ID) {
		if err := board.Reload(ctx); err != nil {
			abortWithNotice(c, h.console, err, fallback)
			return
		}
	}

	if err := action(board, ctx, uri.ID); err != nil {
		abortWithNotice(c, h.console, err, fallback)
		return
	}

	res, err := resdto.FromBoardState(board.State(), withFilter)
	if err != nil {
		abortRender(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BoardActionResponse{
		Message: fmt.Sprintf(success, uri.ID),
		Board:   res,
	})
}

func (h *BookingHandler) renderBoard(c *gin.Context, board usecase.BookingBoard, withFilter bool) {
	res, err := resdto.FromBoardState(board.State(), withFilter)
	if err != nil {
		abortRender(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func boardHas(st usecase.BoardState, id int64) bool {
	return slices.ContainsFunc(st.Bookings, func(v usecase.BookingView) bool { return v.ID == id })
}
