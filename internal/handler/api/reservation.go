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

type ReservationHandler struct {
	flow    usecase.ReservationFlow
	console config.ConsoleConfig
}

func NewReservationHandler(flow usecase.ReservationFlow, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{
		flow:    flow,
		console: cfg.Console,
	}
}

// @Summary Reservation form
// @Description Services, the selected date, available slots and the current selection
// @Tags reservation
// @Produce json
// @Success 200 {object} resdto.ReservationActionResponse
// @Failure 502 {object} httperr.Response
// @Router /create [get]
func (h *ReservationHandler) Show(c *gin.Context) {
	if len(h.flow.State().Services) == 0 {
		if err := h.flow.LoadServices(c.Request.Context()); err != nil {
			abortWithNotice(c, h.console, err, "Could not load services.")
			return
		}
	}
	h.render(c, http.StatusOK, "")
}

// @Summary Select a service
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body reqdto.SelectServiceRequest true "Service"
// @Success 200 {object} resdto.ReservationActionResponse
// @Failure 400 {object} httperr.Response
// @Router /create/service [post]
func (h *ReservationHandler) SelectService(c *gin.Context) {
	var req reqdto.SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please select a valid service.", nil)
		return
	}

	if err := h.flow.SelectService(c.Request.Context(), req.ServiceID); err != nil {
		abortWithNotice(c, h.console, err, "Please select a valid service.")
		return
	}
	h.render(c, http.StatusOK, "")
}

// @Summary Select a date
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body reqdto.SelectDateRequest true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservationActionResponse
// @Failure 400 {object} httperr.Response
// @Router /create/date [post]
func (h *ReservationHandler) SelectDate(c *gin.Context) {
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please pick a valid date.", nil)
		return
	}
	date, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Please pick a valid date.", nil)
		return
	}

	if err := h.flow.SelectDate(c.Request.Context(), date); err != nil {
		abortWithNotice(c, h.console, err, "Please pick a valid date.")
		return
	}
	h.render(c, http.StatusOK, "")
}

// @Summary Select a time slot
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body reqdto.SelectSlotRequest true "Slot"
// @Success 200 {object} resdto.ReservationActionResponse
// @Failure 400 {object} httperr.Response
// @Router /create/slot [post]
func (h *ReservationHandler) SelectSlot(c *gin.Context) {
	var req reqdto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "This time slot is not available.", nil)
		return
	}

	if err := h.flow.SelectSlot(req.SlotID); err != nil {
		abortWithNotice(c, h.console, err, "This time slot is not available.")
		return
	}
	h.render(c, http.StatusOK, "")
}

// @Summary Clear the selected slot
// @Tags reservation
// @Produce json
// @Success 200 {object} resdto.ReservationActionResponse
// @Router /create/slot [delete]
func (h *ReservationHandler) ClearSlot(c *gin.Context) {
	h.flow.ClearSlot()
	h.render(c, http.StatusOK, "")
}

// @Summary Book the selected slot
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitReservationRequest false "Notes"
// @Success 201 {object} resdto.ReservationActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /create/submit [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	if err := h.flow.Submit(c.Request.Context(), req.Notes); err != nil {
		if errors.Is(err, usecase.ErrSubmitInProgress) {
			httperr.AbortWithError(c, http.StatusConflict, err, "A booking is already being submitted.", nil)
			return
		}
		abortWithNotice(c, h.console, err, "Could not create booking.")
		return
	}
	h.render(c, http.StatusCreated, "Booking created successfully.")
}

func (h *ReservationHandler) render(c *gin.Context, status int, message string) {
	state, err := resdto.FromReservationState(h.flow.State())
	if err != nil {
		abortRender(c, err)
		return
	}
	c.JSON(status, resdto.ReservationActionResponse{
		Message: message,
		State:   state,
	})
}
