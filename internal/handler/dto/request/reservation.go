package request

import (
	"strings"

	"booking-console/internal/domain/booking"
)

type SelectServiceRequest struct {
	ServiceID int64 `json:"service_id" binding:"required,gt=0"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r *SelectDateRequest) ToDomain() (booking.Date, error) {
	return booking.ParseDate(strings.TrimSpace(r.Date))
}

type SelectSlotRequest struct {
	SlotID int64 `json:"slot_id" binding:"required,gt=0"`
}

type SubmitReservationRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}
