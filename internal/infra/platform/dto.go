package platform

import (
	"booking-console/internal/domain/booking"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/pkg/ptr"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type meResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type serviceDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type slotDTO struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// bookingDTO covers both listings: the admin one may omit the schedule and carries the
// owner's username.
type bookingDTO struct {
	ID           int64   `json:"id"`
	Service      int64   `json:"service"`
	Availability *int64  `json:"availability"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
	Date         *string `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Username     string  `json:"username"`
}

type createBookingRequest struct {
	Service      int64  `json:"service"`
	Availability int64  `json:"availability"`
	Notes        string `json:"notes"`
}

func toService(d serviceDTO) booking.Service {
	return booking.Service{ID: d.ID, Name: d.Name}
}

func toSlot(d slotDTO) (booking.Slot, error) {
	date, err := booking.ParseDate(d.Date)
	if err != nil {
		return booking.Slot{}, errs.Mark(errs.Wrap(err, "slot date"), errs.ErrUnknown)
	}
	start, err := booking.ParseTimeOfDay(d.StartTime)
	if err != nil {
		return booking.Slot{}, errs.Mark(errs.Wrap(err, "slot start"), errs.ErrUnknown)
	}
	end, err := booking.ParseTimeOfDay(d.EndTime)
	if err != nil {
		return booking.Slot{}, errs.Mark(errs.Wrap(err, "slot end"), errs.ErrUnknown)
	}
	return booking.Slot{ID: d.ID, Date: date, Start: start, End: end}, nil
}

func toBooking(d bookingDTO) (booking.Booking, error) {
	status, err := booking.NewStatus(d.Status)
	if err != nil {
		return booking.Booking{}, errs.Mark(errs.Wrap(err, "booking status"), errs.ErrUnknown)
	}

	var schedule booking.Schedule
	if s := ptr.ValueOr(d.Date, ""); s != "" {
		if schedule.Date, err = booking.ParseDate(s); err != nil {
			return booking.Booking{}, errs.Mark(errs.Wrap(err, "booking date"), errs.ErrUnknown)
		}
	}
	if s := ptr.ValueOr(d.StartTime, ""); s != "" {
		if schedule.Start, err = booking.ParseTimeOfDay(s); err != nil {
			return booking.Booking{}, errs.Mark(errs.Wrap(err, "booking start"), errs.ErrUnknown)
		}
	}
	if s := ptr.ValueOr(d.EndTime, ""); s != "" {
		if schedule.End, err = booking.ParseTimeOfDay(s); err != nil {
			return booking.Booking{}, errs.Mark(errs.Wrap(err, "booking end"), errs.ErrUnknown)
		}
	}

	return booking.Booking{
		ID:             d.ID,
		ServiceID:      d.Service,
		AvailabilityID: ptr.ValueOr(d.Availability, 0),
		Status:         status,
		Notes:          ptr.ValueOr(d.Notes, ""),
		Schedule:       schedule,
		OwnerUsername:  d.Username,
	}, nil
}
