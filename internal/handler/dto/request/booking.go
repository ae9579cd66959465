package request

import (
	"strings"

	"booking-console/internal/domain/booking"
)

type BookingURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// AdminFilterQuery mirrors the admin board's filter bar. Empty values mean "any".
type AdminFilterQuery struct {
	Service  int64  `form:"service" binding:"gte=0"`
	Status   string `form:"status"`
	Date     string `form:"date"`
	Username string `form:"username"`
}

func (q *AdminFilterQuery) ToDomain() (booking.Filter, error) {
	filter := booking.Filter{
		ServiceID: q.Service,
		Username:  strings.TrimSpace(q.Username),
	}

	if s := strings.TrimSpace(q.Status); s != "" {
		status, err := booking.NewStatus(s)
		if err != nil {
			return booking.Filter{}, err
		}
		filter.Status = status
	}

	if d := strings.TrimSpace(q.Date); d != "" {
		date, err := booking.ParseDate(d)
		if err != nil {
			return booking.Filter{}, err
		}
		filter.Date = date
	}
	return filter, nil
}
