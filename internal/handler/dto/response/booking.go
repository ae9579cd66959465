package response

import (
	"booking-console/internal/usecase"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             int64  `json:"id"`
	ServiceID      int64  `json:"service_id"`
	ServiceName    string `json:"service_name"`
	AvailabilityID int64  `json:"availability_id"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
	OwnerUsername  string `json:"username,omitempty"`
	DateLabel      string `json:"date"`
	TimeLabel      string `json:"time"`
	CanCancel      bool   `json:"can_cancel"`
	CancelHint     string `json:"cancel_hint,omitempty"`
	CanConfirm     bool   `json:"can_confirm"`
}

type FilterResponse struct {
	Service  int64  `json:"service,omitempty"`
	Status   string `json:"status,omitempty"`
	Date     string `json:"date,omitempty"`
	Username string `json:"username,omitempty"`
}

type BoardResponse struct {
	Filter   *FilterResponse   `json:"filter,omitempty"`
	Services []ServiceResponse `json:"services"`
	Bookings []BookingResponse `json:"bookings"`
	Loading  bool              `json:"loading"`
}

func FromBookingView(v usecase.BookingView) (BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, &v.Booking); err != nil {
		return BookingResponse{}, err
	}
	res.Status = v.Status.String()
	res.ServiceName = v.ServiceName
	res.DateLabel = v.DateLabel
	res.TimeLabel = v.TimeLabel
	res.CanCancel = v.CanCancel
	res.CancelHint = v.CancelHint
	res.CanConfirm = v.CanConfirm
	return res, nil
}

// FromBoardState renders a board; withFilter is set for the admin board only.
func FromBoardState(st usecase.BoardState, withFilter bool) (*BoardResponse, error) {
	services, err := FromServices(st.Services)
	if err != nil {
		return nil, err
	}
	res := &BoardResponse{
		Services: services,
		Bookings: make([]BookingResponse, 0, len(st.Bookings)),
		Loading:  st.Loading,
	}
	for _, v := range st.Bookings {
		b, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res.Bookings = append(res.Bookings, b)
	}
	if withFilter {
		res.Filter = &FilterResponse{
			Service:  st.Filter.ServiceID,
			Status:   st.Filter.Status.String(),
			Date:     st.Filter.Date.String(),
			Username: st.Filter.Username,
		}
	}
	return res, nil
}

type BoardActionResponse struct {
	Message string         `json:"message"`
	Board   *BoardResponse `json:"board"`
}
