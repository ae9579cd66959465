package response

import (
	"booking-console/internal/domain/booking"
	"booking-console/internal/usecase"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SlotResponse struct {
	ID      int64  `json:"id"`
	Label   string `json:"label"`
	Start   string `json:"start_time"`
	End     string `json:"end_time"`
	Elapsed bool   `json:"elapsed"`
}

type ReservationStateResponse struct {
	Services       []ServiceResponse `json:"services"`
	ServiceID      int64             `json:"service_id,omitempty"`
	Date           string            `json:"date"`
	DateLabel      string            `json:"date_label"`
	MinDate        string            `json:"min_date"`
	Slots          []SlotResponse    `json:"slots"`
	SlotsLoading   bool              `json:"slots_loading"`
	SelectedSlotID int64             `json:"selected_slot_id,omitempty"`
	SelectedLabel  string            `json:"selected_label,omitempty"`
	Submitting     bool              `json:"submitting"`
	CanSubmit      bool              `json:"can_submit"`
}

func FromServices(services []booking.Service) ([]ServiceResponse, error) {
	var res []ServiceResponse
	if err := copier.Copy(&res, &services); err != nil {
		return nil, err
	}
	if res == nil {
		res = []ServiceResponse{}
	}
	return res, nil
}

func FromReservationState(st usecase.ReservationState) (*ReservationStateResponse, error) {
	services, err := FromServices(st.Services)
	if err != nil {
		return nil, err
	}
	res := &ReservationStateResponse{
		Services:       services,
		ServiceID:      st.ServiceID,
		Date:           st.Date.String(),
		DateLabel:      st.Date.DisplayDMY(),
		MinDate:        st.MinDate.String(),
		Slots:          make([]SlotResponse, 0, len(st.Slots)),
		SlotsLoading:   st.SlotsLoading,
		SelectedSlotID: st.SelectedSlotID,
		SelectedLabel:  st.SelectedLabel,
		Submitting:     st.Submitting,
		CanSubmit:      st.CanSubmit,
	}
	for _, s := range st.Slots {
		res.Slots = append(res.Slots, SlotResponse{
			ID:      s.ID,
			Label:   s.Label(),
			Start:   s.Start.Short(),
			End:     s.End.Short(),
			Elapsed: s.Elapsed,
		})
	}
	return res, nil
}

type ReservationActionResponse struct {
	Message string                    `json:"message,omitempty"`
	State   *ReservationStateResponse `json:"state"`
}
