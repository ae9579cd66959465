//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-console/internal/domain/booking"
	"booking-console/internal/infra/platform"
	"booking-console/internal/pkg/clock"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase"
	usecasemock "booking-console/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationFlowTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	mockAPI  *usecasemock.MockReservationAPI
	clock    *clock.MockClock
	flow     usecase.ReservationFlow
	today    booking.Date
}

func (s *ReservationFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = usecasemock.NewMockReservationAPI(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 7, 10, 15, 0, 0, time.UTC))
	s.today = booking.DateOf(s.clock.Now())
	s.flow = usecase.NewReservationFlow(s.mockAPI, usecase.NewSlotFetcher(s.mockAPI, discardLogger), s.clock, discardLogger)
}

func (s *ReservationFlowTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ReservationFlowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationFlowSuite(t *testing.T) {
	suite.Run(t, new(ReservationFlowTestSuite))
}

func slot(id int64, h, m int) booking.Slot {
	return booking.Slot{ID: id, Start: booking.NewTimeOfDay(h, m, 0), End: booking.NewTimeOfDay(h, m+30, 0)}
}

func (s *ReservationFlowTestSuite) selectService(serviceID int64, slots ...booking.Slot) {
	s.mockAPI.EXPECT().ListAvailableSlots(gomock.Any(), serviceID, s.today).Return(slots, nil).Times(1)
	s.Require().NoError(s.flow.SelectService(s.ctx, serviceID))
}

func (s *ReservationFlowTestSuite) TestInitialState() {
	state := s.flow.State()
	s.Equal(s.today, state.Date)
	s.Equal(s.today, state.MinDate)
	s.Zero(state.ServiceID)
	s.False(state.CanSubmit)
}

func (s *ReservationFlowTestSuite) TestLoadServices() {
	s.Run("stores the catalogue", func() {
		services := []booking.Service{{ID: 5, Name: "Haircut"}}
		s.mockAPI.EXPECT().ListServices(gomock.Any()).Return(services, nil).Times(1)

		s.Require().NoError(s.flow.LoadServices(s.ctx))
		s.Equal(services, s.flow.State().Services)
	})

	s.Run("unknown service is rejected", func() {
		s.mockAPI.EXPECT().ListServices(gomock.Any()).Return([]booking.Service{{ID: 5, Name: "Haircut"}}, nil).Times(1)
		s.Require().NoError(s.flow.LoadServices(s.ctx))

		err := s.flow.SelectService(s.ctx, 9)
		s.Require().Error(err)
		s.Equal("Please select a valid service.", errs.Message(err, ""))
	})
}

func (s *ReservationFlowTestSuite) TestSlotOptions() {
	s.Run("marks started slots of today as elapsed", func() {
		s.selectService(5, slot(1, 9, 0), slot(2, 10, 15), slot(3, 11, 0))

		state := s.flow.State()
		s.Require().Len(state.Slots, 3)
		s.True(state.Slots[0].Elapsed)
		s.True(state.Slots[1].Elapsed)
		s.False(state.Slots[2].Elapsed)
	})

	s.Run("nothing is elapsed on a later date", func() {
		tomorrow := booking.DateOf(s.clock.Now().AddDate(0, 0, 1))
		s.selectService(5, slot(1, 9, 0))
		s.mockAPI.EXPECT().ListAvailableSlots(gomock.Any(), int64(5), tomorrow).
			Return([]booking.Slot{slot(1, 9, 0)}, nil).Times(1)

		s.Require().NoError(s.flow.SelectDate(s.ctx, tomorrow))

		state := s.flow.State()
		s.Require().Len(state.Slots, 1)
		s.False(state.Slots[0].Elapsed)
	})

	s.Run("past date is refused without a fetch", func() {
		yesterday := booking.DateOf(s.clock.Now().AddDate(0, 0, -1))

		err := s.flow.SelectDate(s.ctx, yesterday)
		s.Require().Error(err)
		s.ErrorIs(err, booking.ErrDateInPast)
		s.Equal("Please pick today or a later date.", errs.Message(err, ""))
		s.Equal(s.today, s.flow.State().Date)
	})
}

func (s *ReservationFlowTestSuite) TestSelectSlot() {
	s.Run("elapsed slot cannot be selected", func() {
		s.selectService(5, slot(1, 9, 0), slot(3, 11, 0))

		err := s.flow.SelectSlot(1)
		s.Require().Error(err)
		s.ErrorIs(err, booking.ErrSlotElapsed)
		s.Equal("This time has already passed.", errs.Message(err, ""))
		s.Zero(s.flow.State().SelectedSlotID)
	})

	s.Run("unknown slot cannot be selected", func() {
		s.selectService(5, slot(3, 11, 0))

		err := s.flow.SelectSlot(99)
		s.Require().Error(err)
		s.Equal("This time slot is not available.", errs.Message(err, ""))
	})

	s.Run("valid slot becomes the selection", func() {
		s.selectService(5, slot(3, 11, 0))

		s.Require().NoError(s.flow.SelectSlot(3))
		state := s.flow.State()
		s.Equal(int64(3), state.SelectedSlotID)
		s.Equal("11:00 - 11:30", state.SelectedLabel)
		s.True(state.CanSubmit)

		s.flow.ClearSlot()
		s.False(s.flow.State().CanSubmit)
	})

	s.Run("changing service clears the selection", func() {
		s.selectService(5, slot(3, 11, 0))
		s.Require().NoError(s.flow.SelectSlot(3))

		s.selectService(6, slot(4, 12, 0))
		state := s.flow.State()
		s.Zero(state.SelectedSlotID)
		s.Equal(int64(6), state.ServiceID)
	})

	s.Run("slot failures only empty the list", func() {
		s.mockAPI.EXPECT().ListAvailableSlots(gomock.Any(), int64(5), s.today).
			Return(nil, errors.New("boom")).Times(1)

		s.Require().NoError(s.flow.SelectService(s.ctx, 5))
		s.Empty(s.flow.State().Slots)
	})

	s.Run("rejected token during a slot fetch reaches the caller", func() {
		s.mockAPI.EXPECT().ListAvailableSlots(gomock.Any(), int64(5), s.today).
			DoAndReturn(func(context.Context, int64, booking.Date) ([]booking.Slot, error) {
				s.flow.Reset()
				return nil, errs.ErrUnauthorized
			}).Times(1)

		s.ErrorIs(s.flow.SelectService(s.ctx, 5), errs.ErrUnauthorized)
	})

	s.Run("rejected token on a date change reaches the caller", func() {
		tomorrow := booking.DateOf(s.clock.Now().AddDate(0, 0, 1))
		s.selectService(5, slot(1, 9, 0))
		s.mockAPI.EXPECT().ListAvailableSlots(gomock.Any(), int64(5), tomorrow).
			Return(nil, errs.ErrUnauthorized).Times(1)

		s.ErrorIs(s.flow.SelectDate(s.ctx, tomorrow), errs.ErrUnauthorized)
	})
}

func (s *ReservationFlowTestSuite) TestReset() {
	s.selectService(5, slot(3, 11, 0))
	s.Require().NoError(s.flow.SelectSlot(3))

	s.flow.Reset()

	state := s.flow.State()
	s.Zero(state.ServiceID)
	s.Zero(state.SelectedSlotID)
	s.Empty(state.Slots)
	s.Equal(s.today, state.Date)
}

func (s *ReservationFlowTestSuite) TestSubmit() {
	s.Run("incomplete selection never reaches the API", func() {
		s.mockAPI.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		err := s.flow.Submit(s.ctx, "")
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrIncompleteSelection)
		s.Equal("Please select service and time.", errs.Message(err, ""))
	})

	s.Run("success refreshes the slots and clears the selection", func() {
		s.selectService(5, slot(41, 11, 0), slot(42, 12, 0))
		s.Require().NoError(s.flow.SelectSlot(42))

		gomock.InOrder(
			s.mockAPI.EXPECT().CreateBooking(gomock.Any(), booking.Reservation{ServiceID: 5, AvailabilityID: 42, Notes: "window seat"}).
				Return(nil).Times(1),
			s.mockAPI.EXPECT().ListAvailableSlots(gomock.Any(), int64(5), s.today).
				Return([]booking.Slot{slot(41, 11, 0)}, nil).Times(1),
		)

		s.Require().NoError(s.flow.Submit(s.ctx, "window seat"))

		state := s.flow.State()
		s.Zero(state.SelectedSlotID)
		s.False(state.Submitting)
		s.Require().Len(state.Slots, 1)
		s.Equal(int64(41), state.Slots[0].ID)
	})

	s.Run("failure keeps the selection and surfaces the server message", func() {
		s.selectService(5, slot(42, 12, 0))
		s.Require().NoError(s.flow.SelectSlot(42))

		apiErr := &platform.Error{
			Status:         400,
			Kind:           errs.ErrValidationFailed,
			NonFieldErrors: []string{"This slot is already booked."},
		}
		s.mockAPI.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(apiErr).Times(1)

		err := s.flow.Submit(s.ctx, "")
		s.Require().Error(err)
		s.Equal("This slot is already booked.", errs.Message(err, "Booking failed."))

		state := s.flow.State()
		s.Equal(int64(42), state.SelectedSlotID)
		s.True(state.CanSubmit)
	})

	s.Run("slot that elapsed after selection is refused", func() {
		s.selectService(5, slot(7, 10, 30))
		s.Require().NoError(s.flow.SelectSlot(7))
		s.clock.Add(16 * time.Minute)
		s.mockAPI.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		err := s.flow.Submit(s.ctx, "")
		s.Require().Error(err)
		s.ErrorIs(err, booking.ErrSlotElapsed)
	})

	s.Run("second submit while one is in flight is refused", func() {
		s.selectService(5, slot(42, 12, 0))
		s.Require().NoError(s.flow.SelectSlot(42))

		started := make(chan struct{})
		release := make(chan struct{})
		s.mockAPI.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, booking.Reservation) error {
				close(started)
				<-release
				return errors.New("boom")
			}).Times(1)

		done := make(chan error, 1)
		go func() { done <- s.flow.Submit(s.ctx, "") }()
		<-started

		s.True(s.flow.State().Submitting)
		s.False(s.flow.State().CanSubmit)
		s.ErrorIs(s.flow.Submit(s.ctx, ""), usecase.ErrSubmitInProgress)

		close(release)
		s.Require().Error(<-done)
		s.False(s.flow.State().Submitting)
	})
}
