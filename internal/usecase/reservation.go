package usecase

//go:generate mockgen -source=reservation.go -destination=../../tests/mock/usecase/reservation_mock.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"booking-console/internal/domain/booking"
	"booking-console/internal/pkg/clock"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase/shared"
)

var ErrSubmitInProgress = errs.New("a reservation is already being submitted")

const (
	msgIncompleteSelection = "Please select service and time."
	msgSlotElapsed         = "This time has already passed."
	msgSlotUnavailable     = "This time slot is not available."
	msgDateInPast          = "Please pick today or a later date."
	msgUnknownService      = "Please select a valid service."
)

type SlotOption struct {
	booking.Slot
	Elapsed bool
}

type ReservationState struct {
	Services       []booking.Service
	ServiceID      int64
	Date           booking.Date
	MinDate        booking.Date
	Slots          []SlotOption
	SlotsLoading   bool
	SelectedSlotID int64
	SelectedLabel  string
	Submitting     bool
	CanSubmit      bool
}

type ReservationAPI interface {
	shared.CatalogAPI
	CreateBooking(ctx context.Context, r booking.Reservation) error
}

// ReservationFlow drives service, date and slot selection and submits the reservation.
type ReservationFlow interface {
	LoadServices(ctx context.Context) error
	SelectService(ctx context.Context, serviceID int64) error
	SelectDate(ctx context.Context, date booking.Date) error
	SelectSlot(slotID int64) error
	ClearSlot()
	State() ReservationState
	Submit(ctx context.Context, notes string) error
	// Reset forgets every selection, e.g. when the user signs out.
	Reset()
}

type reservationFlowImpl struct {
	api    ReservationAPI
	slots  *SlotFetcher
	clock  clock.Clock
	logger *slog.Logger

	mu         sync.Mutex
	services   []booking.Service
	serviceID  int64
	date       booking.Date
	selected   int64
	submitting bool
}

func NewReservationFlow(api ReservationAPI, slots *SlotFetcher, clk clock.Clock, logger *slog.Logger) ReservationFlow {
	return &reservationFlowImpl{
		api:    api,
		slots:  slots,
		clock:  clk,
		logger: logger,
		date:   booking.DateOf(clk.Now()),
	}
}

func (f *reservationFlowImpl) LoadServices(ctx context.Context) error {
	services, err := f.api.ListServices(ctx)
	if err != nil {
		f.logger.Warn("Failed to load services", slog.String("error", err.Error()))
		return err
	}

	f.mu.Lock()
	f.services = services
	f.mu.Unlock()
	return nil
}

func (f *reservationFlowImpl) SelectService(ctx context.Context, serviceID int64) error {
	f.mu.Lock()
	if serviceID <= 0 || (len(f.services) > 0 && !slices.ContainsFunc(f.services, func(s booking.Service) bool { return s.ID == serviceID })) {
		f.mu.Unlock()
		return errs.NewLocal(errs.ErrValidationFailed, msgUnknownService)
	}
	f.serviceID = serviceID
	req := f.retargetLocked()
	f.mu.Unlock()

	return runSlots(ctx, req)
}

func (f *reservationFlowImpl) SelectDate(ctx context.Context, date booking.Date) error {
	if err := booking.CheckSelectableDate(date, f.clock.Now()); err != nil {
		return errs.NewLocalCause(errs.ErrValidationFailed, err, msgDateInPast)
	}

	f.mu.Lock()
	f.date = date
	if f.serviceID == 0 {
		f.selected = 0
		f.slots.Reset()
		f.mu.Unlock()
		return nil
	}
	req := f.retargetLocked()
	f.mu.Unlock()

	return runSlots(ctx, req)
}

// runSlots hides fetch failures behind an empty list, except a rejected token, which has
// to reach the caller even when the sign-out already made the request stale.
func runSlots(ctx context.Context, req *SlotRequest) error {
	if _, err := req.Run(ctx); errors.Is(err, errs.ErrUnauthorized) {
		return err
	}
	return nil
}

// retargetLocked clears the selection and issues the fetch while the flow lock is held,
// so the fetcher's target always follows the latest selection.
func (f *reservationFlowImpl) retargetLocked() *SlotRequest {
	f.selected = 0
	return f.slots.Begin(SlotTarget{ServiceID: f.serviceID, Date: f.date})
}

func (f *reservationFlowImpl) SelectSlot(slotID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, err := f.lookupLocked(slotID)
	if err != nil {
		return err
	}
	f.selected = slot.ID
	return nil
}

func (f *reservationFlowImpl) lookupLocked(slotID int64) (booking.Slot, error) {
	snap := f.slots.Snapshot()
	if snap.Target != (SlotTarget{ServiceID: f.serviceID, Date: f.date}) {
		return booking.Slot{}, errs.NewLocal(errs.ErrValidationFailed, msgSlotUnavailable)
	}

	idx := slices.IndexFunc(snap.Slots, func(s booking.Slot) bool { return s.ID == slotID })
	if idx < 0 {
		return booking.Slot{}, errs.NewLocal(errs.ErrValidationFailed, msgSlotUnavailable)
	}

	slot := snap.Slots[idx]
	if slot.IsElapsed(f.date, f.clock.Now()) {
		return booking.Slot{}, errs.NewLocalCause(errs.ErrValidationFailed, booking.ErrSlotElapsed, msgSlotElapsed)
	}
	return slot, nil
}

func (f *reservationFlowImpl) ClearSlot() {
	f.mu.Lock()
	f.selected = 0
	f.mu.Unlock()
}

func (f *reservationFlowImpl) State() ReservationState {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.clock.Now()
	snap := f.slots.Snapshot()
	state := ReservationState{
		Services:       slices.Clone(f.services),
		ServiceID:      f.serviceID,
		Date:           f.date,
		MinDate:        booking.DateOf(now),
		SlotsLoading:   snap.Loading,
		SelectedSlotID: f.selected,
		Submitting:     f.submitting,
	}

	if snap.Target == (SlotTarget{ServiceID: f.serviceID, Date: f.date}) {
		state.Slots = make([]SlotOption, 0, len(snap.Slots))
		for _, s := range snap.Slots {
			state.Slots = append(state.Slots, SlotOption{Slot: s, Elapsed: s.IsElapsed(f.date, now)})
			if s.ID == f.selected {
				state.SelectedLabel = s.Label()
			}
		}
	}
	state.CanSubmit = f.serviceID != 0 && f.selected != 0 && !f.submitting
	return state
}

func (f *reservationFlowImpl) Submit(ctx context.Context, notes string) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if f.serviceID == 0 || f.selected == 0 {
		f.mu.Unlock()
		return errs.NewLocal(errs.ErrIncompleteSelection, msgIncompleteSelection)
	}
	// The slot may have elapsed since it was selected.
	slot, err := f.lookupLocked(f.selected)
	if err != nil {
		f.mu.Unlock()
		return err
	}

	target := SlotTarget{ServiceID: f.serviceID, Date: f.date}
	reservation := booking.Reservation{ServiceID: f.serviceID, AvailabilityID: slot.ID, Notes: notes}
	f.submitting = true
	f.mu.Unlock()

	err = f.api.CreateBooking(ctx, reservation)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		f.logger.Warn("Reservation failed",
			slog.Int64("service_id", reservation.ServiceID),
			slog.Int64("availability_id", reservation.AvailabilityID),
			slog.String("kind", errs.Kind(err)),
			slog.String("error", err.Error()),
		)
		return err
	}

	sameTarget := target == SlotTarget{ServiceID: f.serviceID, Date: f.date}
	if sameTarget && f.selected == reservation.AvailabilityID {
		f.selected = 0
	}
	var refresh *SlotRequest
	if sameTarget {
		refresh, _ = f.slots.BeginRefresh(target)
	}
	f.mu.Unlock()

	f.logger.Info("Reservation created",
		slog.Int64("service_id", reservation.ServiceID),
		slog.Int64("availability_id", reservation.AvailabilityID),
	)
	if refresh != nil {
		_, _ = refresh.Run(ctx)
	}
	return nil
}

func (f *reservationFlowImpl) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.serviceID = 0
	f.selected = 0
	f.date = booking.DateOf(f.clock.Now())
	f.slots.Reset()
}
