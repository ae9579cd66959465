package usecase

//go:generate mockgen -source=bookings.go -destination=../../tests/mock/usecase/bookings_mock.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"booking-console/internal/domain/booking"
	"booking-console/internal/pkg/clock"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

var (
	ErrBookingAlreadyCancelled = booking.ErrAlreadyCancelled
	ErrBookingInPast           = booking.ErrInPast
	ErrBookingNotPending       = booking.ErrNotPending
	ErrBookingNotFound         = errs.New("booking not found")
)

type BoardScope int

const (
	// ScopeOwn lists the signed-in user's bookings.
	ScopeOwn BoardScope = iota
	// ScopeAdmin lists every booking and honours the filter.
	ScopeAdmin
)

type BookingView struct {
	booking.Booking
	ServiceName string
	DateLabel   string
	TimeLabel   string
	CanCancel   bool
	CancelHint  string
	CanConfirm  bool
}

type BoardState struct {
	Filter   booking.Filter
	Services []booking.Service
	Bookings []BookingView
	Loading  bool
}

type BoardAPI interface {
	shared.BookingAPI
	ListServices(ctx context.Context) ([]booking.Service, error)
}

type BookingBoard interface {
	Load(ctx context.Context, filter booking.Filter) error
	Reload(ctx context.Context) error
	Cancel(ctx context.Context, id int64) error
	Confirm(ctx context.Context, id int64) error
	State() BoardState
	Reset()
}

type bookingBoardImpl struct {
	scope  BoardScope
	api    BoardAPI
	clock  clock.Clock
	logger *slog.Logger

	mu         sync.Mutex
	generation shared.Generation
	filter     booking.Filter
	services   []booking.Service
	bookings   []booking.Booking
	loading    bool
}

func NewBookingBoard(scope BoardScope, api BoardAPI, clk clock.Clock, logger *slog.Logger) BookingBoard {
	return &bookingBoardImpl{scope: scope, api: api, clock: clk, logger: logger}
}

// Load fetches bookings and the service catalogue together. Only the latest load may
// change the board; a failed catalogue only costs the service names.
func (b *bookingBoardImpl) Load(ctx context.Context, filter booking.Filter) error {
	filter.Username = strings.TrimSpace(filter.Username)
	if b.scope == ScopeOwn {
		filter = booking.Filter{}
	}

	b.mu.Lock()
	gen := b.generation.Next()
	b.filter = filter
	b.loading = true
	b.mu.Unlock()

	var (
		bookings []booking.Booking
		services []booking.Service
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = b.api.ListBookings(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = b.api.ListServices(gctx)
		if err != nil {
			b.logger.Warn("Failed to load services for the booking board", slog.String("error", err.Error()))
			services = nil
		}
		return nil
	})
	err := g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.generation.IsCurrent(gen) {
		// A rejected token resets the board through sign-out before this load returns.
		if errors.Is(err, errs.ErrUnauthorized) {
			return err
		}
		return nil
	}
	b.loading = false
	if services != nil {
		b.services = services
	}
	if err != nil {
		b.bookings = nil
		b.logger.Warn("Failed to load bookings",
			slog.String("kind", errs.Kind(err)),
			slog.String("error", err.Error()),
		)
		return err
	}
	b.bookings = bookings
	return nil
}

func (b *bookingBoardImpl) Reload(ctx context.Context) error {
	b.mu.Lock()
	filter := b.filter
	b.mu.Unlock()
	return b.Load(ctx, filter)
}

func (b *bookingBoardImpl) Cancel(ctx context.Context, id int64) error {
	b.mu.Lock()
	current, err := b.findLocked(id)
	if err == nil {
		err = b.checkCancel(current)
	}
	b.mu.Unlock()
	if err != nil {
		return err
	}

	updated, err := b.api.CancelBooking(ctx, id)
	if err != nil {
		return err
	}
	b.logger.Info("Booking cancelled", slog.Int64("booking_id", id))
	return b.afterAction(ctx, updated)
}

func (b *bookingBoardImpl) Confirm(ctx context.Context, id int64) error {
	b.mu.Lock()
	current, err := b.findLocked(id)
	if err == nil {
		if ruleErr := booking.CheckConfirm(current); ruleErr != nil {
			err = errs.NewLocalCause(errs.ErrValidationFailed, ruleErr, "Only pending bookings can be confirmed.")
		}
	}
	b.mu.Unlock()
	if err != nil {
		return err
	}

	if _, err := b.api.ConfirmBooking(ctx, id); err != nil {
		return err
	}
	b.logger.Info("Booking confirmed", slog.Int64("booking_id", id))
	return b.Reload(ctx)
}

// afterAction reloads the admin board; the own board swaps in the updated booking.
func (b *bookingBoardImpl) afterAction(ctx context.Context, updated *booking.Booking) error {
	if b.scope == ScopeAdmin || updated == nil {
		return b.Reload(ctx)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if idx := slices.IndexFunc(b.bookings, func(x booking.Booking) bool { return x.ID == updated.ID }); idx >= 0 {
		b.bookings[idx] = *updated
	}
	return nil
}

func (b *bookingBoardImpl) findLocked(id int64) (booking.Booking, error) {
	idx := slices.IndexFunc(b.bookings, func(x booking.Booking) bool { return x.ID == id })
	if idx < 0 {
		return booking.Booking{}, errs.NewLocalCause(errs.ErrValidationFailed, ErrBookingNotFound, "Booking not found.")
	}
	return b.bookings[idx], nil
}

func (b *bookingBoardImpl) checkCancel(x booking.Booking) error {
	if err := b.checkCancelRule(x); err != nil {
		return errs.NewLocalCause(errs.ErrValidationFailed, err, booking.CancelHint(err)+".")
	}
	return nil
}

// Reset empties the board and discards any load in flight.
func (b *bookingBoardImpl) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation.Next()
	b.filter = booking.Filter{}
	b.bookings = nil
	b.loading = false
}

func (b *bookingBoardImpl) State() BoardState {
	b.mu.Lock()
	defer b.mu.Unlock()

	views := make([]BookingView, 0, len(b.bookings))
	for _, x := range b.bookings {
		cancelErr := b.checkCancelRule(x)
		views = append(views, BookingView{
			Booking:     x,
			ServiceName: booking.ServiceName(b.services, x.ServiceID),
			DateLabel:   x.Schedule.Date.DisplayDMY(),
			TimeLabel:   x.Schedule.Label(),
			CanCancel:   cancelErr == nil,
			CancelHint:  booking.CancelHint(cancelErr),
			CanConfirm:  b.scope == ScopeAdmin && booking.CheckConfirm(x) == nil,
		})
	}

	return BoardState{
		Filter:   b.filter,
		Services: slices.Clone(b.services),
		Bookings: views,
		Loading:  b.loading,
	}
}

func (b *bookingBoardImpl) checkCancelRule(x booking.Booking) error {
	if b.scope == ScopeAdmin {
		return booking.CheckAdminCancel(x)
	}
	return booking.CheckOwnerCancel(x, b.clock.Now())
}
