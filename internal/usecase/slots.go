package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"booking-console/internal/domain/booking"
	"booking-console/internal/pkg/errs"
	"booking-console/internal/usecase/shared"
)

// SlotTarget is the (service, date) pair availability is fetched for.
type SlotTarget struct {
	ServiceID int64
	Date      booking.Date
}

func (t SlotTarget) IsZero() bool {
	return t.ServiceID == 0
}

type SlotsSnapshot struct {
	Target     SlotTarget
	Slots      []booking.Slot
	Loading    bool
	Generation uint64
}

// SlotFetcher keeps the availability of one target. Every fetch takes a new generation
// and only the latest generation may change what is visible, whatever order the
// responses arrive in.
type SlotFetcher struct {
	api    shared.CatalogAPI
	logger *slog.Logger

	mu         sync.Mutex
	generation shared.Generation
	target     SlotTarget
	slots      []booking.Slot
	loading    bool
}

func NewSlotFetcher(api shared.CatalogAPI, logger *slog.Logger) *SlotFetcher {
	return &SlotFetcher{api: api, logger: logger}
}

// SlotRequest is an issued fetch. Run performs it and reports whether its result was
// applied, along with the fetch error even when the result was stale.
type SlotRequest struct {
	fetcher    *SlotFetcher
	target     SlotTarget
	generation uint64
}

// Begin issues a fetch for target. A new target hides the previous list at once; the
// same target keeps it visible while loading.
func (f *SlotFetcher) Begin(target SlotTarget) *SlotRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.beginLocked(target)
}

func (f *SlotFetcher) beginLocked(target SlotTarget) *SlotRequest {
	gen := f.generation.Next()
	if target != f.target {
		f.slots = nil
	}
	f.target = target
	f.loading = true
	return &SlotRequest{fetcher: f, target: target, generation: gen}
}

// BeginRefresh issues a refresh only when target is still the current one.
func (f *SlotFetcher) BeginRefresh(target SlotTarget) (*SlotRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if target.IsZero() || target != f.target {
		return nil, false
	}
	return f.beginLocked(target), true
}

func (f *SlotFetcher) Fetch(ctx context.Context, target SlotTarget) (bool, error) {
	return f.Begin(target).Run(ctx)
}

// Refresh re-fetches the current target.
func (f *SlotFetcher) Refresh(ctx context.Context) (bool, error) {
	f.mu.Lock()
	target := f.target
	f.mu.Unlock()
	return f.RefreshTarget(ctx, target)
}

func (f *SlotFetcher) RefreshTarget(ctx context.Context, target SlotTarget) (bool, error) {
	req, ok := f.BeginRefresh(target)
	if !ok {
		return false, nil
	}
	return req.Run(ctx)
}

// Reset forgets the target and discards anything in flight.
func (f *SlotFetcher) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation.Next()
	f.target = SlotTarget{}
	f.slots = nil
	f.loading = false
}

func (f *SlotFetcher) Snapshot() SlotsSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return SlotsSnapshot{
		Target:     f.target,
		Slots:      slices.Clone(f.slots),
		Loading:    f.loading,
		Generation: f.generation.Current(),
	}
}

func (r *SlotRequest) Run(ctx context.Context) (bool, error) {
	f := r.fetcher
	slots, err := f.api.ListAvailableSlots(ctx, r.target.ServiceID, r.target.Date)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.generation.IsCurrent(r.generation) {
		f.logger.Debug("Discarding stale slot result",
			slog.Int64("service_id", r.target.ServiceID),
			slog.String("date", r.target.Date.String()),
			slog.Uint64("generation", r.generation),
		)
		return false, err
	}

	f.loading = false
	if err != nil {
		// Outdated availability is never shown after a failure.
		f.slots = []booking.Slot{}
		f.logger.Warn("Failed to fetch available slots",
			slog.Int64("service_id", r.target.ServiceID),
			slog.String("date", r.target.Date.String()),
			slog.String("kind", errs.Kind(err)),
			slog.String("error", err.Error()),
		)
		return true, err
	}
	if slots == nil {
		slots = []booking.Slot{}
	}
	f.slots = slots
	return true, nil
}
