package booking

import (
	"errors"
	"time"
)

var (
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrInPast           = errors.New("past bookings cannot be cancelled")
	ErrUnknownSchedule  = errors.New("booking schedule unknown")
	ErrNotPending       = errors.New("only pending bookings can be confirmed")
	ErrDateInPast       = errors.New("date is before today")
	ErrSlotElapsed      = errors.New("this time has already passed")
)

// CheckOwnerCancel applies the self-service cancel rule: not cancelled and starting in
// the future.
func CheckOwnerCancel(b Booking, now time.Time) error {
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	start, ok := b.Schedule.StartsAt(now.Location())
	if !ok {
		return ErrUnknownSchedule
	}
	if !start.After(now) {
		return ErrInPast
	}
	return nil
}

// CheckAdminCancel lets an administrator cancel anything that is not already cancelled.
func CheckAdminCancel(b Booking) error {
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return nil
}

func CheckConfirm(b Booking) error {
	if b.Status != StatusPending {
		return ErrNotPending
	}
	return nil
}

// CancelHint explains why the cancel action is unavailable, or "" when it is available.
func CancelHint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAlreadyCancelled):
		return "Already cancelled"
	default:
		return "Past bookings cannot be cancelled"
	}
}

// CheckSelectableDate rejects days before today.
func CheckSelectableDate(d Date, now time.Time) error {
	if d.Before(DateOf(now)) {
		return ErrDateInPast
	}
	return nil
}
