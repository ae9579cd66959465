package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"booking-console/internal/domain/booking"
	"booking-console/internal/domain/session"
	"booking-console/internal/domain/user"
)

// CredentialStore holds the access token, refresh token and last-known username.
// Only the session manager writes it.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	Login(ctx context.Context, creds session.Credentials) (session.TokenPair, error)
	Me(ctx context.Context) (session.Identity, error)
	Register(ctx context.Context, reg *user.Registration) error
}

type CatalogAPI interface {
	ListServices(ctx context.Context) ([]booking.Service, error)
	ListAvailableSlots(ctx context.Context, serviceID int64, date booking.Date) ([]booking.Slot, error)
}

type BookingAPI interface {
	ListBookings(ctx context.Context, filter booking.Filter) ([]booking.Booking, error)
	CreateBooking(ctx context.Context, r booking.Reservation) error
	ConfirmBooking(ctx context.Context, id int64) (*booking.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*booking.Booking, error)
}
