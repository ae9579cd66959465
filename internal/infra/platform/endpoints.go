package platform

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"booking-console/internal/domain/booking"
	"booking-console/internal/domain/session"
	"booking-console/internal/domain/user"
	"booking-console/internal/pkg/errs"
)

// Login exchanges credentials for a token pair. A 401 here is ErrInvalidCredentials and
// never triggers the global unauthorized callback.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.TokenPair, error) {
	var resp tokenResponse
	_, err := c.do(ctx, request{
		method:           http.MethodPost,
		path:             "auth/login/",
		body:             loginRequest{Username: creds.Username, Password: creds.Password},
		unauthorizedKind: errs.ErrInvalidCredentials,
	}, &resp)
	if err != nil {
		return session.TokenPair{}, err
	}
	if resp.Access == "" {
		return session.TokenPair{}, &Error{Method: http.MethodPost, Path: "auth/login/", Status: http.StatusOK,
			Kind: errs.ErrUnknown, Detail: "Login response carried no access token."}
	}
	return session.TokenPair{AccessToken: resp.Access, RefreshToken: resp.Refresh}, nil
}

func (c *Client) Me(ctx context.Context) (session.Identity, error) {
	var resp meResponse
	_, err := c.do(ctx, request{method: http.MethodGet, path: "auth/me/", authenticated: true}, &resp)
	if err != nil {
		return session.Identity{}, err
	}
	return session.Identity{
		ID:          resp.ID,
		Username:    resp.Username,
		IsStaff:     resp.IsStaff,
		IsSuperuser: resp.IsSuperuser,
	}, nil
}

func (c *Client) Register(ctx context.Context, reg *user.Registration) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "auth/register/",
		body: registerRequest{
			Username:  reg.Username(),
			Password:  reg.Password().Value(),
			FirstName: reg.FirstName(),
			LastName:  reg.LastName(),
			Email:     reg.Email().Value(),
		},
	}, nil)
	return err
}

func (c *Client) ListServices(ctx context.Context) ([]booking.Service, error) {
	var resp []serviceDTO
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "services/", authenticated: true}, &resp); err != nil {
		return nil, err
	}

	services := make([]booking.Service, 0, len(resp))
	for _, d := range resp {
		services = append(services, toService(d))
	}
	return services, nil
}

func (c *Client) ListAvailableSlots(ctx context.Context, serviceID int64, date booking.Date) ([]booking.Slot, error) {
	var resp []slotDTO
	_, err := c.do(ctx, request{
		method:        http.MethodGet,
		path:          "services/" + strconv.FormatInt(serviceID, 10) + "/available-slots/",
		query:         url.Values{"date": {date.String()}},
		authenticated: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	slots := make([]booking.Slot, 0, len(resp))
	for _, d := range resp {
		slot, err := toSlot(d)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// ListBookings returns the caller's bookings, or every booking matching filter when the
// caller is an administrator.
func (c *Client) ListBookings(ctx context.Context, filter booking.Filter) ([]booking.Booking, error) {
	query := url.Values{}
	if filter.ServiceID > 0 {
		query.Set("service", strconv.FormatInt(filter.ServiceID, 10))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status.String())
	}
	if !filter.Date.IsZero() {
		query.Set("date", filter.Date.String())
	}
	if filter.Username != "" {
		query.Set("username", filter.Username)
	}

	var resp []bookingDTO
	_, err := c.do(ctx, request{method: http.MethodGet, path: "bookings/", query: query, authenticated: true}, &resp)
	if err != nil {
		return nil, err
	}

	bookings := make([]booking.Booking, 0, len(resp))
	for _, d := range resp {
		b, err := toBooking(d)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, r booking.Reservation) error {
	_, err := c.do(ctx, request{
		method:        http.MethodPost,
		path:          "bookings/",
		body:          createBookingRequest{Service: r.ServiceID, Availability: r.AvailabilityID, Notes: r.Notes},
		authenticated: true,
	}, nil)
	return err
}

func (c *Client) ConfirmBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	return c.bookingAction(ctx, id, "confirm")
}

func (c *Client) CancelBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	return c.bookingAction(ctx, id, "cancel")
}

// bookingAction returns the updated booking, or nil when the platform answers without a
// usable body. The action itself has succeeded either way.
func (c *Client) bookingAction(ctx context.Context, id int64, action string) (*booking.Booking, error) {
	var resp bookingDTO
	present, err := c.do(ctx, request{
		method:        http.MethodPost,
		path:          "bookings/" + strconv.FormatInt(id, 10) + "/" + action + "/",
		authenticated: true,
	}, &resp)
	if err != nil || !present {
		return nil, err
	}

	b, err := toBooking(resp)
	if err != nil {
		c.logger.Warn("Unreadable booking in action response",
			slog.String("action", action),
			slog.Int64("booking_id", id),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}
	return &b, nil
}
