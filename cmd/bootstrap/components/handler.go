package components

import (
	"booking-console/internal/handler"
	"booking-console/internal/handler/api"
	"booking-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDashboardHandler,
		api.NewReservationHandler,
		fx.Annotate(
			api.NewBookingHandler,
			fx.ParamTags(`name:"ownBoard"`, `name:"adminBoard"`, ``),
		),
		middleware.NewGuardMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, dashboard *api.DashboardHandler, booking *api.BookingHandler, reservation *api.ReservationHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Dashboard:   dashboard,
		Booking:     booking,
		Reservation: reservation,
	}
}
