package components

import (
	"log/slog"

	"booking-console/internal/pkg/clock"
	"booking-console/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSessionModule,
	usecaseBookingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		usecase.NewSessionManager,
		usecase.NewAccessGuard,
		usecase.NewRegistrationUseCase,
	),
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		usecase.NewSlotFetcher,
		usecase.NewReservationFlow,
		fx.Annotate(
			NewOwnBookingBoard,
			fx.ResultTags(`name:"ownBoard"`),
		),
		fx.Annotate(
			NewAdminBookingBoard,
			fx.ResultTags(`name:"adminBoard"`),
		),
	),
)

func NewOwnBookingBoard(api usecase.BoardAPI, clk clock.Clock, logger *slog.Logger) usecase.BookingBoard {
	return usecase.NewBookingBoard(usecase.ScopeOwn, api, clk, logger)
}

func NewAdminBookingBoard(api usecase.BoardAPI, clk clock.Clock, logger *slog.Logger) usecase.BookingBoard {
	return usecase.NewBookingBoard(usecase.ScopeAdmin, api, clk, logger)
}
