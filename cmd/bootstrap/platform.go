package bootstrap

import (
	"log/slog"

	"booking-console/internal/infra/platform"
	"booking-console/internal/pkg/config"
	"booking-console/internal/usecase"
	"booking-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var PlatformModule = fx.Module("platform",
	fx.Provide(
		fx.Annotate(
			NewPlatformClient,
			fx.As(fx.Self()),
			fx.As(new(shared.AuthAPI)),
			fx.As(new(shared.CatalogAPI)),
			fx.As(new(usecase.ReservationAPI)),
			fx.As(new(usecase.BoardAPI)),
		),
	),
)

// NewPlatformClient reads bearer tokens straight from the credential store.
func NewPlatformClient(cfg config.Config, store shared.CredentialStore, logger *slog.Logger) (*platform.Client, error) {
	return platform.NewClient(cfg.API, store, logger)
}
