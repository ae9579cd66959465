package bootstrap

import (
	"context"
	"log/slog"

	"booking-console/internal/infra/credstore"
	"booking-console/internal/pkg/config"
	"booking-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewCredentialStore,
			fx.As(new(shared.CredentialStore)),
		),
	),
)

func NewCredentialStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (credstore.Store, error) {
	store, err := credstore.New(context.Background(), cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	logger.Info("Credential store ready", slog.String("driver", cfg.Store.Driver), slog.String("profile", cfg.Store.Profile))
	return store, nil
}
