package bootstrap

import (
	"context"
	"log/slog"

	"booking-console/internal/domain/session"
	"booking-console/internal/infra/platform"
	"booking-console/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Invoke(
		fx.Annotate(
			StartSession,
			fx.ParamTags(``, ``, ``, ``, `name:"ownBoard"`, `name:"adminBoard"`, ``),
		),
	),
)

// StartSession routes every rejected token to the session manager, clears per-user views
// on sign-out, and restores the persisted session once the app has started.
func StartSession(
	lc fx.Lifecycle,
	client *platform.Client,
	sessions usecase.SessionManager,
	flow usecase.ReservationFlow,
	own usecase.BookingBoard,
	admin usecase.BookingBoard,
	logger *slog.Logger,
) {
	client.OnUnauthorized(func(token string) {
		sessions.HandleUnauthorized(context.Background(), token)
	})

	unsubscribe := sessions.Subscribe(func(s session.Session) {
		if s.Status == session.StatusAnonymous {
			flow.Reset()
			own.Reset()
			admin.Reset()
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := sessions.Restore(ctx); err != nil {
					logger.Warn("Session restore failed", slog.String("error", err.Error()))
					return
				}
				current := sessions.Current()
				logger.Info("Session restored",
					slog.String("status", current.Status.String()),
					slog.String("username", current.Username),
				)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			unsubscribe()
			return nil
		},
	})
}
