package bootstrap

import (
	"booking-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	PlatformModule,
	components.UseCaseModule,
	components.HandlerModule,
	SessionModule,
)
