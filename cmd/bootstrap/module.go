package bootstrap

import (
	"washdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
