package bootstrap

import (
	"studio-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.UpstreamConfig { return cfg.Upstream },
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	),
)
