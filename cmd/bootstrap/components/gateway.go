package components

import (
	"studio-checkout/internal/infra/cache"
	"studio-checkout/internal/infra/gateway"
	"studio-checkout/internal/infra/mailbox"
	"studio-checkout/internal/usecase/commands"
	"studio-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewCatalogGateway,
			fx.As(new(cache.Source)),
		),
		// One cache instance serves both sides of the usecase split.
		fx.Annotate(
			cache.NewCatalogCache,
			fx.As(new(commands.CatalogProvider)),
			fx.As(new(queries.CatalogProvider)),
		),
		fx.Annotate(
			gateway.NewPromotionGateway,
			fx.As(new(commands.PromotionGateway)),
			fx.As(new(queries.PromotionReader)),
		),
		fx.Annotate(
			mailbox.NewSelectionMailbox,
			fx.As(new(commands.SelectionMailbox)),
		),
	),
)
