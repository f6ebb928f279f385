package components

import (
	repo_impl "studio-checkout/internal/infra/repository"
	"studio-checkout/internal/usecase/commands"
	"studio-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewGrantRepository,
			fx.As(new(commands.GrantRepository)),
			fx.As(new(queries.GrantReadStore)),
		),
	),
)
