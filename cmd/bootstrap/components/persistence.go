package components

import (
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/infra/readstore"
	"bookswap/internal/infra/uow"
	"bookswap/internal/usecase/commands"
	"bookswap/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork (constructor already returns the port)
		uow.NewPostgresUoW,
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserReadStore)),
		),
		// Book
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		// Listing
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(queries.ListingLookup)),
		),
		// Exchange
		fx.Annotate(
			readstore.NewExchangeReadStore,
			fx.As(new(queries.ExchangeReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infradb.DBTX {
	return pool
}
