package components

import (
	"slotbooker/internal/infra/db"
	"slotbooker/internal/infra/readstore"
	"slotbooker/internal/infra/uow"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read stores back the query side and run against the pool, not
		// a transaction.
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPublicReadStore,
			fx.As(new(queries.PublicReadStore)),
		),
		fx.Annotate(
			readstore.NewOrganizerReadStore,
			fx.As(new(queries.OrganizerReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
