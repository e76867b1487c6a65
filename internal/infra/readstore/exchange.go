package readstore

import (
	"context"

	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const exchangeSelect = `
	SELECT e.id, e.requestee_listing_id, e.requestee_owner_id,
	       e.requester_listing_id, e.requester_owner_id, e.status,
	       e.requested_at, e.created_at, e.updated_at
	FROM exchange_requests e`

type ExchangeReadStore struct {
	db infradb.DBTX
}

func NewExchangeReadStore(db infradb.DBTX) *ExchangeReadStore {
	return &ExchangeReadStore{db: db}
}

func (r *ExchangeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExchangeView, error) {
	row := r.db.QueryRow(ctx, exchangeSelect+` WHERE e.id = $1`, id)

	view, err := scanExchangeView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exchange request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exchange request by ID", err)
	}

	return view, nil
}

func (r *ExchangeReadStore) FindByRequesteeListing(ctx context.Context, listingID uuid.UUID) ([]*queries.ExchangeView, error) {
	return r.findMany(ctx, exchangeSelect+` WHERE e.requestee_listing_id = $1 ORDER BY e.requested_at DESC`, listingID)
}

func (r *ExchangeReadStore) FindByRequesterListing(ctx context.Context, listingID uuid.UUID) ([]*queries.ExchangeView, error) {
	return r.findMany(ctx, exchangeSelect+` WHERE e.requester_listing_id = $1 ORDER BY e.requested_at DESC`, listingID)
}

// FindByUser matches against the owner IDs recorded at proposal time, so a
// user's accepted requests remain listed after both listings are retired.
func (r *ExchangeReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ExchangeView, error) {
	const query = exchangeSelect + `
		WHERE e.requestee_owner_id = $1 OR e.requester_owner_id = $1
		ORDER BY e.requested_at DESC`
	return r.findMany(ctx, query, userID)
}

func (r *ExchangeReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.ExchangeView, error) {
	return r.findMany(ctx, exchangeSelect+` WHERE e.status = $1 ORDER BY e.requested_at DESC`, status)
}

func (r *ExchangeReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.ExchangeView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query exchange requests", err)
	}
	defer rows.Close()

	var result []*queries.ExchangeView
	for rows.Next() {
		view, err := scanExchangeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan exchange request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate exchange request rows", err)
	}

	return result, nil
}

func scanExchangeView(row pgx.Row) (*queries.ExchangeView, error) {
	var v queries.ExchangeView
	err := row.Scan(
		&v.ID, &v.RequesteeListingID, &v.RequesteeOwnerID,
		&v.RequesterListingID, &v.RequesterOwnerID, &v.Status,
		&v.RequestedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
