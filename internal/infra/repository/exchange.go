package repository

import (
	"context"

	"bookswap/internal/domain/exchange"
	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"

	"github.com/google/uuid"
)

type ExchangeRepository struct{}

func NewExchangeRepository() *ExchangeRepository {
	return &ExchangeRepository{}
}

// Exists checks the ordered-pair duplicate invariant. The reverse pair is a
// distinct proposal and does not count.
func (r *ExchangeRepository) Exists(ctx context.Context, db infradb.DBTX, requesteeListingID, requesterListingID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM exchange_requests
			WHERE requestee_listing_id = $1 AND requester_listing_id = $2
		)`

	var exists bool
	err := db.QueryRow(ctx, query, requesteeListingID, requesterListingID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check exchange request existence", err)
	}

	return exists, nil
}

// Create relies on the unique index over the ordered listing pair so that two
// concurrent creates for the same pair cannot both commit.
func (r *ExchangeRepository) Create(ctx context.Context, db infradb.DBTX, req *exchange.Request) (uuid.UUID, error) {
	const query = `
		INSERT INTO exchange_requests (id, requestee_listing_id, requestee_owner_id,
		                               requester_listing_id, requester_owner_id, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, query,
		req.ID(), req.RequesteeID(), req.RequesteeOwnerID(),
		req.RequesterID(), req.RequesterOwnerID(), req.Status().String(), req.RequestedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create exchange request", err)
	}

	return id, nil
}

// UpdateStatus is a compare-and-swap on the status column. A concurrent
// transition that already moved the row off `from` makes this report false
// instead of overwriting it.
func (r *ExchangeRepository) UpdateStatus(ctx context.Context, db infradb.DBTX, id uuid.UUID, from, to exchange.Status) (bool, error) {
	const query = `
		UPDATE exchange_requests
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := db.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update exchange request status", err)
	}

	return tag.RowsAffected() > 0, nil
}

// RejectSiblings rejects every other request targeting the same requestee
// listing, regardless of prior status. Runs in the acceptance transaction.
func (r *ExchangeRepository) RejectSiblings(ctx context.Context, db infradb.DBTX, requesteeListingID, acceptedID uuid.UUID) (int64, error) {
	const query = `
		UPDATE exchange_requests
		SET status = 'rejected', updated_at = now()
		WHERE requestee_listing_id = $1 AND id <> $2`

	tag, err := db.Exec(ctx, query, requesteeListingID, acceptedID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject competing exchange requests", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ExchangeRepository) Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM exchange_requests WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete exchange request", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByBook removes requests referencing any listing of the book in either
// role. Must run before the book's listing rows are deleted.
func (r *ExchangeRepository) DeleteByBook(ctx context.Context, db infradb.DBTX, bookID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM exchange_requests
		WHERE requestee_listing_id IN (SELECT id FROM listings WHERE book_id = $1)
		   OR requester_listing_id IN (SELECT id FROM listings WHERE book_id = $1)`

	tag, err := db.Exec(ctx, query, bookID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete exchange requests by book", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByListing removes requests referencing the listing in either role.
func (r *ExchangeRepository) DeleteByListing(ctx context.Context, db infradb.DBTX, listingID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM exchange_requests
		WHERE requestee_listing_id = $1 OR requester_listing_id = $1`

	tag, err := db.Exec(ctx, query, listingID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete exchange requests by listing", err)
	}
	return tag.RowsAffected(), nil
}
