package repository

import (
	"context"

	"bookswap/internal/domain/listing"
	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(ctx context.Context, db infradb.DBTX, l *listing.Listing) (uuid.UUID, error) {
	const query = `
		INSERT INTO listings (id, book_id, owner_id, description, listed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, query,
		l.ID(), l.BookID(), l.OwnerID(), l.Description(), l.ListedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}

	return id, nil
}

func (r *ListingRepository) Update(ctx context.Context, db infradb.DBTX, id uuid.UUID, fields shared.ListingPatch) error {
	const query = `
		UPDATE listings
		SET description = COALESCE($2, description),
		    listed_at   = COALESCE($3, listed_at),
		    book_id     = COALESCE($4, book_id),
		    updated_at  = now()
		WHERE id = $1`

	tag, err := db.Exec(ctx, query, id, fields.Description, fields.ListedAt, fields.BookID)
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}

	return nil
}

// Delete reports whether a row was removed. Absence is not an error.
func (r *ListingRepository) Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete listing", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ListingRepository) DeleteByBook(ctx context.Context, db infradb.DBTX, bookID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM listings WHERE book_id = $1`, bookID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete listings by book", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ListingRepository) DeleteByUser(ctx context.Context, db infradb.DBTX, ownerID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM listings WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete listings by user", err)
	}
	return tag.RowsAffected(), nil
}
