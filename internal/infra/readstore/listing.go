package readstore

import (
	"context"

	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listingSelect = `
	SELECT l.id, l.book_id, b.title, b.author, l.owner_id, u.username,
	       l.description, l.listed_at, l.created_at, l.updated_at
	FROM listings l
	JOIN books b ON b.id = l.book_id
	JOIN users u ON u.id = l.owner_id`

type ListingReadStore struct {
	db infradb.DBTX
}

func NewListingReadStore(db infradb.DBTX) *ListingReadStore {
	return &ListingReadStore{db: db}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row := r.db.QueryRow(ctx, listingSelect+` WHERE l.id = $1`, id)

	view, err := scanListingView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	return view, nil
}

func (r *ListingReadStore) FindAll(ctx context.Context) ([]*queries.ListingView, error) {
	return r.findMany(ctx, listingSelect+` ORDER BY l.listed_at DESC, l.id`)
}

func (r *ListingReadStore) FindByUser(ctx context.Context, ownerID uuid.UUID) ([]*queries.ListingView, error) {
	return r.findMany(ctx, listingSelect+` WHERE l.owner_id = $1 ORDER BY l.listed_at DESC, l.id`, ownerID)
}

func (r *ListingReadStore) FindByBook(ctx context.Context, bookID uuid.UUID) ([]*queries.ListingView, error) {
	return r.findMany(ctx, listingSelect+` WHERE l.book_id = $1 ORDER BY l.listed_at DESC, l.id`, bookID)
}

func (r *ListingReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.ListingView, error) {
	return r.findMany(ctx, listingSelect+` ORDER BY l.listed_at DESC, l.id LIMIT $1`, limit)
}

func (r *ListingReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query listings", err)
	}
	defer rows.Close()

	var result []*queries.ListingView
	for rows.Next() {
		view, err := scanListingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing rows", err)
	}

	return result, nil
}

func scanListingView(row pgx.Row) (*queries.ListingView, error) {
	var v queries.ListingView
	err := row.Scan(
		&v.ID, &v.BookID, &v.BookTitle, &v.BookAuthor, &v.OwnerID, &v.OwnerName,
		&v.Description, &v.ListedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
