package queries

import (
	"context"

	"bookswap/internal/infra"
	"bookswap/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

const defaultRecentLimit = 20

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	FindAll(ctx context.Context) ([]*ListingView, error)
	FindByUser(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
	FindByBook(ctx context.Context, bookID uuid.UUID) ([]*ListingView, error)
	FindRecent(ctx context.Context, limit int32) ([]*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListAll(ctx context.Context) ([]*ListingView, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]*ListingView, error)
	ListRecent(ctx context.Context, limit int) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	repo ListingReadStore
}

func NewListingQueries(repo ListingReadStore) ListingQueries {
	return &listingQueriesImpl{repo: repo}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *listingQueriesImpl) ListAll(ctx context.Context) ([]*ListingView, error) {
	return q.repo.FindAll(ctx)
}

func (q *listingQueriesImpl) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error) {
	return q.repo.FindByUser(ctx, ownerID)
}

func (q *listingQueriesImpl) ListByBook(ctx context.Context, bookID uuid.UUID) ([]*ListingView, error) {
	return q.repo.FindByBook(ctx, bookID)
}

func (q *listingQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*ListingView, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return q.repo.FindRecent(ctx, int32(limit))
}
