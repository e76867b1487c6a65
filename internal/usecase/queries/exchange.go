package queries

import (
	"context"

	"bookswap/internal/domain/exchange"
	"bookswap/internal/infra"
	"bookswap/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExchangeNotFound = errs.New("exchange request not found")
	ErrNotParticipant   = errs.New("caller is not a participant of the exchange")
	ErrInvalidStatus    = errs.New("invalid exchange status filter")
)

type ExchangeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExchangeView, error)
	FindByRequesteeListing(ctx context.Context, listingID uuid.UUID) ([]*ExchangeView, error)
	FindByRequesterListing(ctx context.Context, listingID uuid.UUID) ([]*ExchangeView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ExchangeView, error)
	FindByStatus(ctx context.Context, status string) ([]*ExchangeView, error)
}

type ListingLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ExchangeQueries interface {
	// GetByID returns the request with both listings joined. Only a caller
	// owning one of the referenced listings may view it.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*ExchangeDetailView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ExchangeView, error)
	ListByRequesteeListing(ctx context.Context, listingID uuid.UUID) ([]*ExchangeView, error)
	ListByRequesterListing(ctx context.Context, listingID uuid.UUID) ([]*ExchangeView, error)
	ListByStatus(ctx context.Context, status string) ([]*ExchangeView, error)
}

type exchangeQueriesImpl struct {
	repo     ExchangeReadStore
	listings ListingLookup
}

func NewExchangeQueries(repo ExchangeReadStore, listings ListingLookup) ExchangeQueries {
	return &exchangeQueriesImpl{repo: repo, listings: listings}
}

func (q *exchangeQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*ExchangeDetailView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrExchangeNotFound)
		}
		return nil, err
	}

	// Participation is judged by the owner IDs recorded at proposal time, so
	// retiring the listings never locks participants out of the record.
	if view.RequesteeOwnerID != actorID && view.RequesterOwnerID != actorID {
		return nil, ErrNotParticipant
	}

	detail := &ExchangeDetailView{Request: *view}

	// Retired listings may already be gone; the detail simply omits them.
	if l, lerr := q.listings.FindByID(ctx, view.RequesteeListingID); lerr == nil {
		detail.RequesteeListing = l
	} else if !infra.IsKind(lerr, infra.KindNotFound) {
		return nil, lerr
	}
	if l, lerr := q.listings.FindByID(ctx, view.RequesterListingID); lerr == nil {
		detail.RequesterListing = l
	} else if !infra.IsKind(lerr, infra.KindNotFound) {
		return nil, lerr
	}

	return detail, nil
}

func (q *exchangeQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ExchangeView, error) {
	return q.repo.FindByUser(ctx, userID)
}

func (q *exchangeQueriesImpl) ListByRequesteeListing(ctx context.Context, listingID uuid.UUID) ([]*ExchangeView, error) {
	return q.repo.FindByRequesteeListing(ctx, listingID)
}

func (q *exchangeQueriesImpl) ListByRequesterListing(ctx context.Context, listingID uuid.UUID) ([]*ExchangeView, error) {
	return q.repo.FindByRequesterListing(ctx, listingID)
}

func (q *exchangeQueriesImpl) ListByStatus(ctx context.Context, status string) ([]*ExchangeView, error) {
	if _, err := exchange.NewStatus(status); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}
	return q.repo.FindByStatus(ctx, status)
}
