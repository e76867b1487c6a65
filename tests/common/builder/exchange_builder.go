//go:build unit || e2e

package builder

import (
	"time"

	"bookswap/internal/domain/exchange"
	"bookswap/internal/pkg/clock"
	"bookswap/internal/usecase/queries"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExchangeBuilder struct {
	ID                 uuid.UUID
	RequesteeListingID uuid.UUID
	RequesteeOwnerID   uuid.UUID
	RequesterListingID uuid.UUID
	RequesterOwnerID   uuid.UUID
	Status             exchange.Status
	RequestedAt        time.Time
}

func NewExchangeBuilder() *ExchangeBuilder {
	return &ExchangeBuilder{
		ID:                 uuid.New(),
		RequesteeListingID: uuid.New(),
		RequesteeOwnerID:   uuid.New(),
		RequesterListingID: uuid.New(),
		RequesterOwnerID:   uuid.New(),
		Status:             exchange.StatusPending,
		RequestedAt:        time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	}
}

func (e *ExchangeBuilder) With(mutate func(*ExchangeBuilder)) *ExchangeBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *ExchangeBuilder) BuildDomain() (*exchange.Request, error) {
	services := &exchange.Services{Clock: clock.NewMockClock(e.RequestedAt)}
	return exchange.NewRequest(services,
		exchange.ListingSpec{ID: e.RequesteeListingID, OwnerID: e.RequesteeOwnerID},
		exchange.ListingSpec{ID: e.RequesterListingID, OwnerID: e.RequesterOwnerID},
	)
}

func (e *ExchangeBuilder) BuildSnapshot() *shared.ExchangeSnapshot {
	return &shared.ExchangeSnapshot{
		ID:                 e.ID,
		RequesteeListingID: e.RequesteeListingID,
		RequesteeOwnerID:   e.RequesteeOwnerID,
		RequesterListingID: e.RequesterListingID,
		RequesterOwnerID:   e.RequesterOwnerID,
		Status:             e.Status.String(),
		RequestedAt:        e.RequestedAt,
	}
}

func (e *ExchangeBuilder) BuildReadModel() *queries.ExchangeView {
	return &queries.ExchangeView{
		ID:                 e.ID,
		RequesteeListingID: e.RequesteeListingID,
		RequesteeOwnerID:   e.RequesteeOwnerID,
		RequesterListingID: e.RequesterListingID,
		RequesterOwnerID:   e.RequesterOwnerID,
		Status:             e.Status.String(),
		RequestedAt:        e.RequestedAt,
		CreatedAt:          e.RequestedAt,
		UpdatedAt:          e.RequestedAt,
	}
}

// RequesteeListing returns the builder for the listing being asked for,
// consistent with the request's IDs.
func (e *ExchangeBuilder) RequesteeListing() *ListingBuilder {
	return NewListingBuilder().
		WithID(e.RequesteeListingID).
		WithOwnerID(e.RequesteeOwnerID)
}

// RequesterListing returns the builder for the listing offered in return.
func (e *ExchangeBuilder) RequesterListing() *ListingBuilder {
	return NewListingBuilder().
		WithID(e.RequesterListingID).
		WithOwnerID(e.RequesterOwnerID)
}

// Fluent builder methods
func (e *ExchangeBuilder) WithID(id uuid.UUID) *ExchangeBuilder {
	e.ID = id
	return e
}

func (e *ExchangeBuilder) WithStatus(status exchange.Status) *ExchangeBuilder {
	e.Status = status
	return e
}

func (e *ExchangeBuilder) WithSameOwner() *ExchangeBuilder {
	e.RequesterOwnerID = e.RequesteeOwnerID
	return e
}

func (e *ExchangeBuilder) WithSameListing() *ExchangeBuilder {
	e.RequesterListingID = e.RequesteeListingID
	return e
}
