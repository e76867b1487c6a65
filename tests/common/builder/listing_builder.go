//go:build unit || e2e

package builder

import (
	"time"

	"bookswap/internal/domain/listing"
	"bookswap/internal/pkg/clock"
	"bookswap/internal/usecase/queries"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	OwnerID     uuid.UUID
	Description string
	ListedAt    time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:          uuid.New(),
		BookID:      uuid.New(),
		OwnerID:     uuid.New(),
		Description: "Well-kept paperback, minor shelf wear",
		ListedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	services := &listing.Services{Clock: clock.NewMockClock(l.ListedAt)}
	return listing.NewListing(services, l.BookID, l.OwnerID, l.Description, l.ListedAt)
}

func (l *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:          l.ID,
		BookID:      l.BookID,
		OwnerID:     l.OwnerID,
		Description: l.Description,
		ListedAt:    l.ListedAt,
	}
}

func (l *ListingBuilder) BuildReadModel() *queries.ListingView {
	return &queries.ListingView{
		ID:          l.ID,
		BookID:      l.BookID,
		BookTitle:   "The Dispossessed",
		BookAuthor:  "Ursula K. Le Guin",
		OwnerID:     l.OwnerID,
		OwnerName:   "reader",
		Description: l.Description,
		ListedAt:    l.ListedAt,
		CreatedAt:   l.ListedAt,
		UpdatedAt:   l.ListedAt,
	}
}

// Fluent builder methods
func (l *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	l.ID = id
	return l
}

func (l *ListingBuilder) WithBookID(bookID uuid.UUID) *ListingBuilder {
	l.BookID = bookID
	return l
}

func (l *ListingBuilder) WithOwnerID(ownerID uuid.UUID) *ListingBuilder {
	l.OwnerID = ownerID
	return l
}

func (l *ListingBuilder) WithDescription(description string) *ListingBuilder {
	l.Description = description
	return l
}

func (l *ListingBuilder) WithListedAt(t time.Time) *ListingBuilder {
	l.ListedAt = t
	return l
}
