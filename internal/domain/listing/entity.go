package listing

import (
	"errors"
	"strings"
	"time"

	"bookswap/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMissingBook        = errors.New("listing must reference a book")
	ErrMissingOwner       = errors.New("listing must reference an owner")
	ErrDescriptionTooLong = errors.New("listing description too long")
)

const MaxDescriptionLength = 1000

type Services struct {
	Clock clock.Clock
}

// Listing is a single book instance a user offers for exchange. It is removed
// when the owner deletes it or when an accepted exchange consumes it.
type Listing struct {
	id          uuid.UUID
	bookID      uuid.UUID
	ownerID     uuid.UUID
	description string
	listedAt    time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewListing validates references and resolves the default listing time from
// the clock when listedAt is zero.
func NewListing(services *Services, bookID, ownerID uuid.UUID, description string, listedAt time.Time) (*Listing, error) {
	if bookID == uuid.Nil {
		return nil, ErrMissingBook
	}
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if listedAt.IsZero() {
		listedAt = services.Clock.Now()
	}

	return &Listing{
		id:          uuid.New(),
		bookID:      bookID,
		ownerID:     ownerID,
		description: description,
		listedAt:    listedAt,
	}, nil
}

func ReconstructListing(
	id, bookID, ownerID uuid.UUID,
	description string,
	listedAt, createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:          id,
		bookID:      bookID,
		ownerID:     ownerID,
		description: description,
		listedAt:    listedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) BookID() uuid.UUID    { return l.bookID }
func (l *Listing) OwnerID() uuid.UUID   { return l.ownerID }
func (l *Listing) Description() string  { return l.description }
func (l *Listing) ListedAt() time.Time  { return l.listedAt }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time { return l.updatedAt }
