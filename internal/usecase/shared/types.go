package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type ListingSnapshot struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	OwnerID     uuid.UUID
	Description string
	ListedAt    time.Time
}

type ExchangeSnapshot struct {
	ID                 uuid.UUID
	RequesteeListingID uuid.UUID
	RequesteeOwnerID   uuid.UUID
	RequesterListingID uuid.UUID
	RequesterOwnerID   uuid.UUID
	Status             string
	RequestedAt        time.Time
}

// ListingPatch applies only the fields that are set. Nil means leave as is.
type ListingPatch struct {
	Description *string
	ListedAt    *time.Time
	BookID      *uuid.UUID
}
