package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	IsActive bool      `json:"is_active"`
}

type BookView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ListingView struct {
	ID          uuid.UUID `json:"id"`
	BookID      uuid.UUID `json:"book_id"`
	BookTitle   string    `json:"book_title"`
	BookAuthor  string    `json:"book_author"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Description string    `json:"description,omitempty"`
	ListedAt    time.Time `json:"listed_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExchangeView carries the owner IDs captured at proposal time, so requests
// stay attributable after the listings they name are retired.
type ExchangeView struct {
	ID                 uuid.UUID `json:"id"`
	RequesteeListingID uuid.UUID `json:"requestee_listing_id"`
	RequesteeOwnerID   uuid.UUID `json:"requestee_owner_id"`
	RequesterListingID uuid.UUID `json:"requester_listing_id"`
	RequesterOwnerID   uuid.UUID `json:"requester_owner_id"`
	Status             string    `json:"status"`
	RequestedAt        time.Time `json:"requested_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ExchangeDetailView joins the request with both listings for the
// participant-only detail endpoint.
type ExchangeDetailView struct {
	Request          ExchangeView `json:"request"`
	RequesteeListing *ListingView `json:"requestee_listing,omitempty"`
	RequesterListing *ListingView `json:"requester_listing,omitempty"`
}
