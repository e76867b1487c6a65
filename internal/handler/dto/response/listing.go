package response

import (
	"time"

	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
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

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:          v.ID,
		BookID:      v.BookID,
		BookTitle:   v.BookTitle,
		BookAuthor:  v.BookAuthor,
		OwnerID:     v.OwnerID,
		OwnerName:   v.OwnerName,
		Description: v.Description,
		ListedAt:    v.ListedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromListingViews(views []*queries.ListingView) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromListingView(v))
	}
	return out
}
