package response

import (
	"time"

	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:        v.ID,
		Title:     v.Title,
		Author:    v.Author,
		Genre:     v.Genre,
		CreatedAt: v.CreatedAt,
	}
}

func FromBookViews(views []*queries.BookView) []*BookResponse {
	out := make([]*BookResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookView(v))
	}
	return out
}
