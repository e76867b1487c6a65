package request

import (
	"strings"
	"time"

	"bookswap/internal/pkg/patch"
	"bookswap/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	BookID      uuid.UUID  `json:"book_id" binding:"required"`
	Description *string    `json:"description,omitempty"`
	ListedAt    *time.Time `json:"listed_at,omitempty"`
}

func (r CreateListingRequest) ToCommand() commands.CreateListingRequest {
	description := strings.TrimSpace(patch.Coalesce(r.Description, ""))
	return commands.CreateListingRequest{
		BookID:      r.BookID,
		Description: description,
		ListedAt:    r.ListedAt,
	}
}

type UpdateListingRequest struct {
	Description *string    `json:"description,omitempty"`
	ListedAt    *time.Time `json:"listed_at,omitempty"`
}

func (r UpdateListingRequest) ToCommand() commands.UpdateListingRequest {
	description := r.Description
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		description = &trimmed
	}
	return commands.UpdateListingRequest{
		Description: description,
		ListedAt:    r.ListedAt,
	}
}
