package request

import (
	"strings"

	"bookswap/internal/usecase/commands"
)

type CreateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Genre  string `json:"genre,omitempty"`
}

func (r CreateBookRequest) ToCommand() commands.CreateBookRequest {
	return commands.CreateBookRequest{
		Title:  strings.TrimSpace(r.Title),
		Author: strings.TrimSpace(r.Author),
		Genre:  strings.TrimSpace(r.Genre),
	}
}
