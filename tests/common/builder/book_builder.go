//go:build unit || e2e

package builder

import (
	"time"

	"bookswap/internal/domain/book"
	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID     uuid.UUID
	Title  string
	Author string
	Genre  string
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:     uuid.New(),
		Title:  "The Dispossessed",
		Author: "Ursula K. Le Guin",
		Genre:  "Science Fiction",
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.Title, b.Author, b.Genre)
}

func (b *BookBuilder) BuildReadModel() *queries.BookView {
	return &queries.BookView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		CreatedAt: time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
	}
}

// Fluent builder methods
func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.Author = author
	return b
}

func (b *BookBuilder) WithGenre(genre string) *BookBuilder {
	b.Genre = genre
	return b
}
