package book

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle  = errors.New("book title must not be empty")
	ErrEmptyAuthor = errors.New("book author must not be empty")
	ErrTitleTooLong = errors.New("book title too long")
)

const MaxTitleLength = 255

// Book is a catalog entry referenced by listings. Plain CRUD, no workflow.
type Book struct {
	id        uuid.UUID
	title     string
	author    string
	genre     string
	createdAt time.Time
}

func NewBook(title, author, genre string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}

	return &Book{
		id:     uuid.New(),
		title:  title,
		author: author,
		genre:  strings.TrimSpace(genre),
	}, nil
}

func ReconstructBook(id uuid.UUID, title, author, genre string, createdAt time.Time) *Book {
	return &Book{
		id:        id,
		title:     title,
		author:    author,
		genre:     genre,
		createdAt: createdAt,
	}
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) Genre() string        { return b.genre }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
