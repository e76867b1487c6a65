package repository

import (
	"context"

	"bookswap/internal/domain/book"
	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"

	"github.com/google/uuid"
)

type BookRepository struct{}

func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

func (r *BookRepository) Create(ctx context.Context, db infradb.DBTX, b *book.Book) (uuid.UUID, error) {
	const query = `
		INSERT INTO books (id, title, author, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := db.QueryRow(ctx, query, b.ID(), b.Title(), b.Author(), b.Genre()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err)
	}

	return id, nil
}

func (r *BookRepository) Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete book", err)
	}
	return tag.RowsAffected() > 0, nil
}
