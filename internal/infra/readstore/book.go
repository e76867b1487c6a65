package readstore

import (
	"context"

	"bookswap/internal/infra"
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookReadStore struct {
	db infradb.DBTX
}

func NewBookReadStore(db infradb.DBTX) *BookReadStore {
	return &BookReadStore{db: db}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	const query = `
		SELECT id, title, author, genre, created_at
		FROM books
		WHERE id = $1`

	var v queries.BookView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Title, &v.Author, &v.Genre, &v.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}

	return &v, nil
}

func (r *BookReadStore) FindAll(ctx context.Context) ([]*queries.BookView, error) {
	const query = `
		SELECT id, title, author, genre, created_at
		FROM books
		ORDER BY title, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query books", err)
	}
	defer rows.Close()

	var result []*queries.BookView
	for rows.Next() {
		var v queries.BookView
		if err := rows.Scan(&v.ID, &v.Title, &v.Author, &v.Genre, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}

	return result, nil
}

// Search matches title or author, case-insensitively.
func (r *BookReadStore) Search(ctx context.Context, term string) ([]*queries.BookView, error) {
	const query = `
		SELECT id, title, author, genre, created_at
		FROM books
		WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
		ORDER BY title, id`

	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search books", err)
	}
	defer rows.Close()

	var result []*queries.BookView
	for rows.Next() {
		var v queries.BookView
		if err := rows.Scan(&v.ID, &v.Title, &v.Author, &v.Genre, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}

	return result, nil
}
