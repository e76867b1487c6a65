package queries

import (
	"context"
	"strings"

	"bookswap/internal/infra"
	"bookswap/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookNotFound = errs.New("book not found")

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	FindAll(ctx context.Context) ([]*BookView, error)
	Search(ctx context.Context, term string) ([]*BookView, error)
}

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, searchTerm string) ([]*BookView, error)
}

type bookQueriesImpl struct {
	repo BookReadStore
}

func NewBookQueries(repo BookReadStore) BookQueries {
	return &bookQueriesImpl{repo: repo}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookQueriesImpl) List(ctx context.Context, searchTerm string) ([]*BookView, error) {
	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return q.repo.FindAll(ctx)
	}
	return q.repo.Search(ctx, searchTerm)
}
