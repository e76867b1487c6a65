package commands

import (
	"context"

	dombook "bookswap/internal/domain/book"
	"bookswap/internal/pkg/errs"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidBook = errs.New("invalid book")

type CreateBookResult struct {
	BookID uuid.UUID
}

type CreateBookRequest struct {
	Title  string
	Author string
	Genre  string
}

type BookCommands interface {
	CreateBook(ctx context.Context, req CreateBookRequest) (*CreateBookResult, error)
	// DeleteBook removes the book, every listing offering it and every
	// exchange request touching those listings.
	DeleteBook(ctx context.Context, bookID uuid.UUID) (bool, error)
}

type bookUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookCommands(uow shared.UnitOfWork) BookCommands {
	return &bookUseCaseImpl{uow: uow}
}

func (uc *bookUseCaseImpl) CreateBook(ctx context.Context, req CreateBookRequest) (*CreateBookResult, error) {
	b, err := dombook.NewBook(req.Title, req.Author, req.Genre)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBook)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Books().Create(ctx, tx.DB(), b)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookResult{BookID: createdID}, nil
}

func (uc *bookUseCaseImpl) DeleteBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	var deleted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Requests referencing the book's listings must go first; the lookup
		// resolves through listing rows that the next step removes.
		if _, derr := tx.Exchanges().DeleteByBook(ctx, tx.DB(), bookID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if _, derr := tx.Listings().DeleteByBook(ctx, tx.DB(), bookID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		var derr error
		deleted, derr = tx.Books().Delete(ctx, tx.DB(), bookID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
