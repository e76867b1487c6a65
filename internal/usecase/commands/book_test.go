//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bookswap/internal/domain/book"
	"bookswap/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bookID := uuid.New()

		uow := newFakeUoW()
		uow.tx.books.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(b *book.Book) bool {
			return b.Title() == "Solaris" && b.Author() == "Stanislaw Lem"
		})).Return(bookID, nil)

		result, err := commands.NewBookCommands(uow).CreateBook(context.Background(), commands.CreateBookRequest{
			Title:  "Solaris",
			Author: "Stanislaw Lem",
			Genre:  "Science Fiction",
		})
		require.NoError(t, err)
		assert.Equal(t, bookID, result.BookID)
	})

	t.Run("missing title", func(t *testing.T) {
		uow := newFakeUoW()

		_, err := commands.NewBookCommands(uow).CreateBook(context.Background(), commands.CreateBookRequest{
			Author: "Stanislaw Lem",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidBook)
		uow.tx.books.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("delete cascades to listings and exchange requests", func(t *testing.T) {
		bookID := uuid.New()

		uow := newFakeUoW()
		// A listing of the removed book may sit on either side of a request.
		uow.tx.exchanges.On("DeleteByBook", mock.Anything, mock.Anything, bookID).Return(int64(1), nil)
		uow.tx.listings.On("DeleteByBook", mock.Anything, mock.Anything, bookID).Return(int64(2), nil)
		uow.tx.books.On("Delete", mock.Anything, mock.Anything, bookID).Return(true, nil)

		deleted, err := commands.NewBookCommands(uow).DeleteBook(context.Background(), bookID)
		require.NoError(t, err)
		assert.True(t, deleted)
		uow.tx.assertExpectations(t)
	})

	t.Run("exchange cleanup failure aborts the unit", func(t *testing.T) {
		bookID := uuid.New()

		uow := newFakeUoW()
		uow.tx.exchanges.On("DeleteByBook", mock.Anything, mock.Anything, bookID).
			Return(int64(0), assert.AnError)

		_, err := commands.NewBookCommands(uow).DeleteBook(context.Background(), bookID)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		uow.tx.listings.AssertNotCalled(t, "DeleteByBook", mock.Anything, mock.Anything, mock.Anything)
		uow.tx.books.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent book is not an error", func(t *testing.T) {
		bookID := uuid.New()

		uow := newFakeUoW()
		uow.tx.exchanges.On("DeleteByBook", mock.Anything, mock.Anything, bookID).Return(int64(0), nil)
		uow.tx.listings.On("DeleteByBook", mock.Anything, mock.Anything, bookID).Return(int64(0), nil)
		uow.tx.books.On("Delete", mock.Anything, mock.Anything, bookID).Return(false, nil)

		deleted, err := commands.NewBookCommands(uow).DeleteBook(context.Background(), bookID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
