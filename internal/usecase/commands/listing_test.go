//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bookswap/internal/domain/listing"
	"bookswap/internal/infra"
	"bookswap/internal/pkg/clock"
	"bookswap/internal/usecase/commands"
	"bookswap/internal/usecase/shared"
	"bookswap/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingCommands(uow *fakeUoW) commands.ListingCommands {
	return commands.NewListingCommands(uow, clock.NewMockClock(testTime))
}

func TestCreateListing(t *testing.T) {
	t.Run("success with default listed time", func(t *testing.T) {
		ownerID := uuid.New()
		bookID := uuid.New()
		listingID := uuid.New()

		uow := newFakeUoW()
		uow.tx.listings.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
			return l.BookID() == bookID && l.OwnerID() == ownerID && l.ListedAt().Equal(testTime)
		})).Return(listingID, nil)
		uow.tx.reads.On("ListingByID", mock.Anything, listingID).
			Return(builder.NewListingBuilder().WithID(listingID).BuildSnapshot(), nil)

		result, err := newListingCommands(uow).CreateListing(context.Background(), commands.CreateListingRequest{
			BookID:      bookID,
			Description: "like new",
		}, ownerID)
		require.NoError(t, err)
		assert.Equal(t, listingID, result.ListingID)
		uow.tx.assertExpectations(t)
	})

	t.Run("unknown book surfaces as not found", func(t *testing.T) {
		fkErr := infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated)

		uow := newFakeUoW()
		uow.tx.listings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, fkErr)

		_, err := newListingCommands(uow).CreateListing(context.Background(), commands.CreateListingRequest{
			BookID: uuid.New(),
		}, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookNotFound)
	})

	t.Run("domain validation happens before any write", func(t *testing.T) {
		uow := newFakeUoW()

		_, err := newListingCommands(uow).CreateListing(context.Background(), commands.CreateListingRequest{
			BookID: uuid.Nil,
		}, uuid.New())
		assert.ErrorIs(t, err, commands.ErrInvalidListing)
		uow.tx.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateListing(t *testing.T) {
	description := "spine slightly creased"

	t.Run("owner patches description", func(t *testing.T) {
		snap := builder.NewListingBuilder().BuildSnapshot()

		uow := newFakeUoW()
		uow.tx.reads.On("ListingByID", mock.Anything, snap.ID).Return(snap, nil)
		uow.tx.listings.On("Update", mock.Anything, mock.Anything, snap.ID, shared.ListingPatch{
			Description: &description,
		}).Return(nil)

		err := newListingCommands(uow).UpdateListing(context.Background(), snap.ID, commands.UpdateListingRequest{
			Description: &description,
		}, snap.OwnerID)
		require.NoError(t, err)
		uow.tx.assertExpectations(t)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		snap := builder.NewListingBuilder().BuildSnapshot()

		uow := newFakeUoW()
		uow.tx.reads.On("ListingByID", mock.Anything, snap.ID).Return(snap, nil)

		err := newListingCommands(uow).UpdateListing(context.Background(), snap.ID, commands.UpdateListingRequest{
			Description: &description,
		}, uuid.New())
		assert.ErrorIs(t, err, commands.ErrListingNotOwned)
		uow.tx.listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown listing", func(t *testing.T) {
		listingID := uuid.New()

		uow := newFakeUoW()
		uow.tx.reads.On("ListingByID", mock.Anything, listingID).Return(nil, notFoundErr("listing not found"))

		err := newListingCommands(uow).UpdateListing(context.Background(), listingID, commands.UpdateListingRequest{
			Description: &description,
		}, uuid.New())
		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})
}

func TestDeleteListing(t *testing.T) {
	t.Run("owner delete cascades to exchange requests", func(t *testing.T) {
		snap := builder.NewListingBuilder().BuildSnapshot()

		uow := newFakeUoW()
		uow.tx.reads.On("ListingByID", mock.Anything, snap.ID).Return(snap, nil)
		uow.tx.exchanges.On("DeleteByListing", mock.Anything, mock.Anything, snap.ID).Return(int64(3), nil)
		uow.tx.listings.On("Delete", mock.Anything, mock.Anything, snap.ID).Return(true, nil)

		deleted, err := newListingCommands(uow).DeleteListing(context.Background(), snap.ID, snap.OwnerID)
		require.NoError(t, err)
		assert.True(t, deleted)
		uow.tx.assertExpectations(t)
	})

	t.Run("absent listing is not an error", func(t *testing.T) {
		listingID := uuid.New()

		uow := newFakeUoW()
		uow.tx.reads.On("ListingByID", mock.Anything, listingID).Return(nil, notFoundErr("listing not found"))

		deleted, err := newListingCommands(uow).DeleteListing(context.Background(), listingID, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		snap := builder.NewListingBuilder().BuildSnapshot()

		uow := newFakeUoW()
		uow.tx.reads.On("ListingByID", mock.Anything, snap.ID).Return(snap, nil)

		_, err := newListingCommands(uow).DeleteListing(context.Background(), snap.ID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrListingNotOwned)
		uow.tx.exchanges.AssertNotCalled(t, "DeleteByListing", mock.Anything, mock.Anything, mock.Anything)
	})
}
