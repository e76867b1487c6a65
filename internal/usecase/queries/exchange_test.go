//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bookswap/internal/domain/exchange"
	"bookswap/internal/infra"
	"bookswap/internal/usecase/queries"
	"bookswap/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExchangeReadStore struct {
	mock.Mock
}

func (m *MockExchangeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExchangeView, error) {
	args := m.Called(ctx, id)
	if view := args.Get(0); view != nil {
		return view.(*queries.ExchangeView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeReadStore) FindByRequesteeListing(ctx context.Context, listingID uuid.UUID) ([]*queries.ExchangeView, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]*queries.ExchangeView), args.Error(1)
}

func (m *MockExchangeReadStore) FindByRequesterListing(ctx context.Context, listingID uuid.UUID) ([]*queries.ExchangeView, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]*queries.ExchangeView), args.Error(1)
}

func (m *MockExchangeReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ExchangeView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*queries.ExchangeView), args.Error(1)
}

func (m *MockExchangeReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.ExchangeView, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*queries.ExchangeView), args.Error(1)
}

type MockListingLookup struct {
	mock.Mock
}

func (m *MockListingLookup) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	args := m.Called(ctx, id)
	if view := args.Get(0); view != nil {
		return view.(*queries.ListingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func TestExchangeGetByID(t *testing.T) {
	t.Run("participant sees both listings", func(t *testing.T) {
		eb := builder.NewExchangeBuilder()
		view := eb.BuildReadModel()
		requestee := eb.RequesteeListing().BuildReadModel()
		requester := eb.RequesterListing().BuildReadModel()

		repo := new(MockExchangeReadStore)
		listings := new(MockListingLookup)
		repo.On("FindByID", mock.Anything, view.ID).Return(view, nil)
		listings.On("FindByID", mock.Anything, view.RequesteeListingID).Return(requestee, nil)
		listings.On("FindByID", mock.Anything, view.RequesterListingID).Return(requester, nil)

		detail, err := queries.NewExchangeQueries(repo, listings).GetByID(context.Background(), eb.RequesteeOwnerID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, *view, detail.Request)
		assert.Equal(t, requestee, detail.RequesteeListing)
		assert.Equal(t, requester, detail.RequesterListing)
	})

	t.Run("outsider is refused", func(t *testing.T) {
		eb := builder.NewExchangeBuilder()
		view := eb.BuildReadModel()

		repo := new(MockExchangeReadStore)
		listings := new(MockListingLookup)
		repo.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		_, err := queries.NewExchangeQueries(repo, listings).GetByID(context.Background(), uuid.New(), view.ID)
		assert.ErrorIs(t, err, queries.ErrNotParticipant)
		listings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("retired listings do not hide the request from the survivor", func(t *testing.T) {
		eb := builder.NewExchangeBuilder()
		view := eb.BuildReadModel()
		requester := eb.RequesterListing().BuildReadModel()

		repo := new(MockExchangeReadStore)
		listings := new(MockListingLookup)
		repo.On("FindByID", mock.Anything, view.ID).Return(view, nil)
		listings.On("FindByID", mock.Anything, view.RequesteeListingID).Return(nil, notFoundErr("listing not found"))
		listings.On("FindByID", mock.Anything, view.RequesterListingID).Return(requester, nil)

		detail, err := queries.NewExchangeQueries(repo, listings).GetByID(context.Background(), eb.RequesterOwnerID, view.ID)
		require.NoError(t, err)
		assert.Nil(t, detail.RequesteeListing)
		assert.Equal(t, requester, detail.RequesterListing)
	})

	t.Run("participants keep access after both listings are retired", func(t *testing.T) {
		eb := builder.NewExchangeBuilder().WithStatus(exchange.StatusAccepted)
		view := eb.BuildReadModel()

		repo := new(MockExchangeReadStore)
		listings := new(MockListingLookup)
		repo.On("FindByID", mock.Anything, view.ID).Return(view, nil)
		listings.On("FindByID", mock.Anything, view.RequesteeListingID).Return(nil, notFoundErr("listing not found"))
		listings.On("FindByID", mock.Anything, view.RequesterListingID).Return(nil, notFoundErr("listing not found"))

		for _, actorID := range []uuid.UUID{eb.RequesteeOwnerID, eb.RequesterOwnerID} {
			detail, err := queries.NewExchangeQueries(repo, listings).GetByID(context.Background(), actorID, view.ID)
			require.NoError(t, err)
			assert.Equal(t, *view, detail.Request)
			assert.Nil(t, detail.RequesteeListing)
			assert.Nil(t, detail.RequesterListing)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		id := uuid.New()

		repo := new(MockExchangeReadStore)
		repo.On("FindByID", mock.Anything, id).Return(nil, notFoundErr("exchange request not found"))

		_, err := queries.NewExchangeQueries(repo, new(MockListingLookup)).GetByID(context.Background(), uuid.New(), id)
		assert.ErrorIs(t, err, queries.ErrExchangeNotFound)
	})
}

func TestExchangeListByStatus(t *testing.T) {
	t.Run("valid status is passed through", func(t *testing.T) {
		views := []*queries.ExchangeView{builder.NewExchangeBuilder().BuildReadModel()}

		repo := new(MockExchangeReadStore)
		repo.On("FindByStatus", mock.Anything, "pending").Return(views, nil)

		got, err := queries.NewExchangeQueries(repo, new(MockListingLookup)).ListByStatus(context.Background(), "pending")
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("invalid status fails without hitting the store", func(t *testing.T) {
		repo := new(MockExchangeReadStore)

		_, err := queries.NewExchangeQueries(repo, new(MockListingLookup)).ListByStatus(context.Background(), "bogus")
		assert.ErrorIs(t, err, queries.ErrInvalidStatus)
		repo.AssertNotCalled(t, "FindByStatus", mock.Anything, mock.Anything)
	})
}
