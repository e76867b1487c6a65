//go:build unit

package exchange_test

import (
	"testing"
	"time"

	"bookswap/internal/domain/exchange"
	"bookswap/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ExchangeBuilder)
	errIs  error
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewExchangeBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.RequesteeListingID, actual.RequesteeID())
		assert.Equal(t, b.RequesteeOwnerID, actual.RequesteeOwnerID())
		assert.Equal(t, b.RequesterListingID, actual.RequesterID())
		assert.Equal(t, b.RequesterOwnerID, actual.RequesterOwnerID())
		assert.Equal(t, exchange.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Equal(t, b.RequestedAt, actual.RequestedAt())
	})

	t.Run("proposal invariants", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "distinct listings and owners",
				mutate: func(*builder.ExchangeBuilder) {},
			},
			{
				name:   "same listing on both sides",
				mutate: func(b *builder.ExchangeBuilder) { b.WithSameListing() },
				errIs:  exchange.ErrSameListing,
			},
			{
				name:   "both listings owned by one user",
				mutate: func(b *builder.ExchangeBuilder) { b.WithSameOwner() },
				errIs:  exchange.ErrSameOwner,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		first, err := builder.NewExchangeBuilder().BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewExchangeBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestRequestAccept(t *testing.T) {
	t.Run("pending request becomes accepted", func(t *testing.T) {
		req, err := builder.NewExchangeBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Accept())
		assert.Equal(t, exchange.StatusAccepted, req.Status())
		assert.False(t, req.IsPending())
	})

	t.Run("accept is not idempotent", func(t *testing.T) {
		req, err := builder.NewExchangeBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.Accept())
		assert.ErrorIs(t, req.Accept(), exchange.ErrNotPending)
	})

	t.Run("non-pending statuses cannot be accepted", func(t *testing.T) {
		for _, status := range []exchange.Status{
			exchange.StatusAccepted,
			exchange.StatusRejected,
			exchange.StatusCompleted,
			exchange.StatusCancelled,
		} {
			req := exchange.ReconstructRequest(
				uuid.New(),
				exchange.ListingSpec{ID: uuid.New(), OwnerID: uuid.New()},
				exchange.ListingSpec{ID: uuid.New(), OwnerID: uuid.New()},
				status,
				time.Now(), time.Now(), time.Now(),
			)
			assert.ErrorIs(t, req.Accept(), exchange.ErrNotPending, "status %s", status)
		}
	})
}

func TestRequestChangeStatus(t *testing.T) {
	reconstruct := func(status exchange.Status) *exchange.Request {
		return exchange.ReconstructRequest(
			uuid.New(),
			exchange.ListingSpec{ID: uuid.New(), OwnerID: uuid.New()},
			exchange.ListingSpec{ID: uuid.New(), OwnerID: uuid.New()},
			status,
			time.Now(), time.Now(), time.Now(),
		)
	}

	t.Run("pending can be rejected or cancelled", func(t *testing.T) {
		for _, to := range []exchange.Status{exchange.StatusRejected, exchange.StatusCancelled} {
			req := reconstruct(exchange.StatusPending)
			require.NoError(t, req.ChangeStatus(to))
			assert.Equal(t, to, req.Status())
		}
	})

	t.Run("accepted is refused", func(t *testing.T) {
		req := reconstruct(exchange.StatusPending)
		assert.ErrorIs(t, req.ChangeStatus(exchange.StatusAccepted), exchange.ErrDirectAccept)
		assert.True(t, req.IsPending())
	})

	t.Run("terminal statuses are immutable", func(t *testing.T) {
		for _, from := range []exchange.Status{
			exchange.StatusAccepted,
			exchange.StatusRejected,
			exchange.StatusCompleted,
			exchange.StatusCancelled,
		} {
			req := reconstruct(from)
			assert.ErrorIs(t, req.ChangeStatus(exchange.StatusCancelled), exchange.ErrAlreadyFinal, "from %s", from)
			assert.ErrorIs(t, req.ChangeStatus(exchange.StatusPending), exchange.ErrAlreadyFinal, "from %s", from)
			assert.Equal(t, from, req.Status())
		}
	})

	t.Run("pending to pending is invalid", func(t *testing.T) {
		req := reconstruct(exchange.StatusPending)
		assert.ErrorIs(t, req.ChangeStatus(exchange.StatusPending), exchange.ErrInvalidStatus)
	})
}

func TestRequestInvolves(t *testing.T) {
	b := builder.NewExchangeBuilder()
	req, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, req.Involves(b.RequesteeListingID))
	assert.True(t, req.Involves(b.RequesterListingID))
	assert.False(t, req.Involves(uuid.New()))
}

func TestRequestIsParticipant(t *testing.T) {
	b := builder.NewExchangeBuilder()
	req, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, req.IsParticipant(b.RequesteeOwnerID))
	assert.True(t, req.IsParticipant(b.RequesterOwnerID))
	assert.False(t, req.IsParticipant(uuid.New()))
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []string{"pending", "accepted", "rejected", "completed", "cancelled"} {
			status, err := exchange.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}

		_, err := exchange.NewStatus("in_flight")
		assert.ErrorIs(t, err, exchange.ErrInvalidStatus)

		// Case sensitive
		_, err = exchange.NewStatus("Pending")
		assert.ErrorIs(t, err, exchange.ErrInvalidStatus)
	})

	t.Run("terminality", func(t *testing.T) {
		assert.False(t, exchange.StatusPending.IsTerminal())
		for _, s := range []exchange.Status{
			exchange.StatusAccepted,
			exchange.StatusRejected,
			exchange.StatusCompleted,
			exchange.StatusCancelled,
		} {
			assert.True(t, s.IsTerminal(), "status %s", s)
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewExchangeBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
