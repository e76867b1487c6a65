//go:build e2e

package listing_test

import (
	"context"
	"testing"

	"bookswap/internal/infra/repository"
	"bookswap/tests/common/dbtest"
	"bookswap/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ListingRepositorySuite struct {
	e2e.SharedSuite
}

func (s *ListingRepositorySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestListingRepositorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ListingRepositorySuite))
}

// =============================================================================
// TestDeleteByUser - Bulk removal of a user's listings
// =============================================================================

func (s *ListingRepositorySuite) TestDeleteByUser() {
	repo := repository.NewListingRepository()

	s.Run("Normal case: Removes every listing of the owner and nothing else", func() {
		t := s.T()
		ctx := context.Background()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "owner")
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", "other")

		firstBook := dbtest.CreateTestBook(t, s.DB, "The Dispossessed", "Test Author")
		secondBook := dbtest.CreateTestBook(t, s.DB, "Solaris", "Test Author")
		thirdBook := dbtest.CreateTestBook(t, s.DB, "Roadside Picnic", "Test Author")

		dbtest.CreateTestListing(t, s.DB, firstBook, ownerID, "good condition")
		dbtest.CreateTestListing(t, s.DB, secondBook, ownerID, "well read")
		surviving := dbtest.CreateTestListing(t, s.DB, thirdBook, otherID, "like new")

		removed, err := repo.DeleteByUser(ctx, s.DB, ownerID)
		require.NoError(t, err)
		require.Equal(t, int64(2), removed, "Both of the owner's listings should be removed")

		var remaining int
		err = s.DB.QueryRow(ctx, `SELECT count(*) FROM listings WHERE owner_id = $1`, ownerID).Scan(&remaining)
		require.NoError(t, err)
		require.Zero(t, remaining)

		var otherCount int
		err = s.DB.QueryRow(ctx, `SELECT count(*) FROM listings WHERE id = $1`, surviving).Scan(&otherCount)
		require.NoError(t, err)
		require.Equal(t, 1, otherCount, "Another owner's listing must survive")
	})

	s.Run("Normal case: Owner without listings reports zero rows", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "owner")

		removed, err := repo.DeleteByUser(context.Background(), s.DB, ownerID)
		require.NoError(t, err)
		require.Zero(t, removed)
	})
}
