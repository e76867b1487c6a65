package commands

import (
	"context"
	"time"

	domlisting "bookswap/internal/domain/listing"
	"bookswap/internal/infra"
	"bookswap/internal/pkg/clock"
	"bookswap/internal/pkg/errs"
	"bookswap/internal/pkg/patch"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound          = errs.New("book not found")
	ErrListingNotOwned       = errs.New("listing not owned by user")
	ErrListingCreationFailed = errs.New("listing creation failed")
	ErrInvalidListing        = errs.New("invalid listing")
)

type CreateListingResult struct {
	ListingID uuid.UUID
}

type CreateListingRequest struct {
	BookID      uuid.UUID
	Description string
	ListedAt    *time.Time
}

type UpdateListingRequest struct {
	Description *string
	ListedAt    *time.Time
}

type ListingCommands interface {
	CreateListing(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error)
	UpdateListing(ctx context.Context, listingID uuid.UUID, req UpdateListingRequest, actorID uuid.UUID) error
	// DeleteListing removes the listing and every exchange request that
	// references it in either role. Reports whether a listing row was removed.
	DeleteListing(ctx context.Context, listingID uuid.UUID, actorID uuid.UUID) (bool, error)
}

type listingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error) {
	services := &domlisting.Services{Clock: uc.clock}

	listedAt := patch.Coalesce(req.ListedAt, time.Time{})

	l, err := domlisting.NewListing(services, req.BookID, ownerID, req.Description, listedAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidListing)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, tx.DB(), l)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrBookNotFound)
			}
			return errs.Mark(derr, ErrListingCreationFailed)
		}

		// Read-back: creation must yield a loadable row or the unit aborts.
		if _, derr = tx.Reads().ListingByID(ctx, id); derr != nil {
			return errs.Mark(derr, ErrListingCreationFailed)
		}

		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateListingResult{ListingID: createdID}, nil
}

func (uc *listingUseCaseImpl) UpdateListing(ctx context.Context, listingID uuid.UUID, req UpdateListingRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			return markListingLookup(derr, ErrListingNotFound)
		}
		if snap.OwnerID != actorID {
			return ErrListingNotOwned
		}

		fields := shared.ListingPatch{
			Description: req.Description,
			ListedAt:    req.ListedAt,
		}
		if derr = tx.Listings().Update(ctx, tx.DB(), listingID, fields); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrListingNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *listingUseCaseImpl) DeleteListing(ctx context.Context, listingID uuid.UUID, actorID uuid.UUID) (bool, error) {
	var deleted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				deleted = false
				return nil
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.OwnerID != actorID {
			return ErrListingNotOwned
		}

		if _, derr = tx.Exchanges().DeleteByListing(ctx, tx.DB(), listingID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		deleted, derr = tx.Listings().Delete(ctx, tx.DB(), listingID)
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
