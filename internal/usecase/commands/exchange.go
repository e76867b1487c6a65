package commands

import (
	"context"
	"errors"

	domexchange "bookswap/internal/domain/exchange"
	"bookswap/internal/infra"
	"bookswap/internal/pkg/clock"
	"bookswap/internal/pkg/errs"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound         = errs.New("listing not found")
	ErrExchangeNotFound        = errs.New("exchange request not found")
	ErrInvalidExchange         = errs.New("invalid exchange request")
	ErrDuplicateExchange       = errs.New("duplicate exchange request")
	ErrExchangeNotPending      = errs.New("exchange request is not pending")
	ErrExchangeCreationFailed  = errs.New("exchange request creation failed")
	ErrNotAuthorized           = errs.New("caller does not own the listing")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ProposeExchangeResult struct {
	RequestID uuid.UUID
}

type AcceptExchangeResult struct {
	RequestID        uuid.UUID
	RejectedSiblings int64
}

type ExchangeCommands interface {
	// ProposeExchange creates a pending request asking for the requestee
	// listing in return for the caller's requester listing.
	ProposeExchange(ctx context.Context, callerID, requesteeListingID, requesterListingID uuid.UUID) (*ProposeExchangeResult, error)
	// AcceptExchange accepts a request, rejects every competing request on the
	// same requestee listing and retires both listings, all in one transaction.
	AcceptExchange(ctx context.Context, callerID, requestID uuid.UUID) (*AcceptExchangeResult, error)
	UpdateExchangeStatus(ctx context.Context, callerID, requestID uuid.UUID, status string) error
	DeleteExchange(ctx context.Context, callerID, requestID uuid.UUID) (bool, error)
}

type exchangeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExchangeCommands(uow shared.UnitOfWork, clk clock.Clock) ExchangeCommands {
	return &exchangeUseCaseImpl{uow: uow, clock: clk}
}

func (uc *exchangeUseCaseImpl) ProposeExchange(ctx context.Context, callerID, requesteeListingID, requesterListingID uuid.UUID) (*ProposeExchangeResult, error) {
	services := &domexchange.Services{Clock: uc.clock}

	var requestID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requestee, derr := tx.Reads().ListingByID(ctx, requesteeListingID)
		if derr != nil {
			return markListingLookup(derr, ErrInvalidExchange)
		}
		requester, derr := tx.Reads().ListingByID(ctx, requesterListingID)
		if derr != nil {
			return markListingLookup(derr, ErrInvalidExchange)
		}

		// Only the owner of the offered listing may propose with it.
		if requester.OwnerID != callerID {
			return ErrNotAuthorized
		}

		req, derr := domexchange.NewRequest(services,
			domexchange.ListingSpec{ID: requestee.ID, OwnerID: requestee.OwnerID},
			domexchange.ListingSpec{ID: requester.ID, OwnerID: requester.OwnerID},
		)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidExchange)
		}

		exists, derr := tx.Exchanges().Exists(ctx, tx.DB(), requesteeListingID, requesterListingID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateExchange
		}

		id, derr := tx.Exchanges().Create(ctx, tx.DB(), req)
		if derr != nil {
			// The unique index closes the race the pre-check cannot.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateExchange)
			}
			return errs.Mark(derr, ErrExchangeCreationFailed)
		}

		// Read-back inside the transaction; a failure aborts the whole unit.
		if _, derr = tx.Reads().ExchangeByID(ctx, id); derr != nil {
			return errs.Mark(derr, ErrExchangeCreationFailed)
		}

		requestID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ProposeExchangeResult{RequestID: requestID}, nil
}

func (uc *exchangeUseCaseImpl) AcceptExchange(ctx context.Context, callerID, requestID uuid.UUID) (*AcceptExchangeResult, error) {
	result := &AcceptExchangeResult{RequestID: requestID}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ExchangeByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrExchangeNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		// Only the owner of the requested book may give it away.
		if snap.RequesteeOwnerID != callerID {
			return ErrNotAuthorized
		}

		status, derr := domexchange.NewStatus(snap.Status)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		req := reconstructFromSnapshot(snap, status)
		if derr = req.Accept(); derr != nil {
			return errs.Mark(derr, ErrExchangeNotPending)
		}

		ok, derr := tx.Exchanges().UpdateStatus(ctx, tx.DB(), requestID, domexchange.StatusPending, domexchange.StatusAccepted)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if !ok {
			// Lost a race with another transition on the same row.
			return ErrExchangeNotPending
		}

		rejected, derr := tx.Exchanges().RejectSiblings(ctx, tx.DB(), snap.RequesteeListingID, requestID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		result.RejectedSiblings = rejected

		// Retire both listings in the same unit so acceptance can never
		// commit while a consumed listing stays visible.
		if _, derr = tx.Listings().Delete(ctx, tx.DB(), snap.RequesteeListingID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if _, derr = tx.Listings().Delete(ctx, tx.DB(), snap.RequesterListingID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *exchangeUseCaseImpl) UpdateExchangeStatus(ctx context.Context, callerID, requestID uuid.UUID, status string) error {
	newStatus, err := domexchange.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidExchange)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ExchangeByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrExchangeNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = authorizeParticipant(snap, callerID); derr != nil {
			return derr
		}

		current, derr := domexchange.NewStatus(snap.Status)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		req := reconstructFromSnapshot(snap, current)
		if derr = req.ChangeStatus(newStatus); derr != nil {
			switch {
			case errors.Is(derr, domexchange.ErrAlreadyFinal):
				return errs.Mark(derr, ErrExchangeNotPending)
			default:
				// Acceptance carries a cascade and only the accept
				// operation performs it.
				return errs.Mark(derr, ErrInvalidExchange)
			}
		}

		ok, derr := tx.Exchanges().UpdateStatus(ctx, tx.DB(), requestID, current, newStatus)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if !ok {
			// Lost a race with another transition on the same row.
			return ErrExchangeNotPending
		}
		return nil
	})
}

func (uc *exchangeUseCaseImpl) DeleteExchange(ctx context.Context, callerID, requestID uuid.UUID) (bool, error) {
	var deleted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ExchangeByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				// Absence is not an error for deletes.
				deleted = false
				return nil
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = authorizeParticipant(snap, callerID); derr != nil {
			return derr
		}

		deleted, derr = tx.Exchanges().Delete(ctx, tx.DB(), requestID)
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

// authorizeParticipant permits callers who owned either listing at proposal
// time. Retired listings do not revoke access to the request's history.
func authorizeParticipant(snap *shared.ExchangeSnapshot, callerID uuid.UUID) error {
	if snap.RequesteeOwnerID != callerID && snap.RequesterOwnerID != callerID {
		return ErrNotAuthorized
	}
	return nil
}

func reconstructFromSnapshot(snap *shared.ExchangeSnapshot, status domexchange.Status) *domexchange.Request {
	return domexchange.ReconstructRequest(
		snap.ID,
		domexchange.ListingSpec{ID: snap.RequesteeListingID, OwnerID: snap.RequesteeOwnerID},
		domexchange.ListingSpec{ID: snap.RequesterListingID, OwnerID: snap.RequesterOwnerID},
		status, snap.RequestedAt, snap.RequestedAt, snap.RequestedAt,
	)
}

func markListingLookup(err error, notFoundAs error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFoundAs)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
