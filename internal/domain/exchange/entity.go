package exchange

import (
	"errors"
	"time"

	"bookswap/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrSameListing  = errors.New("cannot exchange a listing for itself")
	ErrSameOwner    = errors.New("both listings belong to the same user")
	ErrNotPending   = errors.New("exchange request is not pending")
	ErrAlreadyFinal = errors.New("exchange request already in a terminal state")
	ErrDirectAccept = errors.New("accepted is only reachable through the accept operation")
)

type Services struct {
	Clock clock.Clock
}

// ListingSpec is the slice of a listing the exchange invariants need.
type ListingSpec struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// Request is a proposal to trade the requester listing for the requestee
// listing. The requestee listing is the one being asked for. Owner IDs are
// captured at proposal time so the request stays attributable after the
// listings it names are retired.
type Request struct {
	id               uuid.UUID
	requesteeID      uuid.UUID
	requesteeOwnerID uuid.UUID
	requesterID      uuid.UUID
	requesterOwnerID uuid.UUID
	status           Status
	requestedAt      time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewRequest enforces the proposal invariants: the two listings must differ
// and must belong to different users. New requests always start pending.
func NewRequest(services *Services, requestee, requester ListingSpec) (*Request, error) {
	if requestee.ID == requester.ID {
		return nil, ErrSameListing
	}
	if requestee.OwnerID == requester.OwnerID {
		return nil, ErrSameOwner
	}

	return &Request{
		id:               uuid.New(),
		requesteeID:      requestee.ID,
		requesteeOwnerID: requestee.OwnerID,
		requesterID:      requester.ID,
		requesterOwnerID: requester.OwnerID,
		status:           StatusPending,
		requestedAt:      services.Clock.Now(),
	}, nil
}

func ReconstructRequest(
	id uuid.UUID,
	requestee, requester ListingSpec,
	status Status,
	requestedAt, createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:               id,
		requesteeID:      requestee.ID,
		requesteeOwnerID: requestee.OwnerID,
		requesterID:      requester.ID,
		requesterOwnerID: requester.OwnerID,
		status:           status,
		requestedAt:      requestedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Accept transitions a pending request to accepted. Competing requests on the
// same requestee listing are rejected by the store in the same transaction.
func (r *Request) Accept() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusAccepted
	return nil
}

// ChangeStatus applies a participant-driven transition. A pending request can
// be rejected or cancelled; accepted carries the cascade and must go through
// Accept; terminal states never change again.
func (r *Request) ChangeStatus(to Status) error {
	if to == StatusAccepted {
		return ErrDirectAccept
	}
	if r.status.IsTerminal() {
		return ErrAlreadyFinal
	}
	if to != StatusRejected && to != StatusCancelled {
		return ErrInvalidStatus
	}
	r.status = to
	return nil
}

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) Involves(listingID uuid.UUID) bool {
	return r.requesteeID == listingID || r.requesterID == listingID
}

// IsParticipant reports whether the user owned either listing at proposal time.
func (r *Request) IsParticipant(userID uuid.UUID) bool {
	return r.requesteeOwnerID == userID || r.requesterOwnerID == userID
}

func (r *Request) ID() uuid.UUID               { return r.id }
func (r *Request) RequesteeID() uuid.UUID      { return r.requesteeID }
func (r *Request) RequesteeOwnerID() uuid.UUID { return r.requesteeOwnerID }
func (r *Request) RequesterID() uuid.UUID      { return r.requesterID }
func (r *Request) RequesterOwnerID() uuid.UUID { return r.requesterOwnerID }
func (r *Request) Status() Status         { return r.status }
func (r *Request) RequestedAt() time.Time { return r.requestedAt }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) UpdatedAt() time.Time   { return r.updatedAt }
