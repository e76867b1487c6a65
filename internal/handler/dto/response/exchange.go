package response

import (
	"time"

	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExchangeResponse struct {
	ID                 uuid.UUID `json:"id"`
	RequesteeListingID uuid.UUID `json:"requestee_listing_id"`
	RequesteeOwnerID   uuid.UUID `json:"requestee_owner_id"`
	RequesterListingID uuid.UUID `json:"requester_listing_id"`
	RequesterOwnerID   uuid.UUID `json:"requester_owner_id"`
	Status             string    `json:"status"`
	RequestedAt        time.Time `json:"requested_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ExchangeDetailResponse struct {
	Request          *ExchangeResponse `json:"request"`
	RequesteeListing *ListingResponse  `json:"requestee_listing,omitempty"`
	RequesterListing *ListingResponse  `json:"requester_listing,omitempty"`
}

type AcceptExchangeResponse struct {
	RequestID        uuid.UUID `json:"request_id"`
	Status           string    `json:"status"`
	RejectedSiblings int64     `json:"rejected_siblings"`
}

func FromExchangeView(v *queries.ExchangeView) *ExchangeResponse {
	return &ExchangeResponse{
		ID:                 v.ID,
		RequesteeListingID: v.RequesteeListingID,
		RequesteeOwnerID:   v.RequesteeOwnerID,
		RequesterListingID: v.RequesterListingID,
		RequesterOwnerID:   v.RequesterOwnerID,
		Status:             v.Status,
		RequestedAt:        v.RequestedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromExchangeViews(views []*queries.ExchangeView) []*ExchangeResponse {
	out := make([]*ExchangeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromExchangeView(v))
	}
	return out
}

func FromExchangeDetailView(v *queries.ExchangeDetailView) *ExchangeDetailResponse {
	resp := &ExchangeDetailResponse{
		Request: FromExchangeView(&v.Request),
	}
	if v.RequesteeListing != nil {
		resp.RequesteeListing = FromListingView(v.RequesteeListing)
	}
	if v.RequesterListing != nil {
		resp.RequesterListing = FromListingView(v.RequesterListing)
	}
	return resp
}
