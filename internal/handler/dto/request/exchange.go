package request

import (
	"github.com/google/uuid"
)

type ProposeExchangeRequest struct {
	RequesteeListingID uuid.UUID `json:"requestee_listing_id" binding:"required"`
	RequesterListingID uuid.UUID `json:"requester_listing_id" binding:"required"`
}

type UpdateExchangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
