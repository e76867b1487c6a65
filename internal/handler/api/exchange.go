package api

import (
	"errors"
	"net/http"

	"bookswap/internal/domain/exchange"
	reqdto "bookswap/internal/handler/dto/request"
	resdto "bookswap/internal/handler/dto/response"
	"bookswap/internal/handler/httperr"
	"bookswap/internal/handler/middleware"
	"bookswap/internal/usecase/commands"
	"bookswap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExchangeHandler struct {
	cmds commands.ExchangeCommands
	q    queries.ExchangeQueries
}

func NewExchangeHandler(cmds commands.ExchangeCommands, q queries.ExchangeQueries) *ExchangeHandler {
	return &ExchangeHandler{cmds: cmds, q: q}
}

// @Summary Propose exchange
// @Description Ask for another user's listing in return for one of your own
// @Tags exchanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProposeExchangeRequest true "Propose exchange request"
// @Success 201 {object} resdto.ExchangeDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /exchanges [post]
func (h *ExchangeHandler) Propose(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ProposeExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ProposeExchange(c.Request.Context(), userID, req.RequesteeListingID, req.RequesterListingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidExchange):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid exchange request", nil)
		case errors.Is(err, commands.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Caller does not own the offered listing", nil)
		case errors.Is(err, commands.ErrDuplicateExchange):
			httperr.AbortWithError(c, http.StatusConflict, err, "Exchange request already exists for this listing pair", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, result.RequestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load exchange request", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromExchangeDetailView(view))
}

// @Summary Get exchange
// @Description Get an exchange request by ID. Participants only.
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Success 200 {object} resdto.ExchangeDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exchanges/{id} [get]
func (h *ExchangeHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExchangeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Exchange request not found", nil)
		case errors.Is(err, queries.ErrNotParticipant):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Caller is not a participant", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExchangeDetailView(view))
}

// @Summary List exchanges
// @Description List the caller's exchange requests, optionally filtered by status
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.ExchangeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /exchanges [get]
func (h *ExchangeHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if status := c.Query("status"); status != "" {
		if _, err := exchange.NewStatus(status); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		filtered := views[:0]
		for _, v := range views {
			if v.Status == status {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	c.JSON(http.StatusOK, resdto.FromExchangeViews(views))
}

// @Summary List exchanges for a listing
// @Description List exchange requests naming a listing, as target (requestee) or as offer (requester)
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param role query string false "requestee (default) or requester"
// @Success 200 {array} resdto.ExchangeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /listings/{id}/exchanges [get]
func (h *ExchangeHandler) ListForListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var views []*queries.ExchangeView
	switch role := c.DefaultQuery("role", "requestee"); role {
	case "requestee":
		views, err = h.q.ListByRequesteeListing(c.Request.Context(), listingID)
	case "requester":
		views, err = h.q.ListByRequesterListing(c.Request.Context(), listingID)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid role", nil)
		return
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExchangeViews(views))
}

// @Summary List exchanges by status
// @Description List all exchange requests currently in the given status
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param status path string true "Exchange status"
// @Success 200 {array} resdto.ExchangeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /exchanges/status/{status} [get]
func (h *ExchangeHandler) ListByStatus(c *gin.Context) {
	views, err := h.q.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExchangeViews(views))
}

// @Summary Accept exchange
// @Description Accept a pending request, rejecting competitors and retiring both listings
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Success 200 {object} resdto.AcceptExchangeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /exchanges/{id}/accept [post]
func (h *ExchangeHandler) Accept(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.cmds.AcceptExchange(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrExchangeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Exchange request not found", nil)
		case errors.Is(err, commands.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the requestee listing owner can accept", nil)
		case errors.Is(err, commands.ErrExchangeNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Exchange request is not pending", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AcceptExchangeResponse{
		RequestID:        result.RequestID,
		Status:           exchange.StatusAccepted.String(),
		RejectedSiblings: result.RejectedSiblings,
	})
}

// @Summary Update exchange status
// @Description Set the status of an exchange request the caller participates in
// @Tags exchanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Param request body reqdto.UpdateExchangeStatusRequest true "Status update request"
// @Success 200 {object} resdto.ExchangeDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /exchanges/{id}/status [patch]
func (h *ExchangeHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateExchangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateExchangeStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrExchangeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Exchange request not found", nil)
		case errors.Is(err, commands.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Caller is not a participant", nil)
		case errors.Is(err, commands.ErrExchangeNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Exchange request is not pending", nil)
		case errors.Is(err, commands.ErrInvalidExchange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load exchange request", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExchangeDetailView(view))
}

// @Summary Delete exchange
// @Description Remove an exchange request the caller participates in
// @Tags exchanges
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exchanges/{id} [delete]
func (h *ExchangeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	deleted, err := h.cmds.DeleteExchange(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Caller is not a participant", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	if !deleted {
		httperr.AbortWithError(c, http.StatusNotFound, queries.ErrExchangeNotFound, "Exchange request not found", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
