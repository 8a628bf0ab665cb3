package api

import (
	"net/http"
	"strconv"

	reqdto "tenancy-service/internal/handler/dto/request"
	resdto "tenancy-service/internal/handler/dto/response"
	"tenancy-service/internal/handler/httperr"
	"tenancy-service/internal/usecase/commands"
	"tenancy-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds   commands.PaymentCommands
	q      queries.PaymentQueries
	ledger queries.LedgerQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries, ledger queries.LedgerQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q, ledger: ledger}
}

// @Summary Submit rent payment
// @Description Record a payment for a due month of the caller's active allotment. It stays pending until the owner decides.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitPaymentRequest true "Payment"
// @Success 201 {object} resdto.Envelope{data=resdto.IDResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments [post]
func (h *PaymentHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.SubmitPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.IDResponse{ID: id.String()})
}

// @Summary List own payments
// @Description Newest first, paginated with an opaque cursor
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentListResponse}
// @Failure 400 {object} httperr.Response
// @Router /api/payments [get]
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	items, next, err := h.q.ListForTenant(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromPaymentViews(items, next))
}

// @Summary List pending payments
// @Description Pending payments on apartments owned by the caller
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentListResponse}
// @Router /api/payments/pending [get]
func (h *PaymentHandler) ListPending(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.q.ListPendingForOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromPaymentViews(items, nil))
}

// @Summary Confirm payment
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	h.decide(c, "confirm")
}

// @Summary Decline payment
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/{id}/decline [post]
func (h *PaymentHandler) Decline(c *gin.Context) {
	h.decide(c, "decline")
}

func (h *PaymentHandler) decide(c *gin.Context, decision string) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cmds.Decide(c.Request.Context(), id, userID, decision); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get payment memo
// @Description Receipt of a confirmed payment, visible to the payer and the owner
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentMemoResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/{id}/memo [get]
func (h *PaymentHandler) Memo(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	memo, err := h.q.GetMemo(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromPaymentMemoView(memo))
}

// @Summary List unpaid months
// @Description Months due and not yet confirmed for the apartment's active allotment, as of today
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.Envelope{data=resdto.UnpaidMonthsResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/apartments/{id}/unpaid-months [get]
func (h *PaymentHandler) UnpaidMonths(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	apartmentID, ok := pathID(c)
	if !ok {
		return
	}

	v, err := h.ledger.UnpaidMonths(c.Request.Context(), apartmentID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromUnpaidMonthsView(v))
}
