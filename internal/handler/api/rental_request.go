package api

import (
	"context"
	"net/http"

	reqdto "tenancy-service/internal/handler/dto/request"
	resdto "tenancy-service/internal/handler/dto/response"
	"tenancy-service/internal/handler/httperr"
	"tenancy-service/internal/usecase/commands"
	"tenancy-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Send rental request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.Envelope{data=resdto.IDResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/apartments/{id}/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	apartmentID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CreateRentalRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput(apartmentID, userID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.IDResponse{ID: id.String()})
}

// @Summary List requests for an apartment
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.Envelope{data=[]resdto.RequestResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/apartments/{id}/requests [get]
func (h *RequestHandler) ListForApartment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	apartmentID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.q.ListForApartment(c.Request.Context(), apartmentID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromRequestViews(items))
}

// @Summary List own requests
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.RequestResponse}
// @Router /api/requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.q.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromRequestViews(items))
}

// @Summary List received requests
// @Description Requests on apartments owned by the caller
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.RequestResponse}
// @Router /api/requests/received [get]
func (h *RequestHandler) ListReceived(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.q.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromRequestViews(items))
}

// @Summary Get request
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope{data=resdto.RequestResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	v, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromRequestView(v))
}

// @Summary Accept request
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests/{id}/accept [post]
func (h *RequestHandler) Accept(c *gin.Context) {
	h.transition(c, h.cmds.Accept)
}

// @Summary Reject request
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests/{id}/reject [post]
func (h *RequestHandler) Reject(c *gin.Context) {
	h.transition(c, h.cmds.Reject)
}

// @Summary Confirm accepted request
// @Description Commits the allotment and purges the apartment's and tenant's other requests
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope{data=resdto.AllotmentResultResponse}
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests/{id}/confirm [post]
func (h *RequestHandler) Confirm(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromAllotmentResult(result))
}

func (h *RequestHandler) transition(c *gin.Context, fn func(ctx context.Context, requestID, actorID uuid.UUID) error) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
