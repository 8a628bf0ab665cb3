package api

import (
	"net/http"

	reqdto "tenancy-service/internal/handler/dto/request"
	resdto "tenancy-service/internal/handler/dto/response"
	"tenancy-service/internal/handler/httperr"
	"tenancy-service/internal/usecase/commands"
	"tenancy-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LeaveHandler struct {
	cmds commands.LeaveCommands
	q    queries.LeaveQueries
}

func NewLeaveHandler(cmds commands.LeaveCommands, q queries.LeaveQueries) *LeaveHandler {
	return &LeaveHandler{cmds: cmds, q: q}
}

// @Summary Submit leave request
// @Description Notice that the tenant will leave from the given month
// @Tags leave-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitLeaveRequest true "Leave request"
// @Success 201 {object} resdto.Envelope{data=resdto.IDResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/leave-requests [post]
func (h *LeaveHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.SubmitLeaveRequest
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

// @Summary List leave requests
// @Description Leave requests on apartments owned by the caller
// @Tags leave-requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.LeaveRequestResponse}
// @Router /api/leave-requests [get]
func (h *LeaveHandler) ListForOwner(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.q.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromLeaveRequestViews(items))
}

// @Summary Get current leave request of an apartment
// @Tags leave-requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.Envelope{data=resdto.LeaveRequestResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/apartments/{id}/leave-request [get]
func (h *LeaveHandler) GetForApartment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	apartmentID, ok := pathID(c)
	if !ok {
		return
	}

	v, err := h.q.GetForApartment(c.Request.Context(), apartmentID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromLeaveRequestView(v))
}

// @Summary Accept leave request
// @Tags leave-requests
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/leave-requests/{id}/accept [post]
func (h *LeaveHandler) Accept(c *gin.Context) {
	h.decide(c, true)
}

// @Summary Reject leave request
// @Tags leave-requests
// @Security BearerAuth
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/leave-requests/{id}/reject [post]
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *LeaveHandler) decide(c *gin.Context, accept bool) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	decide := h.cmds.Reject
	if accept {
		decide = h.cmds.Accept
	}
	if err := decide(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
