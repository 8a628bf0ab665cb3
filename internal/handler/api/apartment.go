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

type ApartmentHandler struct {
	cmds       commands.ApartmentCommands
	allotments commands.AllotmentCommands
	q          queries.ApartmentQueries
}

func NewApartmentHandler(cmds commands.ApartmentCommands, allotments commands.AllotmentCommands, q queries.ApartmentQueries) *ApartmentHandler {
	return &ApartmentHandler{cmds: cmds, allotments: allotments, q: q}
}

// @Summary List available apartments
// @Description Apartments without an active allotment, optionally filtered by street, area or city
// @Tags apartments
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} resdto.Envelope{data=[]resdto.ApartmentResponse}
// @Router /api/apartments [get]
func (h *ApartmentHandler) ListAvailable(c *gin.Context) {
	items, err := h.q.ListAvailable(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromApartmentViews(items))
}

// @Summary Get apartment
// @Description Owners also get the requests and the active allotment; the allotted tenant gets the allotment
// @Tags apartments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ApartmentDetailResponse}
// @Failure 404 {object} httperr.Response
// @Router /api/apartments/{id} [get]
func (h *ApartmentHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromApartmentDetailView(detail))
}

// @Summary List own apartments
// @Tags apartments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.OwnedApartmentResponse}
// @Failure 403 {object} httperr.Response
// @Router /api/apartments/mine [get]
func (h *ApartmentHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.q.ListOwned(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromOwnedApartmentViews(items))
}

// @Summary Create apartment
// @Tags apartments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateApartmentRequest true "Apartment"
// @Success 201 {object} resdto.Envelope{data=resdto.IDResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/apartments [post]
func (h *ApartmentHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateApartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusCreated, resdto.IDResponse{ID: id.String()})
}

// @Summary Update apartment
// @Description Partial update; omitted fields keep their value
// @Tags apartments
// @Security BearerAuth
// @Accept json
// @Param id path string true "Apartment ID"
// @Param request body reqdto.UpdateApartmentRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/apartments/{id} [put]
func (h *ApartmentHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateApartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, userID, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete apartment
// @Description Only apartments without an active allotment can be deleted
// @Tags apartments
// @Security BearerAuth
// @Param id path string true "Apartment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/apartments/{id} [delete]
func (h *ApartmentHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Vacate apartment
// @Description End the active allotment. Payment history stays with the ended allotment.
// @Tags apartments
// @Security BearerAuth
// @Param id path string true "Apartment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/apartments/{id}/vacate [post]
func (h *ApartmentHandler) Vacate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.allotments.Vacate(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get own allotment
// @Tags allotments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.MyAllotmentResponse}
// @Failure 404 {object} httperr.Response
// @Router /api/allotments/mine [get]
func (h *ApartmentHandler) MyAllotment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	v, err := h.q.GetMyAllotment(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromMyAllotmentView(v))
}
