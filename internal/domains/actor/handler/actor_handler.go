package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/shared/response"
)

// Handler exposes the Actor domain over HTTP.
type Handler struct {
	service actor.Service
}

func NewHandler(service actor.Service) *Handler {
	return &Handler{service: service}
}

// CreateActor - POST /v1/actors
// Body carries the external person id; actor data comes from the provider.
func (h *Handler) CreateActor(c *gin.Context) {
	var req actor.CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.CreateFromTMDB(c.Request.Context(), req.ActorID)
	if err != nil {
		handleActorError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Actor created successfully", created.ToResponse())
}

// ListActors - GET /v1/actors
func (h *Handler) ListActors(c *gin.Context) {
	actors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleActorError(c, err)
		return
	}

	items := make([]*actor.SimpleActorResponse, 0, len(actors))
	for _, a := range actors {
		items = append(items, a.ToSimpleResponse())
	}

	response.Success(c, http.StatusOK, "Actors retrieved successfully", items)
}

// GetActor - GET /v1/actors/:id
func (h *Handler) GetActor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleActorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Actor retrieved successfully", a.ToResponse())
}

// UpdateActor - PUT /v1/actors/:id
func (h *Handler) UpdateActor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req actor.UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleActorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Actor updated successfully", updated.ToResponse())
}

// DeleteActor - DELETE /v1/actors/:id
func (h *Handler) DeleteActor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleActorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Actor deleted successfully", nil)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid actor id")
		return 0, false
	}
	return id, true
}

func handleActorError(c *gin.Context, err error) {
	response.ErrorResponse(c, actor.ToHTTPStatus(err), actor.ToErrorCode(err), err.Error())
}
