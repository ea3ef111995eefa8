package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/domains/genre"
	"movie-catalog-backend/internal/shared/response"
)

// Handler exposes the Genre lookup table over HTTP.
type Handler struct {
	service genre.Service
}

func NewHandler(service genre.Service) *Handler {
	return &Handler{service: service}
}

// ListGenres - GET /v1/genres
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to retrieve genres")
		return
	}

	response.Success(c, http.StatusOK, "Genres retrieved successfully", genres)
}
