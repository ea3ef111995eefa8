package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/domains/user"
	"movie-catalog-backend/internal/shared/response"
)

// Handler exposes authentication over HTTP.
type Handler struct {
	service user.Service
}

func NewHandler(service user.Service) *Handler {
	return &Handler{service: service}
}

// Register - POST /v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", created)
}

// Login - POST /v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", tokens)
}

// Refresh - POST /v1/auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.BadRequest(c, "refresh_token is required")
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", tokens)
}

func handleUserError(c *gin.Context, err error) {
	response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
}
