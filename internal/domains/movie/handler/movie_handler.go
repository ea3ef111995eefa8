package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/shared/response"
	"movie-catalog-backend/pkg/cache"
	"movie-catalog-backend/pkg/logger"
)

// Handler exposes the Movie domain over HTTP, with read-through caching
// on the detail and provider-search endpoints.
type Handler struct {
	service movie.Service
	cache   cache.Cache
}

func NewHandler(service movie.Service, cache cache.Cache) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
	}
}

// CreateMovie - POST /v1/movies
// Body carries the external movie id; the creation workflow assembles
// everything else from the provider.
func (h *Handler) CreateMovie(c *gin.Context) {
	var req movie.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.CreateFromTMDB(c.Request.Context(), req.MovieID)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Movie created successfully", created)
}

// ListMovies - GET /v1/movies
// Query params: search (case-insensitive title substring)
func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.service.GetAll(c.Request.Context(), c.Query("search"))
	if err != nil {
		handleMovieError(c, err)
		return
	}

	items := make([]*movie.SimpleMovieResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, m.ToSimpleResponse())
	}

	response.Success(c, http.StatusOK, "Movies retrieved successfully", items)
}

// GetMovie - GET /v1/movies/:id
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	cacheKey := movie.DetailCacheKey(id)
	var cached movie.MovieResponse
	found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached)
	if found {
		response.Success(c, http.StatusOK, "Movie retrieved successfully", &cached)
		return
	}
	if err != nil {
		logger.Warn().Str("cache_key", cacheKey).Err(err).Msg("Cache read failed, falling through to storage")
	}

	detail, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	if err := h.cache.Set(c.Request.Context(), cacheKey, detail, movie.DetailCacheTTL); err != nil {
		logger.Warn().Str("cache_key", cacheKey).Err(err).Msg("Cache write failed")
	}

	response.Success(c, http.StatusOK, "Movie retrieved successfully", detail)
}

// UpdateMovie - PUT /v1/movies/:id
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	var req movie.UpdateMovieRequest
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
		handleMovieError(c, err)
		return
	}

	h.invalidateDetail(c, id)
	response.Success(c, http.StatusOK, "Movie updated successfully", updated)
}

// DeleteMovie - DELETE /v1/movies/:id
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleMovieError(c, err)
		return
	}

	h.invalidateDetail(c, id)
	response.Success(c, http.StatusOK, "Movie deleted successfully", nil)
}

// SearchMovies - GET /v1/movies/search?query=
// Passthrough to the provider search; local storage is never touched.
func (h *Handler) SearchMovies(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query parameter is required")
		return
	}

	cacheKey := movie.SearchCacheKey(query)
	var cached []*movie.SearchMovieResponse
	found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached)
	if found {
		response.Success(c, http.StatusOK, "Search completed successfully", cached)
		return
	}
	if err != nil {
		logger.Warn().Str("cache_key", cacheKey).Err(err).Msg("Cache read failed, falling through to provider")
	}

	results, err := h.service.SearchTMDB(c.Request.Context(), query)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	if err := h.cache.Set(c.Request.Context(), cacheKey, results, movie.SearchCacheTTL); err != nil {
		logger.Warn().Str("cache_key", cacheKey).Err(err).Msg("Cache write failed")
	}

	response.Success(c, http.StatusOK, "Search completed successfully", results)
}

// AttachActor - POST /v1/movies/:id/actors
func (h *Handler) AttachActor(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	var req movie.AttachActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	if err := h.service.AttachActor(c.Request.Context(), id, req.ActorID); err != nil {
		handleMovieError(c, err)
		return
	}

	h.invalidateDetail(c, id)
	response.Success(c, http.StatusOK, "Actor attached successfully", nil)
}

// AttachGenres - POST /v1/movies/:id/genres
func (h *Handler) AttachGenres(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	var req movie.AttachGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	var attachErr error
	if req.MovieID > 0 {
		attachErr = h.service.EnrichGenresFromTMDB(c.Request.Context(), id, req.MovieID)
	} else {
		attachErr = h.service.AttachGenres(c.Request.Context(), id, req.Genres)
	}
	if attachErr != nil {
		handleMovieError(c, attachErr)
		return
	}

	h.invalidateDetail(c, id)
	response.Success(c, http.StatusOK, "Genres attached successfully", nil)
}

// ListMovieGenres - GET /v1/movies/:id/genres
func (h *Handler) ListMovieGenres(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	genres, err := h.service.ListGenres(c.Request.Context(), id)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Genres retrieved successfully", genres)
}

// ListMovieActors - GET /v1/movies/:id/actors
func (h *Handler) ListMovieActors(c *gin.Context) {
	id, ok := parseID(c, "invalid movie id")
	if !ok {
		return
	}

	actors, err := h.service.ListActors(c.Request.Context(), id)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	items := make([]*actor.SimpleActorResponse, 0, len(actors))
	for _, a := range actors {
		items = append(items, a.ToSimpleResponse())
	}

	response.Success(c, http.StatusOK, "Actors retrieved successfully", items)
}

// AttachMovieToActor - POST /v1/actors/:id/movies
// Same association as AttachActor, addressed from the actor side.
func (h *Handler) AttachMovieToActor(c *gin.Context) {
	actorID, ok := parseID(c, "invalid actor id")
	if !ok {
		return
	}

	var req movie.AttachMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	if err := h.service.AttachActor(c.Request.Context(), req.MovieID, actorID); err != nil {
		handleMovieError(c, err)
		return
	}

	h.invalidateDetail(c, req.MovieID)
	response.Success(c, http.StatusOK, "Movie attached successfully", nil)
}

// ListMoviesByActor - GET /v1/actors/:id/movies
func (h *Handler) ListMoviesByActor(c *gin.Context) {
	id, ok := parseID(c, "invalid actor id")
	if !ok {
		return
	}

	movies, err := h.service.ListByActor(c.Request.Context(), id)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	items := make([]*movie.SimpleMovieResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, m.ToSimpleResponse())
	}

	response.Success(c, http.StatusOK, "Movies retrieved successfully", items)
}

func (h *Handler) invalidateDetail(c *gin.Context, id int64) {
	if err := h.cache.Delete(c.Request.Context(), movie.DetailCacheKey(id)); err != nil {
		logger.Warn().Int64("movie_id", id).Err(err).Msg("Cache invalidation failed")
	}
}

func parseID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, msg)
		return 0, false
	}
	return id, true
}

func handleMovieError(c *gin.Context, err error) {
	// Attach and list-by-actor routes can surface actor errors.
	if errors.Is(err, actor.ErrActorNotFound) {
		response.ErrorResponse(c, actor.ToHTTPStatus(err), actor.ToErrorCode(err), err.Error())
		return
	}

	status := movie.ToHTTPStatus(err)
	if status == 500 {
		logger.Error().Err(err).Msg("Unhandled movie error")
	}
	response.ErrorResponse(c, status, movie.ToErrorCode(err), err.Error())
}
