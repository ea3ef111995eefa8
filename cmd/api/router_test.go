package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	actorHandler "movie-catalog-backend/internal/domains/actor/handler"
	genreHandler "movie-catalog-backend/internal/domains/genre/handler"
	movieHandler "movie-catalog-backend/internal/domains/movie/handler"
	userHandler "movie-catalog-backend/internal/domains/user/handler"
	"movie-catalog-backend/pkg/container"
)

// Route registration only needs the handlers; services are never invoked.
func testContainer() *container.Container {
	return &container.Container{
		MovieHandler: movieHandler.NewHandler(nil, nil),
		ActorHandler: actorHandler.NewHandler(nil),
		GenreHandler: genreHandler.NewHandler(nil),
		UserHandler:  userHandler.NewHandler(nil),
	}
}

func TestSetupRouterRegistersAllRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := SetupRouter(testContainer())

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /api/v1/health",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/movies",
		"GET /api/v1/movies/search",
		"GET /api/v1/movies/:id",
		"GET /api/v1/movies/:id/genres",
		"GET /api/v1/movies/:id/actors",
		"POST /api/v1/movies",
		"PUT /api/v1/movies/:id",
		"DELETE /api/v1/movies/:id",
		"POST /api/v1/movies/:id/actors",
		"POST /api/v1/movies/:id/genres",
		"GET /api/v1/actors",
		"GET /api/v1/actors/:id",
		"GET /api/v1/actors/:id/movies",
		"POST /api/v1/actors",
		"PUT /api/v1/actors/:id",
		"DELETE /api/v1/actors/:id",
		"POST /api/v1/actors/:id/movies",
		"GET /api/v1/genres",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
