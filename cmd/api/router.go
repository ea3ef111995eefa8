package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/internal/shared/middleware"
	"movie-catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupMovieRoutes(v1, c)
		setupActorRoutes(v1, c)
		setupGenreRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// ========================================
// MOVIE ROUTES
// ========================================
// Reads are public; mutations require a valid access token.
func setupMovieRoutes(v1 *gin.RouterGroup, c *container.Container) {
	movies := v1.Group("/movies")
	{
		movies.GET("", c.MovieHandler.ListMovies)
		movies.GET("/search", c.MovieHandler.SearchMovies)
		movies.GET("/:id", c.MovieHandler.GetMovie)
		movies.GET("/:id/genres", c.MovieHandler.ListMovieGenres)
		movies.GET("/:id/actors", c.MovieHandler.ListMovieActors)

		protected := movies.Group("")
		protected.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.MovieHandler.CreateMovie)
			protected.PUT("/:id", c.MovieHandler.UpdateMovie)
			protected.DELETE("/:id", c.MovieHandler.DeleteMovie)
			protected.POST("/:id/actors", c.MovieHandler.AttachActor)
			protected.POST("/:id/genres", c.MovieHandler.AttachGenres)
		}
	}
}

// ========================================
// ACTOR ROUTES
// ========================================
func setupActorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	actors := v1.Group("/actors")
	{
		actors.GET("", c.ActorHandler.ListActors)
		actors.GET("/:id", c.ActorHandler.GetActor)
		actors.GET("/:id/movies", c.MovieHandler.ListMoviesByActor)

		protected := actors.Group("")
		protected.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.ActorHandler.CreateActor)
			protected.PUT("/:id", c.ActorHandler.UpdateActor)
			protected.DELETE("/:id", c.ActorHandler.DeleteActor)
			protected.POST("/:id/movies", c.MovieHandler.AttachMovieToActor)
		}
	}
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.ListGenres)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
		}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Degraded but alive, cache misses fall through to storage.
			checks["cache"] = err.Error()
		}

		status := http.StatusOK
		statusText := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			statusText = "unhealthy"
		}

		ctx.JSON(status, gin.H{
			"status":    statusText,
			"timestamp": time.Now().UTC(),
			"checks":    checks,
		})
	}
}
