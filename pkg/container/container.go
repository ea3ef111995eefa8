package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"movie-catalog-backend/internal/config"
	infraCache "movie-catalog-backend/internal/infrastructure/cache"
	"movie-catalog-backend/internal/infrastructure/database"
	"movie-catalog-backend/internal/tmdb"
	"movie-catalog-backend/pkg/cache"
	"movie-catalog-backend/pkg/jwt"

	"movie-catalog-backend/internal/domains/actor"
	actorHandler "movie-catalog-backend/internal/domains/actor/handler"
	actorRepo "movie-catalog-backend/internal/domains/actor/repository"
	actorService "movie-catalog-backend/internal/domains/actor/service"
	"movie-catalog-backend/internal/domains/genre"
	genreHandler "movie-catalog-backend/internal/domains/genre/handler"
	genreRepo "movie-catalog-backend/internal/domains/genre/repository"
	genreService "movie-catalog-backend/internal/domains/genre/service"
	"movie-catalog-backend/internal/domains/movie"
	movieHandler "movie-catalog-backend/internal/domains/movie/handler"
	movieRepo "movie-catalog-backend/internal/domains/movie/repository"
	movieService "movie-catalog-backend/internal/domains/movie/service"
	"movie-catalog-backend/internal/domains/user"
	userHandler "movie-catalog-backend/internal/domains/user/handler"
	userRepo "movie-catalog-backend/internal/domains/user/repository"
	userService "movie-catalog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the full dependency graph. Everything in it is a
// singleton wired once at startup; initialization order is config,
// infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	TMDB       tmdb.API

	// Repositories
	GenreRepo genre.Repository
	ActorRepo actor.Repository
	MovieRepo movie.Repository
	UserRepo  user.Repository

	// Services
	GenreService genre.Service
	ActorService actor.Service
	MovieService movie.Service
	UserService  user.Service

	// Handlers
	GenreHandler *genreHandler.Handler
	ActorHandler *actorHandler.Handler
	MovieHandler *movieHandler.Handler
	UserHandler  *userHandler.Handler
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is not critical, cache reads just miss.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: JWT + PROVIDER CLIENT
	// ========================================
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	tmdbClient, err := tmdb.NewClient(&tmdb.Config{
		BaseURL: cfg.TMDB.BaseURL,
		APIKey:  cfg.TMDB.APIKey,
		Timeout: cfg.TMDB.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}
	c.TMDB = tmdbClient

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.initHandlers()

	// ========================================
	// STEP 8: SEED GENRE VOCABULARY
	// ========================================
	// The canonical genre names must exist before the first movie
	// creation runs; safe to repeat on every boot.
	if err := c.GenreService.SeedVocabulary(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed genre vocabulary: %w", err)
	}
	log.Println("✅ Genre vocabulary seeded")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.ActorRepo = actorRepo.NewPostgresRepository(pool)
	c.MovieRepo = movieRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.ActorService = actorService.NewActorService(c.ActorRepo, c.TMDB)
	c.MovieService = movieService.NewMovieService(
		c.MovieRepo,
		c.ActorService, // Cross-domain dependency
		c.GenreService, // Cross-domain dependency
		c.TMDB,
	)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.GenreHandler = genreHandler.NewHandler(c.GenreService)
	c.ActorHandler = actorHandler.NewHandler(c.ActorService)
	c.MovieHandler = movieHandler.NewHandler(c.MovieService, c.Cache)
	c.UserHandler = userHandler.NewHandler(c.UserService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}
}
