package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/moviebag/movie-bag/docs"
	"github.com/moviebag/movie-bag/internal/api/handler"
	"github.com/moviebag/movie-bag/internal/api/middleware"
	"github.com/moviebag/movie-bag/internal/core/password"
	"github.com/moviebag/movie-bag/internal/core/ports"
	"github.com/moviebag/movie-bag/internal/core/service"
	"github.com/moviebag/movie-bag/internal/core/token"
	mongodb "github.com/moviebag/movie-bag/internal/infrastructure/db/mongo"
	redisdb "github.com/moviebag/movie-bag/internal/infrastructure/db/redis"
)

// Options carries the externally owned dependencies the router wires into
// handlers. Lifecycle (connect/close) belongs to the process entry point.
type Options struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Mail       ports.MailEnqueuer
	Tokens     *token.Service
	BcryptCost int
	ResetURL   string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("moviebag"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	movieRepo := mongodb.NewMovieRepository(opts.Mongo)
	resetTokens := redisdb.NewResetTokenStore(opts.Redis)
	hasher := password.NewHasher(opts.BcryptCost)

	authService := service.NewAuthService(userRepo, movieRepo, hasher, opts.Tokens, resetTokens, opts.Mail, opts.ResetURL, opts.Logger)
	movieService := service.NewMovieService(movieRepo, userRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	userHandler := handler.NewUserHandler(authService)
	requireAuth := middleware.Auth(opts.Tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// --- Movie routes (reads public, mutations owner-gated) ---
	movies := e.Group("/api/movies")
	movies.GET("", movieHandler.List)
	movies.GET("/:id", movieHandler.Get)
	movies.POST("", movieHandler.Create, requireAuth)
	movies.PUT("/:id", movieHandler.Update, requireAuth)
	movies.DELETE("/:id", movieHandler.Delete, requireAuth)

	// --- Account routes ---
	e.DELETE("/api/users/me", userHandler.DeleteMe, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
