package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/hivcare/art-tracker/internal/api/handler"
	"github.com/hivcare/art-tracker/internal/api/middleware"
	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
	"github.com/hivcare/art-tracker/internal/core/service"
	"github.com/hivcare/art-tracker/internal/infrastructure/db/redis"
	"github.com/hivcare/art-tracker/internal/infrastructure/db/sqldb"
	infrahandlers "github.com/hivcare/art-tracker/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs to assemble the application.
type Deps struct {
	DB        *gorm.DB
	Redis     *goredis.Client
	Mongo     *mongodriver.Database // nil disables the audit readiness probe
	Audit     ports.AuditRecorder
	JWTSecret string
	StaticDir string // path to the browser UI assets; empty disables the UI
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("arttracker"))

	// --- Dependencies ---
	revoker := redis.NewRevocationStore(deps.Redis)

	authRepo := sqldb.NewAuthRepository(deps.DB)
	authService := service.NewAuthService(authRepo, revoker, deps.JWTSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	clientRepo := sqldb.NewClientRepository(deps.DB)
	clientService := service.NewClientService(clientRepo, deps.Audit, deps.Logger)
	clientHandler := handler.NewClientHandler(clientService)

	facilityRepo := sqldb.NewFacilityRepository(deps.DB)
	facilityService := service.NewFacilityService(facilityRepo, deps.Logger)
	facilityHandler := handler.NewFacilityHandler(facilityService)

	auth := middleware.Auth(deps.JWTSecret, revoker)
	adminOnly := middleware.RBAC(domain.RoleSystemAdmin)
	registrars := middleware.RBAC(domain.RoleSystemAdmin, domain.RoleProfessionalCounselor, domain.RoleLayCounselor)
	careTeam := middleware.RBAC(domain.RoleSystemAdmin, domain.RoleProfessionalCounselor, domain.RoleLayCounselor, domain.RoleClinician)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, auth)
	e.POST("/api/auth/register", authHandler.Register, auth, adminOnly)

	// --- Client routes ---
	clients := e.Group("/api/clients", auth)
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Register, registrars)
	clients.GET("/:artNumber", clientHandler.Get)
	clients.PUT("/:artNumber", clientHandler.Update, careTeam)
	clients.POST("/:artNumber/pickup", clientHandler.RecordPickup, careTeam)
	clients.DELETE("/:artNumber", clientHandler.Delete, adminOnly)

	e.GET("/api/stats", clientHandler.Stats, auth)

	// --- Facility routes ---
	e.GET("/api/facilities", facilityHandler.List, auth)
	e.POST("/api/facilities", facilityHandler.Create, auth, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := infrahandlers.NewHealthHandler()
	healthDepsHandler := infrahandlers.NewHealthDependenciesHandler(deps.DB, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Browser UI ---
	if deps.StaticDir != "" {
		e.File("/", deps.StaticDir+"/index.html")
		e.File("/login", deps.StaticDir+"/login.html")
		e.Static("/static", deps.StaticDir)
	}

	return e
}
