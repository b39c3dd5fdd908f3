package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nexconsult/brdocs-api/internal/api/handlers"
	"github.com/nexconsult/brdocs-api/internal/api/middleware"
	"github.com/nexconsult/brdocs-api/internal/config"
	"github.com/nexconsult/brdocs-api/internal/services"
)

// Server represents the HTTP server
type Server struct {
	Router   *gin.Engine
	config   *config.Config
	logger   *logrus.Logger
	services *services.Container
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	// Global middleware
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())
	s.Router.Use(middleware.RequestID())

	rateLimiter := middleware.NewRateLimiter(s.config.Security.RateLimit)
	s.Router.Use(rateLimiter.Middleware())

	// Health check endpoints
	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	// Swagger documentation
	if s.config.Server.Environment != "production" {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	// API v1 routes
	v1 := s.Router.Group("/api/v1")
	{
		cpfHandler := handlers.NewCPFHandler(s.logger)
		cpf := v1.Group("/cpf")
		{
			cpf.POST("/generate", cpfHandler.Generate)
			cpf.GET("/:cpf", cpfHandler.Validate)
		}

		cnpjHandler := handlers.NewCNPJHandler(s.services.LookupService, s.logger)
		cnpj := v1.Group("/cnpj")
		{
			cnpj.POST("/generate", cnpjHandler.Generate)
			cnpj.GET("/:cnpj", cnpjHandler.Validate)
			cnpj.GET("/:cnpj/company", cnpjHandler.Company)
		}

		cepHandler := handlers.NewCEPHandler(s.services.LookupService, s.logger)
		cep := v1.Group("/cep")
		{
			cep.GET("/:cep", cepHandler.Validate)
			cep.GET("/:cep/address", cepHandler.Address)
		}

		phoneHandler := handlers.NewPhoneHandler(s.logger)
		phone := v1.Group("/phone")
		{
			phone.POST("/generate", phoneHandler.Generate)
			phone.GET("/:phone", phoneHandler.Validate)
		}

		pixHandler := handlers.NewPixHandler(s.logger)
		pix := v1.Group("/pix")
		{
			pix.POST("/validate", pixHandler.Validate)
			pix.POST("/batch", pixHandler.Batch)
			pix.POST("/mask", pixHandler.Mask)
			pix.POST("/equal", pixHandler.Equal)
			pix.GET("/random", pixHandler.Random)
		}

		plateHandler := handlers.NewPlateHandler(s.logger)
		plate := v1.Group("/plate")
		{
			plate.POST("/generate", plateHandler.Generate)
			plate.GET("/:plate", plateHandler.Validate)
		}

		referenceHandler := handlers.NewReferenceHandler(s.services.LookupService, s.logger)
		v1.GET("/banks", referenceHandler.Banks)
		v1.GET("/banks/:code", referenceHandler.Bank)
		v1.GET("/ddd/:ddd", referenceHandler.AreaCode)
		v1.GET("/holidays/next", referenceHandler.NextHoliday)
		v1.GET("/holidays/check", referenceHandler.CheckHoliday)
		v1.GET("/holidays/:year", referenceHandler.Holidays)
		v1.GET("/states", referenceHandler.States)
		v1.GET("/states/:uf/cities", referenceHandler.Cities)
		v1.GET("/fipe/:vehicle/brands", referenceHandler.FIPEBrands)
		v1.GET("/fipe/:vehicle/price/:brand/:model/:year", referenceHandler.FIPEPrice)

		metricsHandler := handlers.NewMetricsHandler(s.services, s.logger)
		v1.GET("/metrics", metricsHandler.GetMetrics)

		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/:key", cacheHandler.Delete)
		}
	}

	// 404 handler
	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Not Found",
			"message":   "The requested resource was not found",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
		})
	})

	// 405 handler
	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":     "Method Not Allowed",
			"message":   "The requested method is not allowed for this resource",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
		})
	})
}
