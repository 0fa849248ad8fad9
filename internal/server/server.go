package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"classbook/internal/booking"
	"classbook/internal/class"
	"classbook/internal/config"
)

type Server struct {
	router *gin.Engine
	config *config.Config
	http   *http.Server
}

func New(cfg *config.Config, classService class.Service, bookingService booking.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	classHandler := class.NewHandler(classService)
	bookingHandler := booking.NewHandler(bookingService)

	router.GET("/", Welcome)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		v1.GET("/classes", classHandler.ListClasses)
		v1.POST("/book", bookingHandler.CreateBooking)
		v1.GET("/bookings", bookingHandler.ListBookings)
		v1.GET("/health", Health)
	}

	admin := router.Group("/api/v1/admin")
	{
		admin.POST("/classes", classHandler.CreateClass)
	}

	return &Server{
		router: router,
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
