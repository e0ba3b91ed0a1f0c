package routes

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/dental-care-api/internal/handlers"
	"github.com/harentsoaR/dental-care-api/internal/middleware"
)

// NewRouter builds the engine with global middleware and every route.
func NewRouter(h *handlers.Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	Register(r, h)
	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}

// Register wires each route with the gate it requires.
func Register(r *gin.Engine, h *handlers.Handler) {
	authenticate := middleware.Authenticate(h.Tokens)
	requireAdmin := middleware.RequireAdmin(h.Repos.Users)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Dental care server is running")
	})
	r.GET("/healthz", healthz(h))

	r.POST("/jwt", h.IssueToken)

	users := r.Group("/users", authenticate, requireAdmin)
	{
		users.GET("", h.ListUsers)
		users.GET("/admin/:email", h.CheckAdmin)
		users.PATCH("", h.UpsertUser)
		users.PATCH("/:id", h.PromoteUser)
	}

	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.POST("", authenticate, requireAdmin, h.CreateDoctor)
		doctors.DELETE("/:id", authenticate, requireAdmin, h.DeleteDoctor)
	}

	appointments := r.Group("/appointments", authenticate)
	{
		appointments.GET("/:email", h.GetAppointmentsByEmail)
		appointments.PATCH("/:id", h.ReviewAppointment)
		appointments.POST("", h.CreateAppointment)
	}

	r.POST("/create-payment-intent", authenticate, h.CreatePaymentIntent)
	r.POST("/payments", authenticate, h.RecordPayment)
}

func healthz(h *handlers.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Repos.Ping == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Repos.Ping(ctx); err != nil {
			log.Printf("[%s] health check failed: %v", middleware.RequestIDFrom(c), err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
