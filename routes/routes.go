package routes

import (
	"net/http"
	"strings"
	"time"

	"requesto/config"
	"requesto/handlers"
	"requesto/middleware"
	"requesto/models"
	"requesto/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers endpoints that need no authentication:
// identity verification, the public directory, and booking creation (which
// is deliberately best-effort even without an account reference).
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/auth/verify", hb.Auth.Verify)
		api.POST("/book-service", hb.Booking.BookService)
		api.GET("/professionals", hb.Professionals.List)
	}
}

// RegisterUserRoutes registers endpoints for authenticated clients.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	api.Use(middleware.Authenticate(hb.UserRepo))
	{
		api.GET("/bookings/:userId", hb.Booking.UserBookings)
	}
}

// RegisterProviderRoutes registers the provider-owned profile and booking
// endpoints. Admins pass the role gate too, for support operations.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	api.Use(middleware.Authenticate(hb.UserRepo))
	api.Use(middleware.RequireRoles(models.RoleProvider, models.RoleAdmin))
	{
		api.GET("/profile/:userId", hb.Provider.GetProfile)
		api.POST("/profile", hb.Provider.CreateProfile)
		api.PATCH("/profile/:userId", hb.Provider.UpdateProfile)
		api.GET("/bookings/:userId", hb.Provider.ProviderBookings)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.Authenticate(hb.UserRepo))
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/stats", hb.Admin.Stats)
		admin.PATCH("/users/:userId/role", hb.Admin.UpdateRole)
		admin.PATCH("/users/:userId/ban", hb.Admin.ToggleBan)
	}

	// Direct professional creation is admin-only as well.
	create := r.Group("/api/professionals")
	create.Use(middleware.Authenticate(hb.UserRepo))
	create.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		create.POST("", hb.Professionals.AdminCreate)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := strings.Split(config.AppConfig.AllowedOrigins, ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
