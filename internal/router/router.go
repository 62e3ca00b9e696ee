package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/formhive/formhive-backend/internal/config"
	"github.com/formhive/formhive-backend/internal/handler"
	"github.com/formhive/formhive-backend/internal/middleware"
	"github.com/formhive/formhive-backend/internal/response"
	"github.com/formhive/formhive-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Form      *handler.FormHandler
	Response  *handler.ResponseHandler
	Dashboard *handler.DashboardHandler
	Template  *handler.TemplateHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireUserJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireUserJWT(authService), handlers.Auth.GetProfile)
		auth.PUT("/me", middleware.RequireUserJWT(authService), handlers.Auth.UpdateProfile)
	}

	// ─── 2. Forms Group (Optional Auth) ────────────────────────────────
	// Reads resolve visibility per caller; submission accepts anonymous
	// callers when the form allows it.
	forms := router.Group("/api/v1/forms")
	forms.Use(middleware.OptionalUserJWT(authService))
	{
		forms.GET("", handlers.Form.ListPublicForms)
		forms.GET("/:form_id", handlers.Form.GetForm)
		forms.POST("/:form_id/responses", handlers.Response.SubmitResponse)
	}

	// Authenticated form routes share the path prefix but require a
	// valid session.
	formsAuth := router.Group("/api/v1/forms")
	formsAuth.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSession(authService),
	)
	{
		formsAuth.POST("", handlers.Form.CreateForm)
		formsAuth.GET("/:form_id/responses", handlers.Response.ListFormResponses)
	}

	// ─── 3. My Group (JWT + Session) ───────────────────────────────────
	myAPI := router.Group("/api/v1/my")
	myAPI.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSession(authService),
	)
	{
		myAPI.GET("/forms", handlers.Form.ListMyForms)
		myAPI.GET("/responses", handlers.Response.ListMyResponses)
	}

	// ─── 4. Dashboard Group (JWT + Session) ────────────────────────────
	dashboardAPI := router.Group("/api/v1/dashboard")
	dashboardAPI.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSession(authService),
	)
	{
		dashboardAPI.GET("", handlers.Dashboard.GetDashboard)
		dashboardAPI.GET("/forms/:form_id/questions/:question_id/distribution", handlers.Dashboard.GetAnswerDistribution)
	}

	// ─── 5. Templates (Public) ─────────────────────────────────────────
	templates := router.Group("/api/v1/templates")
	{
		templates.GET("", handlers.Template.ListTemplates)
		templates.GET("/:slug", handlers.Template.GetTemplate)
	}

	return router
}
