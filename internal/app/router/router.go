// Package router wires the HTTP routes.
package router

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "gamereview_backend/internal/feature/auth/transport/handler"
	gameshandler "gamereview_backend/internal/feature/gamecatalog/transport/handler"
	reviewhandler "gamereview_backend/internal/feature/review/transport/handler"
	platformhandler "gamereview_backend/internal/platform/http/handler"
	"gamereview_backend/internal/shared/response"
)

// NewRouter builds the gin engine with the public and protected route groups.
// authRequired is the identity-resolving middleware applied to every
// protected route.
func NewRouter(authHandler *authhandler.AuthHandler, reviews *reviewhandler.ReviewHandler,
	games *gameshandler.GamesHandler, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Credentialed CORS needs an exact origin, not a wildcard.
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	r.GET("/api/health", platformhandler.Health)
	r.HEAD("/api/health", platformhandler.Health)
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	// Protected routes: the auth gate runs before every handler below
	auth := r.Group("/api")
	auth.Use(authRequired)
	{
		auth.GET("/auth/profile", authHandler.GetProfile)
		auth.PUT("/auth/profile", authHandler.UpdateProfile)
		auth.PUT("/auth/password", authHandler.ChangePassword)
		auth.POST("/auth/logout", authHandler.Logout)

		auth.POST("/reviews", reviews.Create)
		auth.GET("/reviews", reviews.ListOwn)
		auth.GET("/reviews/all", reviews.ListAll)
		auth.GET("/reviews/:id", reviews.GetByID)
		auth.PUT("/reviews/:id", reviews.Update)
		auth.DELETE("/reviews/:id", reviews.Delete)

		auth.GET("/games/popular", games.Popular)
		auth.GET("/games/search", games.Search)
		auth.GET("/games/upcoming", games.Upcoming)
		auth.GET("/games/:id", games.Details)
	}

	// Unknown routes get the same envelope as everything else
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	return r
}
