package handlers

import (
	"github.com/rfcardoso07/content-sharing-platform/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	r.Use(h.CORSMiddleware())
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.POST("/accounts", h.Register)
	r.POST("/sessions", h.Login)
	r.GET("/media", h.ListMedia)
	r.GET("/media/categories", h.ListCategories)
	r.GET("/media/:id", h.GetMedia)
	r.GET("/ratings", h.ListRatings)
	r.GET("/ratings/:id", h.GetRating)
	r.GET("/ratings/media/:id/stats", h.MediaRatingStats)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/accounts/me", h.CurrentUser)
		authorized.DELETE("/accounts/me", h.DeleteAccount)
		authorized.POST("/media", h.CreateMedia)
		authorized.PUT("/media/:id", h.UpdateMedia)
		authorized.DELETE("/media/:id", h.DeleteMedia)
		authorized.POST("/ratings", h.CreateRating)
		authorized.PUT("/ratings/:id", h.UpdateRating)
		authorized.DELETE("/ratings/:id", h.DeleteRating)
	}

	return r
}
