package handlers

import (
	"errors"
	"net/http"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/internal/services"
	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors to HTTP responses. Anything outside
// the known taxonomy is a 500; mutating paths have already rolled back by the
// time an error reaches here.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "messages": verrs})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, services.ErrDuplicateIdentity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
	case errors.Is(err, services.ErrDuplicateRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already rated this content"})
	default:
		h.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func respondInvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

// currentUserID reads the caller id placed in the context by AuthRequired.
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func mediaResponse(m *models.MediaContent) gin.H {
	total, avg := services.RatingStats(m.Ratings)
	resp := gin.H{
		"media_id":      m.MediaID,
		"title":         m.Title,
		"description":   m.Description,
		"category":      m.Category,
		"thumbnail_url": m.ThumbnailURL,
		"content_url":   m.ContentURL,
		"created_at":    m.CreatedAt,
		"updated_at":    m.UpdatedAt,
		"user_id":       m.UserID,
		"stats": gin.H{
			"total_ratings":  total,
			"average_rating": avg,
		},
	}
	if m.Creator != nil {
		resp["creator"] = m.Creator.Summary()
	}
	return resp
}

func ratingResponse(r *models.Rating) gin.H {
	resp := gin.H{
		"rating_id":  r.RatingID,
		"media_id":   r.MediaID,
		"user_id":    r.UserID,
		"score":      r.Score,
		"comment":    r.Comment,
		"created_at": r.CreatedAt,
		"updated_at": r.UpdatedAt,
	}
	if r.User != nil {
		resp["user"] = r.User.Summary()
	}
	if r.Media != nil {
		resp["media"] = r.Media.Summary()
	}
	return resp
}
