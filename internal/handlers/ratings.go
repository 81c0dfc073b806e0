package handlers

import (
	"net/http"

	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateRating(c *gin.Context) {
	var req validation.RatingCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	rating, err := h.ratingService.Create(currentUserID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rating created successfully",
		"rating":  ratingResponse(rating),
	})
}

func (h *Handler) ListRatings(c *gin.Context) {
	var q validation.RatingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := q.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	items, pagination, err := h.ratingService.List(q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ratings := make([]gin.H, 0, len(items))
	for i := range items {
		ratings = append(ratings, ratingResponse(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":    ratings,
		"pagination": pagination,
	})
}

func (h *Handler) GetRating(c *gin.Context) {
	rating, err := h.ratingService.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": ratingResponse(rating)})
}

func (h *Handler) UpdateRating(c *gin.Context) {
	var req validation.RatingUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	rating, err := h.ratingService.Update(c.Param("id"), currentUserID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating updated successfully",
		"rating":  ratingResponse(rating),
	})
}

func (h *Handler) DeleteRating(c *gin.Context) {
	if err := h.ratingService.Delete(c.Param("id"), currentUserID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

func (h *Handler) MediaRatingStats(c *gin.Context) {
	stats, err := h.ratingService.Stats(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"media_id":    stats.MediaID,
		"media_title": stats.MediaTitle,
		"stats": gin.H{
			"total_ratings":       stats.TotalRatings,
			"average_rating":      stats.Average,
			"rating_distribution": stats.Distribution,
		},
	})
}
