package handlers

import (
	"net/http"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateMedia(c *gin.Context) {
	var req validation.MediaCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	media, err := h.mediaService.Create(currentUserID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content created successfully",
		"content": mediaResponse(media),
	})
}

func (h *Handler) ListMedia(c *gin.Context) {
	var q validation.MediaListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := q.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	items, pagination, err := h.mediaService.List(q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	content := make([]gin.H, 0, len(items))
	for i := range items {
		content = append(content, mediaResponse(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"content":    content,
		"pagination": pagination,
	})
}

func (h *Handler) GetMedia(c *gin.Context) {
	media, err := h.mediaService.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": mediaResponse(media)})
}

func (h *Handler) UpdateMedia(c *gin.Context) {
	var req validation.MediaUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	media, err := h.mediaService.Update(c.Param("id"), currentUserID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"content": mediaResponse(media),
	})
}

func (h *Handler) DeleteMedia(c *gin.Context) {
	if err := h.mediaService.Delete(c.Param("id"), currentUserID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}
