package handlers

import (
	"net/http"

	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req validation.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	user, token, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User created successfully",
		"user":         user.ToDict(true),
		"access_token": token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req validation.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondError(c, errs)
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         user.ToDict(true),
		"access_token": token,
	})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.authService.GetUser(currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToDict(true)})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.authService.DeleteAccount(currentUserID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
