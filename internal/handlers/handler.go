package handlers

import (
	"log/slog"

	"github.com/rfcardoso07/content-sharing-platform/internal/config"
	"github.com/rfcardoso07/content-sharing-platform/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg           config.Config
	logger        *slog.Logger
	db            *gorm.DB
	authService   *services.AuthService
	mediaService  *services.MediaService
	ratingService *services.RatingService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	authService *services.AuthService,
	mediaService *services.MediaService,
	ratingService *services.RatingService,
) *Handler {
	return &Handler{
		cfg:           cfg,
		logger:        logger,
		db:            db,
		authService:   authService,
		mediaService:  mediaService,
		ratingService: ratingService,
	}
}
