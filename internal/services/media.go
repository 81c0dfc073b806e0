package services

import (
	"errors"
	"math"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"gorm.io/gorm"
)

type MediaService struct {
	db *gorm.DB
}

func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{db: db}
}

func (s *MediaService) Create(userID string, in validation.MediaCreateInput) (*models.MediaContent, error) {
	media := models.MediaContent{
		Title:      in.Title,
		Category:   in.Category,
		ContentURL: in.ContentURL,
		UserID:     userID,
	}
	if in.Description != nil {
		media.Description = *in.Description
	}
	if in.ThumbnailURL != nil {
		media.ThumbnailURL = *in.ThumbnailURL
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&media).Error
	}); err != nil {
		return nil, err
	}

	if err := s.db.Preload("Creator").First(&media, "media_id = ?", media.MediaID).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (s *MediaService) List(q validation.MediaListQuery) ([]models.MediaContent, Pagination, error) {
	query := s.db.Model(&models.MediaContent{})

	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.CreatorID != "" {
		query = query.Where("user_id = ?", q.CreatorID)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var items []models.MediaContent
	err := query.
		Order(q.SortBy + " " + q.Order).
		Offset((q.Page - 1) * q.PerPage).
		Limit(q.PerPage).
		Preload("Creator").
		Preload("Ratings").
		Find(&items).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, paginate(q.Page, q.PerPage, total), nil
}

func (s *MediaService) Get(mediaID string) (*models.MediaContent, error) {
	var media models.MediaContent
	err := s.db.Preload("Creator").Preload("Ratings").First(&media, "media_id = ?", mediaID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

// Update applies a partial update. Absence is checked before ownership, so a
// request for a missing entry gets a 404 even from a non-owner.
func (s *MediaService) Update(mediaID, callerID string, in validation.MediaUpdateInput) (*models.MediaContent, error) {
	var media models.MediaContent
	if err := s.db.First(&media, "media_id = ?", mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if media.UserID != callerID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.ThumbnailURL != nil {
		updates["thumbnail_url"] = *in.ThumbnailURL
	}
	if in.ContentURL != nil {
		updates["content_url"] = *in.ContentURL
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&media).Updates(updates).Error
	}); err != nil {
		return nil, err
	}

	return s.Get(mediaID)
}

// Delete removes the entry and its ratings in one transaction, ratings first.
func (s *MediaService) Delete(mediaID, callerID string) error {
	var media models.MediaContent
	if err := s.db.First(&media, "media_id = ?", mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if media.UserID != callerID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Each doomed rating belongs to a distinct user (unique index), so
		// every rater's denormalized counter drops by exactly one.
		raters := tx.Model(&models.Rating{}).Select("user_id").Where("media_id = ?", mediaID)
		if err := tx.Model(&models.User{}).Where("user_id IN (?)", raters).
			UpdateColumn("rating_count", gorm.Expr("rating_count - 1")).Error; err != nil {
			return err
		}
		if err := tx.Where("media_id = ?", mediaID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MediaContent{}, "media_id = ?", mediaID).Error
	})
}

// RatingStats computes the aggregate block embedded in media responses.
// An unrated entry reports zero, never null.
func RatingStats(ratings []models.Rating) (int, float64) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(ratings))
	return len(ratings), math.Round(avg*100) / 100
}
