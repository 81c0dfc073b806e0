package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"gorm.io/gorm"
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// MediaStats is the response body of the per-media statistics endpoint.
// Distribution always carries all five buckets, zero-filled.
type MediaStats struct {
	MediaID      string         `json:"media_id"`
	MediaTitle   string         `json:"media_title"`
	TotalRatings int            `json:"total_ratings"`
	Average      float64        `json:"average_rating"`
	Distribution map[string]int `json:"rating_distribution"`
}

func (s *RatingService) Create(userID string, in validation.RatingCreateInput) (*models.Rating, error) {
	var media models.MediaContent
	err := s.db.First(&media, "media_id = ?", in.MediaID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.Rating
	err = s.db.Where("media_id = ? AND user_id = ?", in.MediaID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateRating
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := models.Rating{
		MediaID: in.MediaID,
		UserID:  userID,
		Score:   *in.Score,
	}
	if in.Comment != nil {
		rating.Comment = *in.Comment
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("user_id = ?", userID).
			UpdateColumn("rating_count", gorm.Expr("rating_count + 1")).Error
	})
	if err != nil {
		// Two requests can race past the explicit check above; the composite
		// unique index decides the loser at commit time.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	return s.Get(rating.RatingID)
}

func (s *RatingService) List(q validation.RatingListQuery) ([]models.Rating, Pagination, error) {
	query := s.db.Model(&models.Rating{})

	if q.MediaID != "" {
		query = query.Where("media_id = ?", q.MediaID)
	}
	if q.UserID != "" {
		query = query.Where("user_id = ?", q.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var items []models.Rating
	err := query.
		Order("created_at desc").
		Offset((q.Page - 1) * q.PerPage).
		Limit(q.PerPage).
		Preload("User").
		Preload("Media").
		Find(&items).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, paginate(q.Page, q.PerPage, total), nil
}

func (s *RatingService) Get(ratingID string) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.Preload("User").Preload("Media").First(&rating, "rating_id = ?", ratingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) Update(ratingID, callerID string, in validation.RatingUpdateInput) (*models.Rating, error) {
	var rating models.Rating
	if err := s.db.First(&rating, "rating_id = ?", ratingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rating.UserID != callerID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if in.Score != nil {
		updates["score"] = *in.Score
	}
	if in.Comment != nil {
		updates["comment"] = *in.Comment
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&rating).Updates(updates).Error
	}); err != nil {
		return nil, err
	}

	return s.Get(ratingID)
}

func (s *RatingService) Delete(ratingID, callerID string) error {
	var rating models.Rating
	if err := s.db.First(&rating, "rating_id = ?", ratingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rating.UserID != callerID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Rating{}, "rating_id = ?", ratingID).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("user_id = ?", callerID).
			UpdateColumn("rating_count", gorm.Expr("rating_count - 1")).Error
	})
}

func (s *RatingService) Stats(mediaID string) (*MediaStats, error) {
	var media models.MediaContent
	if err := s.db.First(&media, "media_id = ?", mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var ratings []models.Rating
	if err := s.db.Where("media_id = ?", mediaID).Find(&ratings).Error; err != nil {
		return nil, err
	}

	stats := &MediaStats{
		MediaID:      mediaID,
		MediaTitle:   media.Title,
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}

	if len(ratings) == 0 {
		return stats, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
		stats.Distribution[fmt.Sprint(r.Score)]++
	}
	stats.TotalRatings = len(ratings)
	avg := float64(sum) / float64(len(ratings))
	stats.Average = math.Round(avg*100) / 100

	return stats, nil
}
