package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating holds one user's score for one media entry. The composite unique
// index is the authority for the one-rating-per-(media,user) invariant; the
// application-level check in RatingService is only a friendlier first line.
type Rating struct {
	RatingID  string    `gorm:"primaryKey;size:36" json:"rating_id"`
	MediaID   string    `gorm:"not null;size:36;index;uniqueIndex:uniq_user_media_rating" json:"media_id"`
	UserID    string    `gorm:"not null;size:36;index;uniqueIndex:uniq_user_media_rating" json:"user_id"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Media *MediaContent `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.RatingID == "" {
		r.RatingID = uuid.NewString()
	}
	return nil
}
