package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categories is the closed set of legal media categories. Values are matched
// exactly at the validation boundary; nothing is coerced.
var Categories = []string{"game", "video", "artwork", "music"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type MediaContent struct {
	MediaID      string    `gorm:"primaryKey;size:36" json:"media_id"`
	Title        string    `gorm:"not null;size:255" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"not null;size:20;index" json:"category"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnail_url"`
	ContentURL   string    `gorm:"not null;size:512" json:"content_url"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       string    `gorm:"not null;size:36;index" json:"user_id"`

	Creator *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	Ratings []Rating `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

func (MediaContent) TableName() string {
	return "media_content"
}

func (m *MediaContent) BeforeCreate(tx *gorm.DB) error {
	if m.MediaID == "" {
		m.MediaID = uuid.NewString()
	}
	return nil
}

// Summary is the embedded media block inside rating responses.
func (m *MediaContent) Summary() map[string]any {
	return map[string]any{
		"media_id": m.MediaID,
		"title":    m.Title,
		"category": m.Category,
	}
}
