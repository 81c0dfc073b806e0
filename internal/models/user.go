package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	UserID       string     `gorm:"primaryKey;size:36" json:"user_id"`
	Username     string     `gorm:"unique;not null;size:50;index" json:"username"`
	Email        string     `gorm:"unique;not null;size:255;index" json:"email"`
	PasswordHash string     `gorm:"not null;size:255" json:"-"`
	RatingCount  int        `gorm:"not null;default:0" json:"rating_count"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	MediaContent []MediaContent `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"media_content,omitempty"`
	Ratings      []Rating       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// ToDict serializes the user for API responses. Email is only included for
// the account owner's own views.
func (u *User) ToDict(includeEmail bool) map[string]any {
	data := map[string]any{
		"user_id":      u.UserID,
		"username":     u.Username,
		"rating_count": u.RatingCount,
		"last_login":   u.LastLogin,
		"created_at":   u.CreatedAt,
	}
	if includeEmail {
		data["email"] = u.Email
	}
	return data
}

// Summary is the embedded creator/rater block inside media and rating responses.
func (u *User) Summary() map[string]any {
	return map[string]any{
		"user_id":  u.UserID,
		"username": u.Username,
	}
}
