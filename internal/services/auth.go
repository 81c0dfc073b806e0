package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthService owns account lifecycle and the stateless bearer-token contract:
// HS256-signed JWTs carrying the account id as subject, valid for a fixed
// window. Expiry is the only invalidation mechanism.
type AuthService struct {
	db     *gorm.DB
	secret string
	expiry time.Duration
}

func NewAuthService(db *gorm.DB, secret string, expiry time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, expiry: expiry}
}

func (s *AuthService) Register(username, email, password string) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, "", ErrDuplicateIdentity
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	// The unique indexes are the backstop for two concurrent registrations
	// with the same identity.
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrDuplicateIdentity
		}
		return nil, "", err
	}

	token, err := s.CreateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	// UpdateColumn so recording the login does not touch updated_at.
	if err := s.db.Model(&user).UpdateColumn("last_login", now).Error; err != nil {
		return nil, "", err
	}

	token, err := s.CreateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) GetUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteAccount removes the account and everything it owns: ratings left on
// the account's media by anyone, the account's own ratings, its media, then
// the account itself. Children go first so the cascade is explicit and atomic.
func (s *AuthService) DeleteAccount(userID string) error {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Other accounts lose their ratings on this account's media, so their
		// denormalized counters must come down with them. A rater may have
		// rated several of the doomed items, hence the grouped count.
		var raters []struct {
			UserID string
			N      int
		}
		doomed := tx.Model(&models.MediaContent{}).Select("media_id").Where("user_id = ?", userID)
		if err := tx.Model(&models.Rating{}).
			Select("user_id, COUNT(*) AS n").
			Where("media_id IN (?) AND user_id <> ?", doomed, userID).
			Group("user_id").
			Scan(&raters).Error; err != nil {
			return err
		}
		for _, r := range raters {
			if err := tx.Model(&models.User{}).Where("user_id = ?", r.UserID).
				UpdateColumn("rating_count", gorm.Expr("rating_count - ?", r.N)).Error; err != nil {
				return err
			}
		}

		mediaIDs := tx.Model(&models.MediaContent{}).Select("media_id").Where("user_id = ?", userID)
		if err := tx.Where("media_id IN (?)", mediaIDs).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.MediaContent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "user_id = ?", userID).Error
	})
}

// CreateToken issues a signed JWT with the account id as subject.
func (s *AuthService) CreateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseToken verifies signature and expiry and returns the account id.
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}
