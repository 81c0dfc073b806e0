package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/internal/validation"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	auth := NewAuthService(db, "test-secret", time.Hour)
	user, _, err := auth.Register(username, username+"@example.com", "secret1")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestMedia(t *testing.T, s *MediaService, userID, title string) *models.MediaContent {
	t.Helper()
	media, err := s.Create(userID, validation.MediaCreateInput{
		Title:      title,
		Category:   "game",
		ContentURL: "https://cdn.example.com/content.zip",
	})
	if err != nil {
		t.Fatalf("failed to create test media: %v", err)
	}
	return media
}

func ratingCreateInput(mediaID string, score *int, comment *string) validation.RatingCreateInput {
	return validation.RatingCreateInput{MediaID: mediaID, Score: score, Comment: comment}
}

func TestMediaCreate(t *testing.T) {
	db := setupTestDB(t)
	s := NewMediaService(db)
	user := createTestUser(t, db, "creator")

	desc := "a fine game"
	media, err := s.Create(user.UserID, validation.MediaCreateInput{
		Title:       "My Game",
		Description: &desc,
		Category:    "game",
		ContentURL:  "https://cdn.example.com/game.zip",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, media.MediaID)
	assert.Equal(t, user.UserID, media.UserID)
	assert.Equal(t, "a fine game", media.Description)
	assert.NotNil(t, media.Creator)
	assert.Equal(t, "creator", media.Creator.Username)
	assert.Empty(t, media.Ratings)
}

func TestMediaList(t *testing.T) {
	db := setupTestDB(t)
	s := NewMediaService(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	titles := []struct {
		title    string
		category string
		owner    string
	}{
		{"Space Shooter", "game", alice.UserID},
		{"Cat Video", "video", alice.UserID},
		{"Sunset Painting", "artwork", bob.UserID},
		{"Jazz Track", "music", bob.UserID},
	}
	for _, it := range titles {
		_, err := s.Create(it.owner, validation.MediaCreateInput{
			Title:      it.title,
			Category:   it.category,
			ContentURL: "https://cdn.example.com/x",
		})
		assert.NoError(t, err)
	}

	t.Run("Unfiltered list", func(t *testing.T) {
		q := validation.MediaListQuery{}
		assert.Nil(t, q.Validate())
		items, pg, err := s.List(q)

		assert.NoError(t, err)
		assert.Len(t, items, 4)
		assert.Equal(t, int64(4), pg.TotalItems)
		assert.Equal(t, 1, pg.TotalPages)
	})

	t.Run("Category filter", func(t *testing.T) {
		q := validation.MediaListQuery{Category: "game"}
		assert.Nil(t, q.Validate())
		items, _, err := s.List(q)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Space Shooter", items[0].Title)
	})

	t.Run("Creator filter", func(t *testing.T) {
		q := validation.MediaListQuery{CreatorID: bob.UserID}
		assert.Nil(t, q.Validate())
		items, _, err := s.List(q)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("Case-insensitive search over title and description", func(t *testing.T) {
		q := validation.MediaListQuery{Search: "SUNSET"}
		assert.Nil(t, q.Validate())
		items, _, err := s.List(q)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Sunset Painting", items[0].Title)
	})

	t.Run("Ascending title sort", func(t *testing.T) {
		q := validation.MediaListQuery{SortBy: "title", Order: "asc"}
		assert.Nil(t, q.Validate())
		items, _, err := s.List(q)

		assert.NoError(t, err)
		assert.Equal(t, "Cat Video", items[0].Title)
	})

	t.Run("Pagination splits pages", func(t *testing.T) {
		q := validation.MediaListQuery{Page: 2, PerPage: 3}
		assert.Nil(t, q.Validate())
		items, pg, err := s.List(q)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 2, pg.TotalPages)
		assert.Equal(t, int64(4), pg.TotalItems)
	})
}

func TestMediaGet(t *testing.T) {
	db := setupTestDB(t)
	s := NewMediaService(db)
	ratings := NewRatingService(db)
	owner := createTestUser(t, db, "owner")
	entry := createTestMedia(t, s, owner.UserID, "Rated Game")

	t.Run("Missing entry", func(t *testing.T) {
		_, err := s.Get("no-such-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Stats are zero for unrated entries", func(t *testing.T) {
		got, err := s.Get(entry.MediaID)
		assert.NoError(t, err)

		total, avg := RatingStats(got.Ratings)
		assert.Equal(t, 0, total)
		assert.Equal(t, 0.0, avg)
	})

	t.Run("Stats aggregate scores", func(t *testing.T) {
		for i, score := range []int{5, 5, 4} {
			rater := createTestUser(t, db, fmt.Sprintf("rater%d", i))
			sc := score
			_, err := ratings.Create(rater.UserID, ratingCreateInput(entry.MediaID, &sc, nil))
			assert.NoError(t, err)
		}

		got, err := s.Get(entry.MediaID)
		assert.NoError(t, err)

		total, avg := RatingStats(got.Ratings)
		assert.Equal(t, 3, total)
		assert.Equal(t, 4.67, avg)
	})
}

func TestMediaUpdate(t *testing.T) {
	db := setupTestDB(t)
	s := NewMediaService(db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")
	entry := createTestMedia(t, s, owner.UserID, "Original Title")

	t.Run("Missing entry beats ownership check", func(t *testing.T) {
		title := "x"
		_, err := s.Update("no-such-id", intruder.UserID, validation.MediaUpdateInput{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Non-owner forbidden and entry unchanged", func(t *testing.T) {
		title := "Hijacked"
		_, err := s.Update(entry.MediaID, intruder.UserID, validation.MediaUpdateInput{Title: &title})
		assert.ErrorIs(t, err, ErrForbidden)

		got, _ := s.Get(entry.MediaID)
		assert.Equal(t, "Original Title", got.Title)
	})

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		title := "New Title"
		updated, err := s.Update(entry.MediaID, owner.UserID, validation.MediaUpdateInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "game", updated.Category)
	})
}

func TestMediaDelete(t *testing.T) {
	db := setupTestDB(t)
	s := NewMediaService(db)
	ratings := NewRatingService(db)
	owner := createTestUser(t, db, "owner")
	rater := createTestUser(t, db, "rater")
	entry := createTestMedia(t, s, owner.UserID, "Doomed Game")

	score := 3
	_, err := ratings.Create(rater.UserID, ratingCreateInput(entry.MediaID, &score, nil))
	assert.NoError(t, err)

	t.Run("Non-owner forbidden", func(t *testing.T) {
		assert.ErrorIs(t, s.Delete(entry.MediaID, rater.UserID), ErrForbidden)
	})

	t.Run("Delete cascades to ratings", func(t *testing.T) {
		assert.NoError(t, s.Delete(entry.MediaID, owner.UserID))

		var ratingCount int64
		db.Model(&models.Rating{}).Where("media_id = ?", entry.MediaID).Count(&ratingCount)
		assert.Zero(t, ratingCount)

		_, err := s.Get(entry.MediaID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete decrements rater counters", func(t *testing.T) {
		var got models.User
		assert.NoError(t, db.First(&got, "user_id = ?", rater.UserID).Error)
		assert.Zero(t, got.RatingCount, "the rater's counter must drop with the cascaded rating")
	})
}
