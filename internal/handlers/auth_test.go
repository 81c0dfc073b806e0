package handlers

import (
	"net/http"
	"testing"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("Successful registration returns user and token", func(t *testing.T) {
		w := doJSON(r, "POST", "/accounts", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "secret1",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decodeBody(t, w)
		assert.NotEmpty(t, resp["access_token"])

		user := resp["user"].(map[string]any)
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, "alice@example.com", user["email"])
		assert.NotContains(t, user, "password")
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("Duplicate username", func(t *testing.T) {
		w := doJSON(r, "POST", "/accounts", map[string]string{
			"username": "alice",
			"email":    "second@example.com",
			"password": "secret1",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation failure carries field messages", func(t *testing.T) {
		w := doJSON(r, "POST", "/accounts", map[string]string{
			"username": "x",
			"email":    "not-an-email",
			"password": "123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, "Validation failed", resp["error"])

		messages := resp["messages"].(map[string]any)
		assert.Contains(t, messages, "username")
		assert.Contains(t, messages, "email")
		assert.Contains(t, messages, "password")
	})
}

func TestLoginHandler(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)
	registerUser(t, r, "alice")

	t.Run("Successful login", func(t *testing.T) {
		w := doJSON(r, "POST", "/sessions", map[string]string{
			"username": "alice",
			"password": "secret1",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.NotEmpty(t, resp["access_token"])
		assert.NotNil(t, resp["user"].(map[string]any)["last_login"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := doJSON(r, "POST", "/sessions", map[string]string{
			"username": "alice",
			"password": "wrong",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown user", func(t *testing.T) {
		w := doJSON(r, "POST", "/sessions", map[string]string{
			"username": "nobody",
			"password": "secret1",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCurrentUserHandler(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)
	userID, token := registerUser(t, r, "alice")

	t.Run("With token", func(t *testing.T) {
		w := doJSON(r, "GET", "/accounts/me", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)

		user := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, userID, user["user_id"])
		assert.Equal(t, "alice@example.com", user["email"])
	})

	t.Run("Without token", func(t *testing.T) {
		w := doJSON(r, "GET", "/accounts/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	_, ownerToken := registerUser(t, r, "owner")
	_, raterToken := registerUser(t, r, "rater")

	mediaID := createMedia(t, r, ownerToken, "Owned Game", "game")
	w := doJSON(r, "POST", "/ratings", map[string]any{"media_id": mediaID, "score": 5}, raterToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "DELETE", "/accounts/me", nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var mediaCount, ratingCount int64
	db.Model(&models.MediaContent{}).Count(&mediaCount)
	db.Model(&models.Rating{}).Count(&ratingCount)
	assert.Zero(t, mediaCount)
	assert.Zero(t, ratingCount)
}
