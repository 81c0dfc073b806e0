package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rfcardoso07/content-sharing-platform/internal/config"
	"github.com/rfcardoso07/content-sharing-platform/internal/models"
	"github.com/rfcardoso07/content-sharing-platform/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.MediaContent{}, &models.Rating{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:        "test-secret-12345678901234567890123456789012",
		JWTExpirySeconds: 3600,
	}

	auth := services.NewAuthService(db, cfg.JWTSecret, time.Hour)
	media := services.NewMediaService(db)
	ratings := services.NewRatingService(db)

	return NewHandler(cfg, logger, db, auth, media, ratings), db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

// registerUser creates an account through the API and returns its id and token.
func registerUser(t *testing.T, r *gin.Engine, username string) (string, string) {
	t.Helper()
	w := doJSON(r, "POST", "/accounts", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: status %d body %s", username, w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	user := resp["user"].(map[string]any)
	return user["user_id"].(string), resp["access_token"].(string)
}

func createMedia(t *testing.T, r *gin.Engine, token, title, category string) string {
	t.Helper()
	w := doJSON(r, "POST", "/media", map[string]string{
		"title":       title,
		"category":    category,
		"content_url": "https://cdn.example.com/content.zip",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create media %q: status %d body %s", title, w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	return resp["content"].(map[string]any)["media_id"].(string)
}
