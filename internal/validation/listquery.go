package validation

import (
	"github.com/rfcardoso07/content-sharing-platform/internal/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// mediaSortFields is the whitelist for the media list sort_by parameter.
// Anything outside it silently falls back to created_at.
var mediaSortFields = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"category":   "category",
}

type MediaListQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Category  string `form:"category"`
	CreatorID string `form:"creator_id"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	Order     string `form:"order"`
}

func (q *MediaListQuery) Validate() Errors {
	errs := Errors{}
	if q.Category != "" && !models.ValidCategory(q.Category) {
		errs["category"] = categoryMsg()
	}
	if q.Order != "" && q.Order != "asc" && q.Order != "desc" {
		errs["order"] = "Must be one of: asc, desc."
	}
	if len(errs) > 0 {
		return errs
	}
	q.normalize()
	return nil
}

func (q *MediaListQuery) normalize() {
	clampPage(&q.Page, &q.PerPage)
	if col, ok := mediaSortFields[q.SortBy]; ok {
		q.SortBy = col
	} else {
		q.SortBy = "created_at"
	}
	if q.Order == "" {
		q.Order = "desc"
	}
}

type RatingListQuery struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	MediaID string `form:"media_id"`
	UserID  string `form:"user_id"`
}

func (q *RatingListQuery) Validate() Errors {
	clampPage(&q.Page, &q.PerPage)
	return nil
}

func clampPage(page, perPage *int) {
	if *page < 1 {
		*page = 1
	}
	if *perPage < 1 {
		*perPage = DefaultPageSize
	}
	if *perPage > MaxPageSize {
		*perPage = MaxPageSize
	}
}
