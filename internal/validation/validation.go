package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/rfcardoso07/content-sharing-platform/internal/models"
)

// Errors maps a field name to the reason it was rejected. The "_schema" key
// carries violations that span the whole payload (e.g. empty updates).
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

const (
	msgRequired   = "Missing data for required field."
	msgEmail      = "Not a valid email address."
	msgURL        = "Not a valid URL."
	msgScoreRange = "Must be between 1 and 5."
	msgEmptyBody  = "At least one field must be provided for update."
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func lengthMsg(min, max int) string {
	if min <= 0 {
		return fmt.Sprintf("Longer than maximum length %d.", max)
	}
	return fmt.Sprintf("Length must be between %d and %d.", min, max)
}

func categoryMsg() string {
	return "Must be one of: " + strings.Join(models.Categories, ", ") + "."
}

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in RegisterInput) Validate() Errors {
	errs := Errors{}
	switch {
	case in.Username == "":
		errs["username"] = msgRequired
	case len(in.Username) < 3 || len(in.Username) > 50:
		errs["username"] = lengthMsg(3, 50)
	}
	switch {
	case in.Email == "":
		errs["email"] = msgRequired
	case len(in.Email) > 255:
		errs["email"] = lengthMsg(0, 255)
	case !validEmail(in.Email):
		errs["email"] = msgEmail
	}
	switch {
	case in.Password == "":
		errs["password"] = msgRequired
	case len(in.Password) < 6:
		errs["password"] = "Shorter than minimum length 6."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() Errors {
	errs := Errors{}
	if in.Username == "" {
		errs["username"] = msgRequired
	}
	if in.Password == "" {
		errs["password"] = msgRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type MediaCreateInput struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Category     string  `json:"category"`
	ThumbnailURL *string `json:"thumbnail_url"`
	ContentURL   string  `json:"content_url"`
}

func (in MediaCreateInput) Validate() Errors {
	errs := Errors{}
	switch {
	case in.Title == "":
		errs["title"] = msgRequired
	case len(in.Title) > 255:
		errs["title"] = lengthMsg(1, 255)
	}
	switch {
	case in.Category == "":
		errs["category"] = msgRequired
	case !models.ValidCategory(in.Category):
		errs["category"] = categoryMsg()
	}
	if in.ThumbnailURL != nil {
		checkURLField(errs, "thumbnail_url", *in.ThumbnailURL)
	}
	if in.ContentURL == "" {
		errs["content_url"] = msgRequired
	} else {
		checkURLField(errs, "content_url", in.ContentURL)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type MediaUpdateInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	ThumbnailURL *string `json:"thumbnail_url"`
	ContentURL   *string `json:"content_url"`
}

func (in MediaUpdateInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Category == nil &&
		in.ThumbnailURL == nil && in.ContentURL == nil
}

func (in MediaUpdateInput) Validate() Errors {
	if in.Empty() {
		return Errors{"_schema": msgEmptyBody}
	}
	errs := Errors{}
	if in.Title != nil && (*in.Title == "" || len(*in.Title) > 255) {
		errs["title"] = lengthMsg(1, 255)
	}
	if in.Category != nil && !models.ValidCategory(*in.Category) {
		errs["category"] = categoryMsg()
	}
	if in.ThumbnailURL != nil {
		checkURLField(errs, "thumbnail_url", *in.ThumbnailURL)
	}
	if in.ContentURL != nil {
		checkURLField(errs, "content_url", *in.ContentURL)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type RatingCreateInput struct {
	MediaID string  `json:"media_id"`
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

func (in RatingCreateInput) Validate() Errors {
	errs := Errors{}
	if in.MediaID == "" {
		errs["media_id"] = msgRequired
	}
	switch {
	case in.Score == nil:
		errs["score"] = msgRequired
	case *in.Score < 1 || *in.Score > 5:
		errs["score"] = msgScoreRange
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type RatingUpdateInput struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

func (in RatingUpdateInput) Empty() bool {
	return in.Score == nil && in.Comment == nil
}

func (in RatingUpdateInput) Validate() Errors {
	if in.Empty() {
		return Errors{"_schema": msgEmptyBody}
	}
	if in.Score != nil && (*in.Score < 1 || *in.Score > 5) {
		return Errors{"score": msgScoreRange}
	}
	return nil
}

func checkURLField(errs Errors, field, value string) {
	if len(value) > 512 {
		errs[field] = lengthMsg(0, 512)
		return
	}
	if !validURL(value) {
		errs[field] = msgURL
	}
}
