package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/jorguzz-fer/aquinaotem/internal/models"
)

// minTextLen is the minimum length of text_original after trimming.
const minTextLen = 10

// Validation sentinels. Handlers map these to user-facing messages; the
// sentinel itself stays internal.
var (
	ErrMissingText     = errors.New("text_original required")
	ErrTextTooShort    = errors.New("text_original too short")
	ErrInvalidCategory = errors.New("category not allowed")
)

// Normalized is the validated payload handed to persistence: text and
// comment trimmed, empty optional fields collapsed to nil.
type Normalized struct {
	TextOriginal string
	Category     *string
	Comment      *string
}

// Submission checks structural and content constraints on a raw request and
// returns the normalized payload. Pure function, no I/O.
//
// An absent or non-string text_original is the same failure: the field as
// specified was not supplied. The allowed-set check applies only to
// caller-supplied categories; labels inferred later by the categorizer are
// not routed through here.
func Submission(req models.SubmissionRequest) (Normalized, error) {
	raw, ok := req.TextOriginal.(string)
	if !ok {
		return Normalized{}, ErrMissingText
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return Normalized{}, ErrMissingText
	}
	if utf8.RuneCountInString(text) < minTextLen {
		return Normalized{}, ErrTextTooShort
	}

	out := Normalized{TextOriginal: text}

	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category != "" {
			if !allowedCategory(category) {
				return Normalized{}, errors.Wrap(ErrInvalidCategory, category)
			}
			out.Category = &category
		}
	}

	if req.Comment != nil {
		comment := strings.TrimSpace(*req.Comment)
		if comment != "" {
			out.Comment = &comment
		}
	}

	return out, nil
}

func allowedCategory(category string) bool {
	for _, c := range models.AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}
