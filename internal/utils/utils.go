package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/whisperlink-dev/whisperlink/internal/errors"
)

// strict policy: whispers are plain text, any markup is stripped
var sanitizePolicy = bluemonday.StrictPolicy()

// Sanitize strips HTML from user-submitted text before it is moderated or stored.
func Sanitize(text string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(text))
}

// NewPostId returns a fresh opaque post identifier.
// The prefix is cosmetic; ids must not be assumed to encode ordering.
func NewPostId() string {
	return "post-" + uuid.NewString()
}

// NewResponseId returns a fresh opaque response identifier.
func NewResponseId() string {
	return "resp-" + uuid.NewString()
}

type PostTextValidator struct {
	MaxLength int
}

func (v *PostTextValidator) Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return &errors.ErrorWithStatusCode{Message: "Your whisper cannot be empty", StatusCode: 400}
	}
	if utf8.RuneCountInString(text) > v.MaxLength {
		return &errors.ErrorWithStatusCode{Message: "Your whisper is too long", StatusCode: 400}
	}
	return nil
}

type ResponseTextValidator struct {
	MaxLength int
}

func (v *ResponseTextValidator) Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return &errors.ErrorWithStatusCode{Message: "Response cannot be empty", StatusCode: 400}
	}
	if utf8.RuneCountInString(text) > v.MaxLength {
		return &errors.ErrorWithStatusCode{Message: "Response is too long", StatusCode: 400}
	}
	return nil
}
