// Package catalog defines the canonical template metadata records and the
// format-hint table used to derive routing prompts from them.
package catalog

import (
	"errors"
	"fmt"
)

// Format identifies a template's supported aspect-ratio/layout class.
type Format string

const (
	FormatLandscape Format = "landscape"
	FormatPortrait  Format = "portrait"
	FormatSquare    Format = "square"
)

// Sentinel errors for required catalog fields.
var (
	// ErrMissingTemplateID is returned for a record without a template_id.
	ErrMissingTemplateID = errors.New("missing template_id")

	// ErrMissingTemplateName is returned for a record without a template_name.
	ErrMissingTemplateName = errors.New("missing template_name")
)

// Template is one canonical catalog entry.
// db_id is opaque and passed through to derived datasets unchanged.
type Template struct {
	TemplateID       string   `json:"template_id"`
	TemplateName     string   `json:"template_name"`
	SupportedFormats []Format `json:"supported_formats,omitempty"`
	UserPhrases      []string `json:"user_phrases,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	DBID             any      `json:"db_id,omitempty"`
}

// Formats returns the record's supported formats, defaulting to landscape
// when none are declared.
func (t Template) Formats() []Format {
	if len(t.SupportedFormats) == 0 {
		return []Format{FormatLandscape}
	}
	return t.SupportedFormats
}

// Phrases returns the phrase source for prompt expansion: user_phrases when
// present, otherwise keywords. A record with neither returns nil and
// contributes no prompts.
func (t Template) Phrases() []string {
	if len(t.UserPhrases) > 0 {
		return t.UserPhrases
	}
	return t.Keywords
}

// CheckRequired verifies the fields every non-skippable record must carry.
func (t Template) CheckRequired() error {
	if t.TemplateID == "" {
		return fmt.Errorf("template record: %w", ErrMissingTemplateID)
	}
	if t.TemplateName == "" {
		return fmt.Errorf("template record %q: %w", t.TemplateID, ErrMissingTemplateName)
	}
	return nil
}
