package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionKind is the closed set of supported question types. Every
// kind-dependent decision in the codebase goes through an exhaustive
// switch so that adding a kind surfaces each unhandled site.
type QuestionKind string

const (
	KindShortText      QuestionKind = "short_text"
	KindLongText       QuestionKind = "long_text"
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindCheckbox       QuestionKind = "checkbox"
	KindDate           QuestionKind = "date"
	KindNumber         QuestionKind = "number"
	KindDropdown       QuestionKind = "dropdown"
)

// Kinds lists every supported question kind in declaration order.
var Kinds = []QuestionKind{
	KindShortText,
	KindLongText,
	KindMultipleChoice,
	KindCheckbox,
	KindDate,
	KindNumber,
	KindDropdown,
}

// Valid reports whether k is one of the supported kinds.
func (k QuestionKind) Valid() bool {
	switch k {
	case KindShortText, KindLongText, KindMultipleChoice, KindCheckbox, KindDate, KindNumber, KindDropdown:
		return true
	}
	return false
}

// RequiresOptions reports whether the kind must carry a choice list.
func (k QuestionKind) RequiresOptions() bool {
	switch k {
	case KindMultipleChoice, KindCheckbox, KindDropdown:
		return true
	case KindShortText, KindLongText, KindDate, KindNumber:
		return false
	}
	return false
}

// MultiValued reports whether answers to this kind populate the
// multi-value slot instead of the scalar slot.
func (k QuestionKind) MultiValued() bool {
	return k == KindCheckbox
}

// Question is a single prompt within a form. Its ID is assigned at
// construction and is the only correlation key answers use; it never
// changes with display order. Kind is immutable after creation.
type Question struct {
	ID       uuid.UUID    `json:"id"`
	FormID   uuid.UUID    `json:"form_id"`
	Text     string       `json:"text"`
	Kind     QuestionKind `json:"kind"`
	Required bool         `json:"is_required"`
	OrderNum int          `json:"order_number"`
	Options  []string     `json:"options,omitempty"`
}

// NewQuestion validates and normalizes one question definition. The
// field argument names the question in error messages (e.g. "questions[2]").
func NewQuestion(text string, kind QuestionKind, required bool, options []string, field string) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, newValidationError(CodeEmptyText, field, "question text cannot be empty")
	}
	if !kind.Valid() {
		return nil, newValidationError(CodeKindMismatch, field,
			fmt.Sprintf("unsupported question kind %q, expected one of %s", kind, kindList()))
	}

	opts := normalizeOptions(options)
	if kind.RequiresOptions() {
		if len(opts) == 0 {
			return nil, newValidationError(CodeMissingOptions, field,
				fmt.Sprintf("%s questions must define at least one option", kind))
		}
	} else {
		// Non-choice kinds never carry options.
		opts = nil
	}

	return &Question{
		ID:       uuid.New(),
		Text:     text,
		Kind:     kind,
		Required: required,
		Options:  opts,
	}, nil
}

// kindList renders the supported kinds for error messages.
func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// normalizeOptions trims each entry and drops the empties, preserving order.
func normalizeOptions(options []string) []string {
	if len(options) == 0 {
		return nil
	}
	out := make([]string, 0, len(options))
	for _, o := range options {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// checkScalar validates a scalar answer value against the question's kind.
// Called with an already-trimmed, non-empty value.
func (q *Question) checkScalar(value string) error {
	switch q.Kind {
	case KindShortText, KindLongText, KindMultipleChoice, KindDropdown:
		return nil
	case KindNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return newValidationError(CodeKindMismatch, q.ID.String(),
				fmt.Sprintf("answer to %q must be numeric", q.Text))
		}
		return nil
	case KindDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return newValidationError(CodeKindMismatch, q.ID.String(),
				fmt.Sprintf("answer to %q must be a date (YYYY-MM-DD)", q.Text))
		}
		return nil
	case KindCheckbox:
		return newValidationError(CodeKindMismatch, q.ID.String(),
			fmt.Sprintf("question %q takes a list of values, not a single value", q.Text))
	}
	return newValidationError(CodeKindMismatch, q.ID.String(),
		fmt.Sprintf("unsupported question kind %q", q.Kind))
}

// checkMulti validates a multi-value answer against the question's kind.
func (q *Question) checkMulti() error {
	if q.Kind.MultiValued() {
		return nil
	}
	return newValidationError(CodeKindMismatch, q.ID.String(),
		fmt.Sprintf("question %q takes a single value, not a list", q.Text))
}
