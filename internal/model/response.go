package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response is one complete submission against a form. SubmitterID is
// nil for anonymous submissions; an anonymous response carries no
// submitter identity anywhere in its stored data.
type Response struct {
	ID          uuid.UUID  `json:"id"`
	FormID      uuid.UUID  `json:"form_id"`
	SubmitterID *uuid.UUID `json:"submitter_id,omitempty"`
	IsAnon      bool       `json:"is_anon"`
	CreatedAt   time.Time  `json:"created_at"`
	Answers     []Answer   `json:"answers"`
}

// Answer is the value given for one question within one response.
// Exactly one of the two slots is populated: ScalarValue for every
// scalar kind, MultiValue for checkbox questions.
type Answer struct {
	ResponseID  uuid.UUID `json:"response_id"`
	QuestionID  uuid.UUID `json:"question_id"`
	ScalarValue *string   `json:"scalar_value,omitempty"`
	MultiValue  []string  `json:"multi_value,omitempty"`
}

// AnswerInput is one raw answer as supplied by the submitter, keyed by
// question id. Value and Values are mutually exclusive.
type AnswerInput struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Value      *string   `json:"value"`
	Values     []string  `json:"values"`
}

// SubmitResponseRequest is the payload for submitting a response.
type SubmitResponseRequest struct {
	IsAnon  bool          `json:"is_anonymous"`
	Answers []AnswerInput `json:"answers" binding:"dive"`
}

// BuildResponse validates one submission against its parent form and
// produces the response aggregate. Construction is purely structural:
// a failed build must never reach storage.
//
// submitterID identifies the authenticated submitter and is discarded
// when the submission is anonymous.
func BuildResponse(form *FormWithQuestions, inputs []AnswerInput, isAnon bool, submitterID *uuid.UUID) (*Response, error) {
	if isAnon && !form.AllowAnon {
		return nil, newValidationError(CodeAnonymousNotAllowed, "is_anonymous",
			"this form does not accept anonymous responses")
	}

	byQuestion := make(map[uuid.UUID]AnswerInput, len(inputs))
	for _, in := range inputs {
		byQuestion[in.QuestionID] = in
	}

	// Reject inputs that reference questions not on this form before
	// checking anything else; a stray id is never silently dropped.
	known := make(map[uuid.UUID]bool, len(form.Questions))
	for _, q := range form.Questions {
		known[q.ID] = true
	}
	for _, in := range inputs {
		if !known[in.QuestionID] {
			return nil, newValidationError(CodeUnknownQuestion, in.QuestionID.String(),
				"answer references a question that is not part of this form")
		}
	}

	responseID := uuid.New()
	answers := make([]Answer, 0, len(inputs))

	// Walk questions in form order so required checks and the stored
	// answer sequence both follow the creator's ordering.
	for i := range form.Questions {
		q := &form.Questions[i]
		in, answered := byQuestion[q.ID]

		answer, ok, err := buildAnswer(q, in, answered)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Absence of an optional answer is valid and distinct from
			// an empty string; neither produces an Answer row.
			continue
		}
		answer.ResponseID = responseID
		answers = append(answers, answer)
	}

	resp := &Response{
		ID:      responseID,
		FormID:  form.ID,
		IsAnon:  isAnon,
		Answers: answers,
	}
	if !isAnon {
		resp.SubmitterID = submitterID
	}
	return resp, nil
}

// buildAnswer normalizes and validates a single raw input against its
// question. ok=false means the question was left unanswered, which is
// only acceptable for optional questions.
func buildAnswer(q *Question, in AnswerInput, answered bool) (Answer, bool, error) {
	var (
		scalar string
		multi  []string
	)
	if answered {
		if in.Value != nil {
			scalar = strings.TrimSpace(*in.Value)
		}
		multi = normalizeOptions(in.Values)
	}

	hasScalar := scalar != ""
	hasMulti := len(multi) > 0

	if !hasScalar && !hasMulti {
		if q.Required {
			return Answer{}, false, newValidationError(CodeMissingRequiredAnswer, q.ID.String(),
				fmt.Sprintf("question %q requires an answer", q.Text))
		}
		return Answer{}, false, nil
	}

	if hasScalar && hasMulti {
		return Answer{}, false, newValidationError(CodeKindMismatch, q.ID.String(),
			fmt.Sprintf("question %q received both a single value and a list", q.Text))
	}

	if hasMulti {
		if err := q.checkMulti(); err != nil {
			return Answer{}, false, err
		}
		return Answer{QuestionID: q.ID, MultiValue: multi}, true, nil
	}

	if err := q.checkScalar(scalar); err != nil {
		return Answer{}, false, err
	}
	return Answer{QuestionID: q.ID, ScalarValue: &scalar}, true, nil
}

// AnswerDetail is an answer joined with its question for display:
// (question text, question kind, value) in form question order.
type AnswerDetail struct {
	QuestionID   uuid.UUID    `json:"question_id"`
	QuestionText string       `json:"question_text"`
	QuestionKind QuestionKind `json:"question_kind"`
	ScalarValue  *string      `json:"scalar_value,omitempty"`
	MultiValue   []string     `json:"multi_value,omitempty"`
}

// EnrichedResponse is the read-side shape for response listings: the
// response header plus submitter display name and answer details.
type EnrichedResponse struct {
	ID            uuid.UUID      `json:"id"`
	FormID        uuid.UUID      `json:"form_id"`
	FormTitle     string         `json:"form_title"`
	IsAnon        bool           `json:"is_anon"`
	SubmitterName string         `json:"submitter_name"`
	CreatorName   string         `json:"creator_name,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Answers       []AnswerDetail `json:"answers"`
}
