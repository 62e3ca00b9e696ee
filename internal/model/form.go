package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form is a named, ordered set of questions owned by one creator. Forms
// are append-only: once created they are never edited or deleted, which
// is what makes the stored question order authoritative for every read
// path.
type Form struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	AllowAnon   bool      `json:"allow_anon"`
	CreatedAt   time.Time `json:"created_at"`
}

// FormWithQuestions is a form joined with its questions in stored order.
type FormWithQuestions struct {
	Form
	Questions []Question `json:"questions"`
}

// FormSummary is the listing shape for the public directory and "my forms".
type FormSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	IsPublic      bool      `json:"is_public"`
	AllowAnon     bool      `json:"allow_anon"`
	CreatorID     uuid.UUID `json:"creator_id"`
	CreatorName   string    `json:"creator_name"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionInput is one question definition as supplied by the creator.
type QuestionInput struct {
	Text     string   `json:"text" binding:"required"`
	Kind     string   `json:"kind" binding:"required"`
	Required bool     `json:"is_required"`
	Options  []string `json:"options"`
}

// CreateFormRequest is the payload for creating a form.
type CreateFormRequest struct {
	Title       string          `json:"title" binding:"required,max=300"`
	Description string          `json:"description" binding:"max=2000"`
	IsPublic    bool            `json:"is_public"`
	AllowAnon   bool            `json:"allow_anonymous"`
	Questions   []QuestionInput `json:"questions" binding:"dive"`
}

// BuildForm validates the whole form aggregate and assigns ordinal
// positions 1..N in the supplied question order. The first failing
// question aborts the build; nothing partial is ever returned.
func BuildForm(creatorID uuid.UUID, title, description string, isPublic, allowAnon bool, questions []QuestionInput) (*FormWithQuestions, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, newValidationError(CodeEmptyTitle, "title", "form title cannot be empty")
	}
	if len(questions) == 0 {
		return nil, newValidationError(CodeNoQuestions, "questions", "a form needs at least one question")
	}

	formID := uuid.New()
	built := make([]Question, 0, len(questions))
	for i, in := range questions {
		q, err := NewQuestion(in.Text, QuestionKind(in.Kind), in.Required, in.Options, questionField(i))
		if err != nil {
			return nil, err
		}
		q.FormID = formID
		q.OrderNum = i + 1
		built = append(built, *q)
	}

	return &FormWithQuestions{
		Form: Form{
			ID:          formID,
			CreatorID:   creatorID,
			Title:       title,
			Description: strings.TrimSpace(description),
			IsPublic:    isPublic,
			AllowAnon:   allowAnon,
		},
		Questions: built,
	}, nil
}

func questionField(idx int) string {
	return "questions[" + strconv.Itoa(idx+1) + "]"
}
