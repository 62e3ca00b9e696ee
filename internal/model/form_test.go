package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForm_AssignsOrderInGivenSequence(t *testing.T) {
	creator := uuid.New()
	inputs := []QuestionInput{
		{Text: "Name", Kind: "short_text", Required: true},
		{Text: "Satisfaction", Kind: "multiple_choice", Required: true, Options: []string{"Good", "Bad"}},
		{Text: "Comments", Kind: "long_text"},
		{Text: "Visit date", Kind: "date"},
	}

	form, err := BuildForm(creator, "Visitor Survey", "", true, false, inputs)
	require.NoError(t, err)
	require.Len(t, form.Questions, 4)

	for i, q := range form.Questions {
		assert.Equal(t, i+1, q.OrderNum)
		assert.Equal(t, inputs[i].Text, q.Text)
		assert.Equal(t, form.ID, q.FormID)
		assert.NotEqual(t, uuid.Nil, q.ID)
	}
	assert.Equal(t, creator, form.CreatorID)
}

func TestBuildForm_RejectsBlankTitle(t *testing.T) {
	_, err := BuildForm(uuid.New(), "   ", "", false, false, []QuestionInput{
		{Text: "Q", Kind: "short_text"},
	})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEmptyTitle, ve.Code)
	assert.Equal(t, "title", ve.Field)
}

func TestBuildForm_RejectsZeroQuestions(t *testing.T) {
	_, err := BuildForm(uuid.New(), "Empty", "", false, false, nil)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNoQuestions, ve.Code)
}

func TestBuildForm_RejectsChoiceQuestionWithoutUsableOptions(t *testing.T) {
	// Whitespace-only options normalize away to nothing.
	_, err := BuildForm(uuid.New(), "Survey", "", false, false, []QuestionInput{
		{Text: "First", Kind: "short_text"},
		{Text: "Pick one", Kind: "multiple_choice", Options: []string{"  ", ""}},
	})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMissingOptions, ve.Code)
	assert.Equal(t, "questions[2]", ve.Field)
}

func TestBuildForm_RejectsBlankQuestionText(t *testing.T) {
	_, err := BuildForm(uuid.New(), "Survey", "", false, false, []QuestionInput{
		{Text: " \t ", Kind: "short_text"},
	})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEmptyText, ve.Code)
	assert.Equal(t, "questions[1]", ve.Field)
}

func TestBuildForm_RejectsUnknownKind(t *testing.T) {
	_, err := BuildForm(uuid.New(), "Survey", "", false, false, []QuestionInput{
		{Text: "Q", Kind: "slider"},
	})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKindMismatch, ve.Code)
	for _, kind := range Kinds {
		assert.Contains(t, ve.Message, string(kind))
	}
}

func TestBuildForm_NormalizesOptionsAndTrimsText(t *testing.T) {
	form, err := BuildForm(uuid.New(), "  Survey  ", "  about things  ", false, false, []QuestionInput{
		{Text: "  Pick  ", Kind: "dropdown", Options: []string{" A ", "", "B"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Survey", form.Title)
	assert.Equal(t, "about things", form.Description)
	assert.Equal(t, "Pick", form.Questions[0].Text)
	assert.Equal(t, []string{"A", "B"}, form.Questions[0].Options)
}

func TestBuildForm_DropsOptionsOnNonChoiceKinds(t *testing.T) {
	form, err := BuildForm(uuid.New(), "Survey", "", false, false, []QuestionInput{
		{Text: "Your age", Kind: "number", Options: []string{"ignored"}},
	})
	require.NoError(t, err)
	assert.Nil(t, form.Questions[0].Options)
}
