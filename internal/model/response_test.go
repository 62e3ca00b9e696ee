package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testForm builds a form with one question per common kind for
// submission tests.
func testForm(t *testing.T, allowAnon bool) *FormWithQuestions {
	t.Helper()
	form, err := BuildForm(uuid.New(), "Event Feedback", "", true, allowAnon, []QuestionInput{
		{Text: "Your name", Kind: "short_text", Required: true},
		{Text: "Rating", Kind: "multiple_choice", Required: true, Options: []string{"1", "2", "3"}},
		{Text: "Topics of interest", Kind: "checkbox", Options: []string{"Go", "SQL", "Redis"}},
		{Text: "Guests", Kind: "number"},
		{Text: "Attendance date", Kind: "date"},
	})
	require.NoError(t, err)
	return form
}

func scalar(v string) *string { return &v }

func TestBuildResponse_AnswersFollowFormOrder(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	// Inputs deliberately listed back to front.
	inputs := []AnswerInput{
		{QuestionID: form.Questions[4].ID, Value: scalar("2026-05-01")},
		{QuestionID: form.Questions[2].ID, Values: []string{"Go", "Redis"}},
		{QuestionID: form.Questions[1].ID, Value: scalar("3")},
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
	}

	resp, err := BuildResponse(form, inputs, false, &submitter)
	require.NoError(t, err)
	require.Len(t, resp.Answers, 4)

	assert.Equal(t, form.Questions[0].ID, resp.Answers[0].QuestionID)
	assert.Equal(t, form.Questions[1].ID, resp.Answers[1].QuestionID)
	assert.Equal(t, form.Questions[2].ID, resp.Answers[2].QuestionID)
	assert.Equal(t, form.Questions[4].ID, resp.Answers[3].QuestionID)

	require.NotNil(t, resp.SubmitterID)
	assert.Equal(t, submitter, *resp.SubmitterID)
	for _, a := range resp.Answers {
		assert.Equal(t, resp.ID, a.ResponseID)
	}
}

func TestBuildResponse_AnonymousOnFormThatForbidsIt(t *testing.T) {
	form := testForm(t, false)

	_, err := BuildResponse(form, nil, true, nil)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeAnonymousNotAllowed, ve.Code)
}

func TestBuildResponse_AnonymousDiscardsSubmitterIdentity(t *testing.T) {
	form := testForm(t, true)
	submitter := uuid.New()

	resp, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("2")},
	}, true, &submitter)
	require.NoError(t, err)

	assert.True(t, resp.IsAnon)
	assert.Nil(t, resp.SubmitterID)
}

func TestBuildResponse_RejectsUnknownQuestion(t *testing.T) {
	form := testForm(t, false)
	stray := uuid.New()
	submitter := uuid.New()

	_, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("1")},
		{QuestionID: stray, Value: scalar("x")},
	}, false, &submitter)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnknownQuestion, ve.Code)
	assert.Equal(t, stray.String(), ve.Field)
}

func TestBuildResponse_MissingRequiredAnswerNamesQuestion(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	// Rating (required) left out entirely.
	_, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
	}, false, &submitter)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMissingRequiredAnswer, ve.Code)
	assert.Equal(t, form.Questions[1].ID.String(), ve.Field)
}

func TestBuildResponse_WhitespaceAnswerCountsAsMissing(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	_, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("   ")},
		{QuestionID: form.Questions[1].ID, Value: scalar("1")},
	}, false, &submitter)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMissingRequiredAnswer, ve.Code)
	assert.Equal(t, form.Questions[0].ID.String(), ve.Field)
}

func TestBuildResponse_OptionalUnansweredProducesNoRow(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	resp, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("1")},
	}, false, &submitter)
	require.NoError(t, err)

	require.Len(t, resp.Answers, 2)
	for _, a := range resp.Answers {
		assert.NotEqual(t, form.Questions[2].ID, a.QuestionID)
	}
}

func TestBuildResponse_CheckboxPopulatesMultiSlot(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	resp, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("2")},
		{QuestionID: form.Questions[2].ID, Values: []string{" Go ", "SQL"}},
	}, false, &submitter)
	require.NoError(t, err)

	cb := resp.Answers[2]
	assert.Nil(t, cb.ScalarValue)
	assert.Equal(t, []string{"Go", "SQL"}, cb.MultiValue)
}

func TestBuildResponse_ScalarOnCheckboxIsKindMismatch(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	_, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("2")},
		{QuestionID: form.Questions[2].ID, Value: scalar("Go")},
	}, false, &submitter)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKindMismatch, ve.Code)
}

func TestBuildResponse_ListOnScalarQuestionIsKindMismatch(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	_, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Values: []string{"Ada", "Grace"}},
		{QuestionID: form.Questions[1].ID, Value: scalar("2")},
	}, false, &submitter)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKindMismatch, ve.Code)
	assert.Equal(t, form.Questions[0].ID.String(), ve.Field)
}

func TestBuildResponse_BothSlotsIsKindMismatch(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	_, err := BuildResponse(form, []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("2")},
		{QuestionID: form.Questions[2].ID, Value: scalar("Go"), Values: []string{"SQL"}},
	}, false, &submitter)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKindMismatch, ve.Code)
}

func TestBuildResponse_NumberAndDateValuesAreChecked(t *testing.T) {
	form := testForm(t, false)
	submitter := uuid.New()

	base := []AnswerInput{
		{QuestionID: form.Questions[0].ID, Value: scalar("Ada")},
		{QuestionID: form.Questions[1].ID, Value: scalar("2")},
	}

	_, err := BuildResponse(form, append(base,
		AnswerInput{QuestionID: form.Questions[3].ID, Value: scalar("twelve")},
	), false, &submitter)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKindMismatch, ve.Code)

	_, err = BuildResponse(form, append(base,
		AnswerInput{QuestionID: form.Questions[4].ID, Value: scalar("May 1st")},
	), false, &submitter)
	ve, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeKindMismatch, ve.Code)

	resp, err := BuildResponse(form, append(base,
		AnswerInput{QuestionID: form.Questions[3].ID, Value: scalar("12.5")},
		AnswerInput{QuestionID: form.Questions[4].ID, Value: scalar("2026-05-01")},
	), false, &submitter)
	require.NoError(t, err)
	assert.Len(t, resp.Answers, 4)
}
