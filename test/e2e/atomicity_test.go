//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/repository"
)

// Writes that span multiple rows must land entirely or not at all. These
// tests drive the repositories straight against the database and force
// a failure on a later row to verify the earlier rows roll back.

func atomicityPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// seedUser inserts a user row directly so the tests stand alone.
func seedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	email := fmt.Sprintf("atomicity_%s@example.com", id)

	if _, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, 'x')`,
		id, email); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO user_info (id, email) VALUES ($1, $2)`,
		id, email); err != nil {
		t.Fatalf("seed user_info: %v", err)
	}
	return id
}

func seedForm(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID) *model.FormWithQuestions {
	t.Helper()
	forms := repository.NewFormRepository(pool)

	form, err := model.BuildForm(creatorID, "Atomicity fixture", "", false, true, []model.QuestionInput{
		{Text: "Q1", Kind: "short_text", Required: true},
		{Text: "Q2", Kind: "short_text"},
	})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	if err := forms.Create(context.Background(), form); err != nil {
		t.Fatalf("create fixture form: %v", err)
	}
	return form
}

func TestFormCreateRollsBackOnQuestionFailure(t *testing.T) {
	ctx := context.Background()
	pool := atomicityPool(t)
	creatorID := seedUser(t, pool)
	forms := repository.NewFormRepository(pool)

	form, err := model.BuildForm(creatorID, "Half-written form", "", false, false, []model.QuestionInput{
		{Text: "First", Kind: "short_text"},
		{Text: "Second", Kind: "short_text"},
	})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	// Reusing the first question's id makes the second insert hit the
	// primary key after the form row has already been written.
	form.Questions[1].ID = form.Questions[0].ID

	if err := forms.Create(ctx, form); err == nil {
		t.Fatal("expected Create to fail on the duplicate question id")
	}

	if _, err := forms.GetByID(ctx, form.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("form row survived a failed create: got err %v", err)
	}
}

func TestResponseSubmitRollsBackOnAnswerFailure(t *testing.T) {
	ctx := context.Background()
	pool := atomicityPool(t)
	userID := seedUser(t, pool)
	form := seedForm(t, pool, userID)
	responses := repository.NewResponseRepository(pool)

	v1, v2 := "first", "second"
	resp := &model.Response{
		ID:          uuid.New(),
		FormID:      form.ID,
		SubmitterID: &userID,
		Answers: []model.Answer{
			{QuestionID: form.Questions[0].ID, ScalarValue: &v1},
			// Same question twice hits the (response_id, question_id)
			// primary key after the response row is written.
			{QuestionID: form.Questions[0].ID, ScalarValue: &v2},
		},
	}
	for i := range resp.Answers {
		resp.Answers[i].ResponseID = resp.ID
	}

	if err := responses.Submit(ctx, resp); err == nil {
		t.Fatal("expected Submit to fail on the duplicate answer")
	}

	var n int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM responses WHERE id = $1`, resp.ID).Scan(&n); err != nil {
		t.Fatalf("count responses: %v", err)
	}
	if n != 0 {
		t.Fatalf("response row survived a failed submit: %d rows", n)
	}
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM answers WHERE response_id = $1`, resp.ID).Scan(&n); err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if n != 0 {
		t.Fatalf("answer rows survived a failed submit: %d rows", n)
	}
}
