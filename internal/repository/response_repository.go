package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formhive/formhive-backend/internal/model"
)

// ResponseRepository handles response and answer data access, including
// the read-side joins that enrich a response with its form, questions
// and submitter for display.
type ResponseRepository struct {
	pool *pgxpool.Pool
}

// NewResponseRepository creates a new ResponseRepository.
func NewResponseRepository(pool *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{pool: pool}
}

// Submit persists the response header and all answer rows in a single
// transaction. A response with a partial answer set is never visible
// to readers.
func (r *ResponseRepository) Submit(ctx context.Context, resp *model.Response) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO responses (id, form_id, submitter_id, is_anon)
			 VALUES ($1, $2, $3, $4)
			 RETURNING created_at`,
			resp.ID, resp.FormID, resp.SubmitterID, resp.IsAnon,
		).Scan(&resp.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert response: %w", err)
		}

		for i := range resp.Answers {
			a := &resp.Answers[i]
			multi, err := marshalOptions(a.MultiValue)
			if err != nil {
				return fmt.Errorf("encode multi value: %w", err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO answers (response_id, question_id, scalar_value, multi_value)
				 VALUES ($1, $2, $3, $4)`,
				a.ResponseID, a.QuestionID, a.ScalarValue, multi,
			); err != nil {
				return fmt.Errorf("insert answer for question %s: %w", a.QuestionID, err)
			}
		}
		return nil
	})
}

// enrichedRow is one row of the response/answer join before grouping.
type enrichedRow struct {
	respID        uuid.UUID
	formID        uuid.UUID
	formTitle     string
	isAnon        bool
	createdAt     time.Time
	subFirst      string
	subLast       string
	subEmail      string
	creatorFirst  string
	creatorLast   string
	creatorEmail  string
	questionID    *uuid.UUID
	questionText  *string
	questionKind  *string
	scalarValue   *string
	multiValueRaw []byte
}

const enrichedSelect = `
	SELECT r.id, r.form_id, f.title, r.is_anon, r.created_at,
	       COALESCE(su.first_name, ''), COALESCE(su.last_name, ''), COALESCE(su.email, ''),
	       COALESCE(cu.first_name, ''), COALESCE(cu.last_name, ''), COALESCE(cu.email, ''),
	       q.id, q.text, q.kind, a.scalar_value, a.multi_value
	FROM responses r
	JOIN forms f ON f.id = r.form_id
	LEFT JOIN user_info su ON su.id = r.submitter_id
	LEFT JOIN user_info cu ON cu.id = f.creator_id
	LEFT JOIN answers a ON a.response_id = r.id
	LEFT JOIN questions q ON q.id = a.question_id`

// ListByForm retrieves one page of responses to a form, enriched with
// the submitter display name and (question text, kind, value) triples
// in the parent form's question order. Paging applies to response
// headers, never to the answer rows within one. The second return is
// the form's total response count.
func (r *ResponseRepository) ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]model.EnrichedResponse, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM responses WHERE form_id = $1`, formID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		enrichedSelect+`
		WHERE r.id IN (
			SELECT id FROM responses
			WHERE form_id = $1
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		)
		ORDER BY r.created_at DESC, r.id, q.order_number`, formID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	responses, err := groupEnriched(rows)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// ListByUser retrieves every non-anonymous response one user has
// submitted, joined back to the form and its creator for display.
// Anonymous submissions store no submitter identity, so by design they
// cannot appear here.
func (r *ResponseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EnrichedResponse, error) {
	rows, err := r.pool.Query(ctx,
		enrichedSelect+`
		WHERE r.submitter_id = $1
		ORDER BY r.created_at DESC, r.id, q.order_number`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return groupEnriched(rows)
}

// groupEnriched folds the flat join rows into one EnrichedResponse per
// response header, preserving the ORDER BY question order.
func groupEnriched(rows pgx.Rows) ([]model.EnrichedResponse, error) {
	out := []model.EnrichedResponse{}
	for rows.Next() {
		var row enrichedRow
		if err := rows.Scan(
			&row.respID, &row.formID, &row.formTitle, &row.isAnon, &row.createdAt,
			&row.subFirst, &row.subLast, &row.subEmail,
			&row.creatorFirst, &row.creatorLast, &row.creatorEmail,
			&row.questionID, &row.questionText, &row.questionKind,
			&row.scalarValue, &row.multiValueRaw,
		); err != nil {
			return nil, err
		}

		last := len(out) - 1
		if last < 0 || out[last].ID != row.respID {
			out = append(out, model.EnrichedResponse{
				ID:            row.respID,
				FormID:        row.formID,
				FormTitle:     row.formTitle,
				IsAnon:        row.isAnon,
				SubmitterName: submitterName(row),
				CreatorName:   model.DisplayName(row.creatorFirst, row.creatorLast, row.creatorEmail, model.UnknownCreatorName),
				CreatedAt:     row.createdAt,
				Answers:       []model.AnswerDetail{},
			})
			last++
		}

		if row.questionID == nil {
			continue // response with no answer rows
		}
		multi, err := unmarshalOptions(row.multiValueRaw)
		if err != nil {
			return nil, err
		}
		out[last].Answers = append(out[last].Answers, model.AnswerDetail{
			QuestionID:   *row.questionID,
			QuestionText: *row.questionText,
			QuestionKind: model.QuestionKind(*row.questionKind),
			ScalarValue:  row.scalarValue,
			MultiValue:   multi,
		})
	}
	return out, rows.Err()
}

// submitterName applies the display-name fallback chain, substituting
// the anonymous sentinel whenever the response is flagged anonymous.
func submitterName(row enrichedRow) string {
	if row.isAnon {
		return model.AnonymousUserName
	}
	return model.DisplayName(row.subFirst, row.subLast, row.subEmail, model.UnknownUserName)
}
