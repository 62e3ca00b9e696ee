package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formhive/formhive-backend/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// FormRepository handles form and question data access. Forms are
// append-only: there is no update or delete path.
type FormRepository struct {
	pool *pgxpool.Pool
}

// NewFormRepository creates a new FormRepository.
func NewFormRepository(pool *pgxpool.Pool) *FormRepository {
	return &FormRepository{pool: pool}
}

// Create persists the form row and all its question rows in a single
// transaction. pgx.BeginFunc guarantees rollback on any error path, so
// a form with zero questions is never observable.
func (r *FormRepository) Create(ctx context.Context, form *model.FormWithQuestions) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO forms (id, creator_id, title, description, is_public, allow_anon)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING created_at`,
			form.ID, form.CreatorID, form.Title, form.Description, form.IsPublic, form.AllowAnon,
		).Scan(&form.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert form: %w", err)
		}

		for i := range form.Questions {
			q := &form.Questions[i]
			opts, err := marshalOptions(q.Options)
			if err != nil {
				return fmt.Errorf("encode options: %w", err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO questions (id, form_id, text, kind, is_required, order_number, options)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				q.ID, q.FormID, q.Text, q.Kind, q.Required, q.OrderNum, opts,
			); err != nil {
				return fmt.Errorf("insert question %d: %w", q.OrderNum, err)
			}
		}
		return nil
	})
}

// GetByID retrieves a form joined with its questions ordered by
// order_number. Questions are never returned out of stored order.
func (r *FormRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FormWithQuestions, error) {
	form := &model.FormWithQuestions{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, creator_id, title, description, is_public, allow_anon, created_at
		 FROM forms WHERE id = $1`, id,
	).Scan(&form.ID, &form.CreatorID, &form.Title, &form.Description,
		&form.IsPublic, &form.AllowAnon, &form.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, form_id, text, kind, is_required, order_number, options
		 FROM questions WHERE form_id = $1
		 ORDER BY order_number`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			q    model.Question
			opts []byte
		)
		if err := rows.Scan(&q.ID, &q.FormID, &q.Text, &q.Kind, &q.Required, &q.OrderNum, &opts); err != nil {
			return nil, err
		}
		if q.Options, err = unmarshalOptions(opts); err != nil {
			return nil, err
		}
		form.Questions = append(form.Questions, q)
	}
	return form, rows.Err()
}

// ListPublic retrieves one page of public form summaries, newest
// first, with the creator's profile joined for display-name
// resolution. The second return is the total public form count.
func (r *FormRepository) ListPublic(ctx context.Context, limit, offset int) ([]model.FormSummary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM forms WHERE is_public = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	summaries, err := r.listSummaries(ctx,
		`SELECT f.id, f.title, f.description, f.is_public, f.allow_anon, f.creator_id, f.created_at,
		        COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.email, ''),
		        (SELECT COUNT(*) FROM questions q WHERE q.form_id = f.id)
		 FROM forms f
		 LEFT JOIN user_info u ON u.id = f.creator_id
		 WHERE f.is_public = TRUE
		 ORDER BY f.created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

// ListByCreator retrieves summaries of all forms owned by one user,
// newest first.
func (r *FormRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.FormSummary, error) {
	return r.listSummaries(ctx,
		`SELECT f.id, f.title, f.description, f.is_public, f.allow_anon, f.creator_id, f.created_at,
		        COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.email, ''),
		        (SELECT COUNT(*) FROM questions q WHERE q.form_id = f.id)
		 FROM forms f
		 LEFT JOIN user_info u ON u.id = f.creator_id
		 WHERE f.creator_id = $1
		 ORDER BY f.created_at DESC`, creatorID)
}

func (r *FormRepository) listSummaries(ctx context.Context, query string, args ...any) ([]model.FormSummary, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.FormSummary{}
	for rows.Next() {
		var (
			s                  model.FormSummary
			first, last, email string
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.IsPublic, &s.AllowAnon,
			&s.CreatorID, &s.CreatedAt, &first, &last, &email, &s.QuestionCount); err != nil {
			return nil, err
		}
		s.CreatorName = model.DisplayName(first, last, email, model.UnknownCreatorName)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// marshalOptions encodes an option list for the jsonb column; nil means
// SQL NULL, which is how non-choice questions are stored.
func marshalOptions(options []string) ([]byte, error) {
	if options == nil {
		return nil, nil
	}
	return json.Marshal(options)
}

func unmarshalOptions(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var options []string
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, err
	}
	return options, nil
}
