package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository derives dashboard aggregates from the stored
// forms and responses. Nothing here is fabricated; every figure comes
// from a real grouping query.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// SummaryCounts is the high-level metric set for one creator.
type SummaryCounts struct {
	TotalForms     int `json:"total_forms"`
	PublicForms    int `json:"public_forms"`
	TotalQuestions int `json:"total_questions"`
	TotalResponses int `json:"total_responses"`
}

// GetSummaryCounts retrieves the high-level metrics for all forms owned
// by one creator.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context, creatorID uuid.UUID) (*SummaryCounts, error) {
	c := &SummaryCounts{}
	err := r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM forms WHERE creator_id = $1),
			(SELECT COUNT(*) FROM forms WHERE creator_id = $1 AND is_public = TRUE),
			(SELECT COUNT(*) FROM questions q JOIN forms f ON f.id = q.form_id WHERE f.creator_id = $1),
			(SELECT COUNT(*) FROM responses r JOIN forms f ON f.id = r.form_id WHERE f.creator_id = $1)`,
		creatorID,
	).Scan(&c.TotalForms, &c.PublicForms, &c.TotalQuestions, &c.TotalResponses)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FormResponseCount pairs a form with its response volume.
type FormResponseCount struct {
	FormID        uuid.UUID  `json:"form_id"`
	Title         string     `json:"title"`
	ResponseCount int        `json:"response_count"`
	LastResponse  *time.Time `json:"last_response,omitempty"`
}

// GetResponsesPerForm retrieves response counts grouped per form for
// one creator, most-answered first.
func (r *DashboardRepository) GetResponsesPerForm(ctx context.Context, creatorID uuid.UUID) ([]FormResponseCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT f.id, f.title, COUNT(r.id), MAX(r.created_at)
		 FROM forms f
		 LEFT JOIN responses r ON r.form_id = f.id
		 WHERE f.creator_id = $1
		 GROUP BY f.id, f.title
		 ORDER BY COUNT(r.id) DESC, f.created_at DESC`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []FormResponseCount{}
	for rows.Next() {
		var c FormResponseCount
		if err := rows.Scan(&c.FormID, &c.Title, &c.ResponseCount, &c.LastResponse); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// AnswerBucket is one (value, count) pair in a question's answer
// distribution.
type AnswerBucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GetAnswerDistribution groups scalar answer values for one question.
// Checkbox questions are unnested so each selected option counts once.
func (r *DashboardRepository) GetAnswerDistribution(ctx context.Context, questionID uuid.UUID) ([]AnswerBucket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT v.value, COUNT(*)
		 FROM answers a
		 CROSS JOIN LATERAL (
			SELECT a.scalar_value AS value WHERE a.scalar_value IS NOT NULL
			UNION ALL
			SELECT jsonb_array_elements_text(a.multi_value) WHERE a.multi_value IS NOT NULL
		 ) v
		 WHERE a.question_id = $1
		 GROUP BY v.value
		 ORDER BY COUNT(*) DESC, v.value`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := []AnswerBucket{}
	for rows.Next() {
		var b AnswerBucket
		if err := rows.Scan(&b.Value, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
