package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formhive/formhive-backend/internal/model"
)

// ErrDuplicateEmail is returned when an account with the email already exists.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository handles account and profile data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the account row and its profile row in one
// transaction; an account without a profile is never observable.
func (r *UserRepository) Create(ctx context.Context, user *model.User, info *model.UserInfo) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO users (id, email, password_hash)
			 VALUES ($1, $2, $3)
			 RETURNING created_at`,
			user.ID, user.Email, user.PasswordHash,
		).Scan(&user.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO user_info (id, email, first_name, last_name, phone, organization, bio)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			info.ID, info.Email, info.FirstName, info.LastName, info.Phone, info.Organization, info.Bio,
		); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
}

// GetByEmail retrieves an account by email for credential checks.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetProfile retrieves the profile row for a user id.
func (r *UserRepository) GetProfile(ctx context.Context, id uuid.UUID) (*model.UserInfo, error) {
	info := &model.UserInfo{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, phone, organization, bio
		 FROM user_info WHERE id = $1`, id,
	).Scan(&info.ID, &info.Email, &info.FirstName, &info.LastName,
		&info.Phone, &info.Organization, &info.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

// UpdateProfile overwrites the editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, info *model.UserInfo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE user_info
		 SET first_name = $1, last_name = $2, phone = $3, organization = $4, bio = $5
		 WHERE id = $6`,
		info.FirstName, info.LastName, info.Phone, info.Organization, info.Bio, info.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
