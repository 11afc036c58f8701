package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/prospectfinder/backend/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING user_id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query, u.Username, u.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("user insert failed: %v", err)
		return err
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT user_id, username, email, password_hash, created_at FROM users WHERE email = $1`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT user_id, username, email, password_hash, created_at FROM users WHERE user_id = $1`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveCompanyProfile upserts the post-signup questionnaire, one row per user.
func (r *UserRepository) SaveCompanyProfile(ctx context.Context, p *entity.CompanyProfile) error {
	query := `
		INSERT INTO company_profiles (user_id, company_name, business_type, company_size, occupation, primary_goal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			business_type = EXCLUDED.business_type,
			company_size = EXCLUDED.company_size,
			occupation = EXCLUDED.occupation,
			primary_goal = EXCLUDED.primary_goal,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(ctx, query,
		p.UserID,
		p.CompanyName,
		p.BusinessType,
		p.CompanySize,
		p.Occupation,
		p.PrimaryGoal,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}
