package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/prospectfinder/backend/internal/entity"
)

type AnalysisRepository struct {
	DB *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{DB: db}
}

func (r *AnalysisRepository) Create(ctx context.Context, a *entity.MarketAnalysis) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.Status = entity.AnalysisStatusPending

	query := `
		INSERT INTO market_analysis (id, user_id, query, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(ctx, query, a.ID, a.UserID, a.Query, a.Status).
		Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *AnalysisRepository) FindByID(ctx context.Context, id string, userID int64) (*entity.MarketAnalysis, error) {
	query := `
		SELECT id, user_id, query, status, result, created_at, updated_at
		FROM market_analysis
		WHERE id = $1 AND user_id = $2
	`

	var a entity.MarketAnalysis
	var result sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id, userID).
		Scan(&a.ID, &a.UserID, &a.Query, &a.Status, &result, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if result.Valid {
		a.Result = json.RawMessage(result.String)
	}
	return &a, nil
}

func (r *AnalysisRepository) ListByUser(ctx context.Context, userID int64) ([]entity.MarketAnalysis, error) {
	query := `
		SELECT id, user_id, query, status, result, created_at, updated_at
		FROM market_analysis
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []entity.MarketAnalysis
	for rows.Next() {
		var a entity.MarketAnalysis
		var result sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.Query, &a.Status, &result, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if result.Valid {
			a.Result = json.RawMessage(result.String)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// MarkProcessing claims a pending job. The status guard in the WHERE clause
// keeps a redelivered message from reprocessing a job another consumer took.
func (r *AnalysisRepository) MarkProcessing(ctx context.Context, id string) error {
	query := `
		UPDATE market_analysis
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	res, err := r.DB.ExecContext(ctx, query, id, entity.AnalysisStatusProcessing, entity.AnalysisStatusPending)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *AnalysisRepository) Complete(ctx context.Context, id string, result json.RawMessage) error {
	query := `
		UPDATE market_analysis
		SET status = $2, result = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
	`

	res, err := r.DB.ExecContext(ctx, query, id, entity.AnalysisStatusCompleted, string(result), entity.AnalysisStatusProcessing)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *AnalysisRepository) Fail(ctx context.Context, id string, reason string) error {
	query := `
		UPDATE market_analysis
		SET status = $2, result = $3, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ($4, $5)
	`

	failure, _ := json.Marshal(map[string]string{"error": reason})
	res, err := r.DB.ExecContext(ctx, query, id, entity.AnalysisStatusFailed, string(failure),
		entity.AnalysisStatusCompleted, entity.AnalysisStatusFailed)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
