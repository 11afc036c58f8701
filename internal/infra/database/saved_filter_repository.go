package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/prospectfinder/backend/internal/entity"
)

type SavedFilterRepository struct {
	DB *sql.DB
}

func NewSavedFilterRepository(db *sql.DB) *SavedFilterRepository {
	return &SavedFilterRepository{DB: db}
}

// Criteria are stored as one JSON-serialized string per row, decoded on read.
func (r *SavedFilterRepository) ListByUser(ctx context.Context, userID int64) ([]entity.SavedFilter, error) {
	query := `
		SELECT id, user_id, filter_name, criteria, is_active, created_at
		FROM user_filters
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filters []entity.SavedFilter
	for rows.Next() {
		var f entity.SavedFilter
		var criteria []byte
		if err := rows.Scan(&f.ID, &f.UserID, &f.FilterName, &criteria, &f.IsActive, &f.CreatedAt); err != nil {
			return nil, err
		}
		if len(criteria) > 0 {
			if err := json.Unmarshal(criteria, &f.Criteria); err != nil {
				return nil, fmt.Errorf("decode saved filter %d: %w", f.ID, err)
			}
		}
		filters = append(filters, f)
	}
	return filters, rows.Err()
}

func (r *SavedFilterRepository) Create(ctx context.Context, f *entity.SavedFilter) (int64, error) {
	criteria, err := json.Marshal(f.Criteria)
	if err != nil {
		return 0, fmt.Errorf("encode saved filter: %w", err)
	}

	query := `
		INSERT INTO user_filters (user_id, filter_name, criteria, is_active, created_at)
		VALUES ($1, $2, $3, TRUE, NOW())
		RETURNING id
	`

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, f.UserID, f.FilterName, string(criteria)).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SavedFilterRepository) Delete(ctx context.Context, userID, filterID int64) error {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM user_filters WHERE id = $1 AND user_id = $2", filterID, userID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
