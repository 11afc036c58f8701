package database

import (
	"context"
	"database/sql"

	"github.com/prospectfinder/backend/internal/entity"
)

type ProspectListRepository struct {
	DB *sql.DB
}

func NewProspectListRepository(db *sql.DB) *ProspectListRepository {
	return &ProspectListRepository{DB: db}
}

func (r *ProspectListRepository) ListByUser(ctx context.Context, userID int64) ([]entity.ProspectList, error) {
	query := `
		SELECT pl.id, pl.user_id, pl.list_name, COALESCE(pl.description, ''),
		       COUNT(pli.prospect_id) AS prospect_count, pl.created_at
		FROM prospect_lists pl
		LEFT JOIN prospect_list_items pli ON pl.id = pli.list_id
		WHERE pl.user_id = $1
		GROUP BY pl.id
		ORDER BY pl.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []entity.ProspectList
	for rows.Next() {
		var l entity.ProspectList
		if err := rows.Scan(&l.ID, &l.UserID, &l.ListName, &l.Description, &l.ProspectCount, &l.CreatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *ProspectListRepository) Create(ctx context.Context, l *entity.ProspectList) (int64, error) {
	query := `
		INSERT INTO prospect_lists (user_id, list_name, description, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, l.UserID, l.ListName, nullString(l.Description)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProspectListRepository) AddProspect(ctx context.Context, listID, prospectID int64) error {
	query := `
		INSERT INTO prospect_list_items (list_id, prospect_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (list_id, prospect_id) DO NOTHING
	`

	_, err := r.DB.ExecContext(ctx, query, listID, prospectID)
	return err
}
