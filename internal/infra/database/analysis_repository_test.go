package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/prospectfinder/backend/internal/entity"
)

func TestAnalysisRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO market_analysis \(id, user_id, query, status, created_at, updated_at\)`).
		WithArgs(sqlmock.AnyArg(), int64(7), "saas in apac", entity.AnalysisStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewAnalysisRepository(db)
	analysis := &entity.MarketAnalysis{UserID: 7, Query: "saas in apac"}

	err = repo.Create(context.Background(), analysis)

	assert.NoError(t, err)
	assert.NotEmpty(t, analysis.ID)
	assert.Equal(t, entity.AnalysisStatusPending, analysis.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRepository_MarkProcessingClaimsPendingOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE market_analysis`).
		WithArgs("a-1", entity.AnalysisStatusProcessing, entity.AnalysisStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAnalysisRepository(db)

	err = repo.MarkProcessing(context.Background(), "a-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRepository_MarkProcessingAlreadyClaimed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Zero rows means the row is no longer pending; the caller treats this
	// as a redelivery, not a failure.
	mock.ExpectExec(`UPDATE market_analysis`).
		WithArgs("a-1", entity.AnalysisStatusProcessing, entity.AnalysisStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAnalysisRepository(db)

	err = repo.MarkProcessing(context.Background(), "a-1")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRepository_FailWritesReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE market_analysis`).
		WithArgs("a-1", entity.AnalysisStatusFailed, `{"error":"model unavailable"}`,
			entity.AnalysisStatusCompleted, entity.AnalysisStatusFailed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAnalysisRepository(db)

	err = repo.Fail(context.Background(), "a-1", "model unavailable")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRepository_FindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM market_analysis`).
		WithArgs("missing", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "query", "status", "result", "created_at", "updated_at"}))

	repo := NewAnalysisRepository(db)

	analysis, err := repo.FindByID(context.Background(), "missing", 7)

	assert.Nil(t, analysis)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
