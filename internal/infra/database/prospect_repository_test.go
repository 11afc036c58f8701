package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/prospectfinder/backend/internal/entity"
)

func prospectRowColumns() []string {
	return []string{
		"id", "user_id", "contact_id", "name", "job_title", "management_level",
		"department", "location", "industry", "skills", "company_id",
		"company_name", "company_size", "company_revenue", "company_founded_year",
		"linkedin_url", "created_at", "updated_at",
	}
}

func TestProspectRepository_Upsert_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO prospects`).
		WithArgs(
			int64(7), "c-100",
			"Jane Doe", "CEO", "C-Level", "Executive", "Malaysia", "Software",
			nil,      // skills
			"co-1",   // company_id
			"Acme",   // company_name
			"51-200", // company_size
			nil, nil, // company_revenue, founded year
			"https://linkedin.com/in/jane",
			sqlmock.AnyArg(), // emails
			sqlmock.AnyArg(), // phones
			true, false, false,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	repo := NewProspectRepository(db)
	p := &entity.Prospect{
		UserID:          7,
		ContactID:       "c-100",
		Name:            "Jane Doe",
		JobTitle:        "CEO",
		ManagementLevel: "C-Level",
		Department:      "Executive",
		Location:        "Malaysia",
		Industry:        "Software",
		CompanyID:       "co-1",
		CompanyName:     "Acme",
		CompanySize:     "51-200",
		LinkedinURL:     "https://linkedin.com/in/jane",
		Emails:          []string{"jane@acme.com"},
		HasEmail:        true,
	}

	err = repo.Upsert(context.Background(), p)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Re-running the same enrichment must hit the conflict path, not insert
// a second row. sqlmock cannot exercise the ON CONFLICT branch itself,
// so this pins the statement shape: single statement, merge clause present.
func TestProspectRepository_Upsert_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`ON CONFLICT \(user_id, contact_id\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(42), now, now))
	}

	repo := NewProspectRepository(db)
	p := &entity.Prospect{UserID: 7, ContactID: "c-100", Name: "Jane Doe"}

	assert.NoError(t, repo.Upsert(context.Background(), p))
	first := p.ID
	assert.NoError(t, repo.Upsert(context.Background(), p))

	assert.Equal(t, first, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProspectRepository_List_AppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(prospectRowColumns()).
		AddRow(int64(1), int64(7), "c-100", "Jane Doe", "CEO", nil, nil,
			"Malaysia", nil, nil, nil, nil, nil, nil, nil, nil, now, now)

	mock.ExpectQuery(`SELECT .+ FROM prospects WHERE user_id = \$1 AND job_title IN \(\$2\) AND location IN \(\$3\)`).
		WithArgs(int64(7), "CEO", "Malaysia", 25, 0).
		WillReturnRows(rows)

	repo := NewProspectRepository(db)
	fs := entity.FilterSet{
		JobTitles: []string{"CEO"},
		Locations: []entity.LocationCriterion{{Country: "Malaysia"}},
	}

	prospects, err := repo.List(context.Background(), 7, fs, 0, 25)

	assert.NoError(t, err)
	assert.Len(t, prospects, 1)
	assert.Equal(t, "Jane Doe", prospects[0].Name)
	assert.Equal(t, "CEO", prospects[0].JobTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProspectRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM prospects WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(prospectRowColumns()))

	repo := NewProspectRepository(db)
	p, err := repo.FindByID(context.Background(), 99)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProspectRepository_Update_RejectsUnknownField(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProspectRepository(db)
	err = repo.Update(context.Background(), 1, map[string]any{
		"job_title":               "VP Sales",
		"id = 0; DROP TABLE x;--": "boom",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prospect field")
	// Nothing should have reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProspectRepository_Update_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE prospects SET job_title = \$2, updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs(int64(5), "VP Sales").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewProspectRepository(db)
	err = repo.Update(context.Background(), 5, map[string]any{"job_title": "VP Sales"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProspectRepository_Suggestions(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT DISTINCT job_title`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"job_title"}).AddRow("CEO").AddRow("CTO"))
	mock.ExpectQuery(`SELECT DISTINCT location`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"location"}).AddRow("Malaysia"))
	mock.ExpectQuery(`SELECT DISTINCT industry`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"industry"}))

	repo := NewProspectRepository(db)
	out, err := repo.Suggestions(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, []string{"CEO", "CTO"}, out.JobTitles)
	assert.Equal(t, []string{"Malaysia"}, out.Locations)
	assert.Empty(t, out.Industries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
