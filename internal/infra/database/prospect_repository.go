package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/filter"
)

type ProspectRepository struct {
	DB *sql.DB
}

func NewProspectRepository(db *sql.DB) *ProspectRepository {
	return &ProspectRepository{DB: db}
}

// Upsert persists an enriched prospect keyed by (user_id, contact_id).
// Merge semantics: an absent vendor field never clobbers a populated column,
// and re-running the same enrichment updates rows instead of duplicating them.
func (r *ProspectRepository) Upsert(ctx context.Context, p *entity.Prospect) error {
	query := `
		INSERT INTO prospects (
			user_id, contact_id, name, job_title, management_level, department,
			location, industry, skills, company_id, company_name, company_size,
			company_revenue, company_founded_year, linkedin_url, emails, phones,
			has_email, has_phone, has_direct_phone, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW())
		ON CONFLICT (user_id, contact_id)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, prospects.name),
			job_title = COALESCE(EXCLUDED.job_title, prospects.job_title),
			management_level = COALESCE(EXCLUDED.management_level, prospects.management_level),
			department = COALESCE(EXCLUDED.department, prospects.department),
			location = COALESCE(EXCLUDED.location, prospects.location),
			industry = COALESCE(EXCLUDED.industry, prospects.industry),
			skills = COALESCE(EXCLUDED.skills, prospects.skills),
			company_id = COALESCE(EXCLUDED.company_id, prospects.company_id),
			company_name = COALESCE(EXCLUDED.company_name, prospects.company_name),
			company_size = COALESCE(EXCLUDED.company_size, prospects.company_size),
			company_revenue = COALESCE(EXCLUDED.company_revenue, prospects.company_revenue),
			company_founded_year = COALESCE(EXCLUDED.company_founded_year, prospects.company_founded_year),
			linkedin_url = COALESCE(EXCLUDED.linkedin_url, prospects.linkedin_url),
			emails = COALESCE(EXCLUDED.emails, prospects.emails),
			phones = COALESCE(EXCLUDED.phones, prospects.phones),
			has_email = prospects.has_email OR EXCLUDED.has_email,
			has_phone = prospects.has_phone OR EXCLUDED.has_phone,
			has_direct_phone = prospects.has_direct_phone OR EXCLUDED.has_direct_phone,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		p.UserID,
		p.ContactID,
		nullString(p.Name),
		nullString(p.JobTitle),
		nullString(p.ManagementLevel),
		nullString(p.Department),
		nullString(p.Location),
		nullString(p.Industry),
		nullString(p.Skills),
		nullString(p.CompanyID),
		nullString(p.CompanyName),
		nullString(p.CompanySize),
		nullString(p.CompanyRevenue),
		nullInt(p.FoundedYear),
		nullString(p.LinkedinURL),
		nullStringArray(p.Emails),
		nullStringArray(p.Phones),
		p.HasEmail,
		p.HasPhone,
		p.HasDirectPhone,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		log.Printf("prospect upsert failed: %v", err)
		return err
	}
	return nil
}

// List runs the query builder output against the prospects table.
func (r *ProspectRepository) List(ctx context.Context, userID int64, fs entity.FilterSet, page, size int) ([]entity.Prospect, error) {
	query, params := filter.BuildProspectQuery(userID, fs, page, size)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prospects []entity.Prospect
	for rows.Next() {
		p, err := scanProspectRow(rows)
		if err != nil {
			return nil, err
		}
		prospects = append(prospects, p)
	}
	return prospects, rows.Err()
}

func (r *ProspectRepository) FindByID(ctx context.Context, id int64) (*entity.Prospect, error) {
	query := `
		SELECT id, user_id, contact_id, name, job_title, management_level, department,
		       location, industry, skills, company_id, company_name, company_size,
		       company_revenue, company_founded_year, linkedin_url, created_at, updated_at
		FROM prospects WHERE id = $1
	`

	row := r.DB.QueryRowContext(ctx, query, id)
	p, err := scanProspectRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a manually entered prospect (no vendor identity).
func (r *ProspectRepository) Create(ctx context.Context, p *entity.Prospect) (int64, error) {
	query := `
		INSERT INTO prospects (
			user_id, name, job_title, management_level, department, location,
			industry, skills, company_name, company_size, company_founded_year,
			company_revenue, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		p.UserID,
		nullString(p.Name),
		nullString(p.JobTitle),
		nullString(p.ManagementLevel),
		nullString(p.Department),
		nullString(p.Location),
		nullString(p.Industry),
		nullString(p.Skills),
		nullString(p.CompanyName),
		nullString(p.CompanySize),
		nullInt(p.FoundedYear),
		nullString(p.CompanyRevenue),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// updatableColumns whitelists what PUT /prospects/{id} may touch. Column
// names never come from request data.
var updatableColumns = map[string]string{
	"name":                 "name",
	"job_title":            "job_title",
	"management_level":     "management_level",
	"department":           "department",
	"location":             "location",
	"industry":             "industry",
	"skills":               "skills",
	"company_name":         "company_name",
	"company_size":         "company_size",
	"company_founded_year": "company_founded_year",
	"company_revenue":      "company_revenue",
	"linkedin_url":         "linkedin_url",
}

func (r *ProspectRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	var sets []string
	params := []any{id}
	n := 1

	for key, value := range fields {
		column, ok := updatableColumns[key]
		if !ok {
			return fmt.Errorf("unknown prospect field %q", key)
		}
		n++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		params = append(params, value)
	}
	sets = append(sets, "updated_at = NOW()")

	query := "UPDATE prospects SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, params...)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM prospects WHERE id = $1", id)
	return err
}

// Suggestions feeds filter autocomplete from the user's own saved data.
func (r *ProspectRepository) Suggestions(ctx context.Context, userID int64) (*entity.FilterSuggestions, error) {
	out := &entity.FilterSuggestions{}

	queries := []struct {
		sql  string
		dest *[]string
	}{
		{"SELECT DISTINCT job_title FROM prospects WHERE user_id = $1 AND job_title IS NOT NULL", &out.JobTitles},
		{"SELECT DISTINCT location FROM prospects WHERE user_id = $1 AND location IS NOT NULL", &out.Locations},
		{"SELECT DISTINCT industry FROM prospects WHERE user_id = $1 AND industry IS NOT NULL", &out.Industries},
	}

	for _, q := range queries {
		rows, err := r.DB.QueryContext(ctx, q.sql, userID)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, err
			}
			*q.dest = append(*q.dest, v)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProspectRow(row rowScanner) (entity.Prospect, error) {
	var p entity.Prospect
	var contactID, name, jobTitle, mgmt, dept, location, industry, skills sql.NullString
	var companyID, companyName, companySize, companyRevenue, linkedin sql.NullString
	var foundedYear sql.NullInt64

	err := row.Scan(
		&p.ID, &p.UserID, &contactID, &name, &jobTitle, &mgmt, &dept,
		&location, &industry, &skills, &companyID, &companyName, &companySize,
		&companyRevenue, &foundedYear, &linkedin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return entity.Prospect{}, err
	}

	p.ContactID = contactID.String
	p.Name = name.String
	p.JobTitle = jobTitle.String
	p.ManagementLevel = mgmt.String
	p.Department = dept.String
	p.Location = location.String
	p.Industry = industry.String
	p.Skills = skills.String
	p.CompanyID = companyID.String
	p.CompanyName = companyName.String
	p.CompanySize = companySize.String
	p.CompanyRevenue = companyRevenue.String
	p.FoundedYear = int(foundedYear.Int64)
	p.LinkedinURL = linkedin.String
	return p, nil
}

func nullStringArray(values []string) any {
	if len(values) == 0 {
		return nil
	}
	return pq.StringArray(values)
}
