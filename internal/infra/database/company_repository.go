package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/prospectfinder/backend/internal/entity"
)

type CompanyRepository struct {
	DB *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

// Upsert merges a vendor company record into company_info, keyed by the
// vendor company id. A populated column is never overwritten by a null or
// absent vendor field; last write wins otherwise.
func (r *CompanyRepository) Upsert(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO company_info (
			company_id, name, domain, description, logo_url, main_industry,
			sub_industry, employees_min, employees_max, revenue_min, revenue_max,
			has_email, has_phone, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (company_id)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, company_info.name),
			domain = COALESCE(EXCLUDED.domain, company_info.domain),
			description = COALESCE(EXCLUDED.description, company_info.description),
			logo_url = COALESCE(EXCLUDED.logo_url, company_info.logo_url),
			main_industry = COALESCE(EXCLUDED.main_industry, company_info.main_industry),
			sub_industry = COALESCE(EXCLUDED.sub_industry, company_info.sub_industry),
			employees_min = COALESCE(EXCLUDED.employees_min, company_info.employees_min),
			employees_max = COALESCE(EXCLUDED.employees_max, company_info.employees_max),
			revenue_min = COALESCE(EXCLUDED.revenue_min, company_info.revenue_min),
			revenue_max = COALESCE(EXCLUDED.revenue_max, company_info.revenue_max),
			has_email = company_info.has_email OR EXCLUDED.has_email,
			has_phone = company_info.has_phone OR EXCLUDED.has_phone,
			updated_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.CompanyID,
		nullString(c.Name),
		nullString(c.Domain),
		nullString(c.Description),
		nullString(c.LogoURL),
		nullString(c.MainIndustry),
		nullString(c.SubIndustry),
		nullInt(c.EmployeesMin),
		nullInt(c.EmployeesMax),
		nullInt64(c.RevenueMin),
		nullInt64(c.RevenueMax),
		c.HasEmail,
		c.HasPhone,
	)

	if err != nil {
		log.Printf("company upsert failed: %v", err)
		return err
	}
	return nil
}
