package filter

import (
	"fmt"
	"strings"

	"github.com/prospectfinder/backend/internal/entity"
)

const prospectColumns = `id, user_id, contact_id, name, job_title, management_level, department, location, industry, skills, company_id, company_name, company_size, company_revenue, company_founded_year, linkedin_url, created_at, updated_at`

// BuildProspectQuery translates a FilterSet into a parameterized SELECT over
// the prospects table. Every user-supplied value is bound positionally; the
// query text itself never contains filter values. An empty FilterSet yields
// only the user_id constraint (match all, subject to pagination).
func BuildProspectQuery(userID int64, fs entity.FilterSet, page, size int) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT " + prospectColumns + " FROM prospects WHERE user_id = $1")

	params := []any{userID}
	n := 1

	next := func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}

	inClause := func(column string, values []string) {
		placeholders := make([]string, 0, len(values))
		for _, v := range values {
			placeholders = append(placeholders, next())
			params = append(params, v)
		}
		sb.WriteString(" AND " + column + " IN (" + strings.Join(placeholders, ",") + ")")
	}

	if len(fs.JobTitles) > 0 {
		inClause("job_title", fs.JobTitles)
	}
	if len(fs.Seniorities) > 0 {
		inClause("management_level", fs.Seniorities)
	}
	if len(fs.Departments) > 0 {
		inClause("department", fs.Departments)
	}
	if len(fs.Locations) > 0 {
		countries := make([]string, 0, len(fs.Locations))
		for _, l := range fs.Locations {
			if l.Country != "" {
				countries = append(countries, l.Country)
			}
		}
		if len(countries) > 0 {
			inClause("location", countries)
		}
	}
	if len(fs.Industries) > 0 {
		labels := make([]string, 0, len(fs.Industries))
		for _, ind := range fs.Industries {
			labels = append(labels, ind.Label)
		}
		inClause("industry", labels)
	}
	if len(fs.Skills) > 0 {
		clauses := make([]string, 0, len(fs.Skills))
		for _, skill := range fs.Skills {
			clauses = append(clauses, "skills ILIKE "+next())
			params = append(params, "%"+skill+"%")
		}
		sb.WriteString(" AND (" + strings.Join(clauses, " OR ") + ")")
	}
	if len(fs.CompanySizes) > 0 {
		inClause("company_size", formatRanges(fs.CompanySizes))
	}
	if len(fs.RevenueRanges) > 0 {
		inClause("company_revenue", formatRanges(fs.RevenueRanges))
	}
	if fs.SearchText != "" {
		namePH := next()
		params = append(params, "%"+fs.SearchText+"%")
		titlePH := next()
		params = append(params, "%"+fs.SearchText+"%")
		sb.WriteString(" AND (name ILIKE " + namePH + " OR job_title ILIKE " + titlePH + ")")
	}

	sb.WriteString(" ORDER BY id DESC")

	if size > 0 {
		sb.WriteString(" LIMIT " + next())
		params = append(params, size)
		sb.WriteString(" OFFSET " + next())
		params = append(params, page*size)
	}

	return sb.String(), params
}

// formatRanges renders numeric bands the way the prospects table stores them
// ("11-50", "1000+").
func formatRanges(ranges []entity.RangeCriterion) []string {
	out := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.Max > 0 {
			out = append(out, fmt.Sprintf("%d-%d", r.Min, r.Max))
		} else {
			out = append(out, fmt.Sprintf("%d+", r.Min))
		}
	}
	return out
}
