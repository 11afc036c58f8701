package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectfinder/backend/internal/entity"
)

func TestBuildProspectQueryEmptyFilterSet(t *testing.T) {
	query, params := BuildProspectQuery(1, entity.FilterSet{}, 0, 25)

	assert.Contains(t, query, "WHERE user_id = $1")
	assert.NotContains(t, query, "AND")
	assert.Contains(t, query, "ORDER BY id DESC")
	assert.Contains(t, query, "LIMIT $2")
	assert.Contains(t, query, "OFFSET $3")
	assert.Equal(t, []any{int64(1), 25, 0}, params)
}

func TestBuildProspectQueryAllCriteria(t *testing.T) {
	fs := entity.FilterSet{
		JobTitles:   []string{"CEO", "CTO"},
		Seniorities: []string{"Founder"},
		Departments: []string{"Sales"},
		Locations:   []entity.LocationCriterion{{Country: "Malaysia"}},
		Industries:  []entity.IndustryCriterion{{Label: "SaaS", Kind: "sub"}},
		Skills:      []string{"golang"},
		CompanySizes: []entity.RangeCriterion{
			{Min: 11, Max: 50},
			{Min: 1000},
		},
		SearchText: "tan",
	}

	query, params := BuildProspectQuery(7, fs, 2, 10)

	assert.Contains(t, query, `job_title IN ($2,$3)`)
	assert.Contains(t, query, `management_level IN ($4)`)
	assert.Contains(t, query, `department IN ($5)`)
	assert.Contains(t, query, `location IN ($6)`)
	assert.Contains(t, query, `industry IN ($7)`)
	assert.Contains(t, query, `skills ILIKE $8`)
	assert.Contains(t, query, `company_size IN ($9,$10)`)
	assert.Contains(t, query, `(name ILIKE $11 OR job_title ILIKE $12)`)

	assert.Equal(t, []any{
		int64(7), "CEO", "CTO", "Founder", "Sales", "Malaysia", "SaaS",
		"%golang%", "11-50", "1000+", "%tan%", "%tan%", 10, 20,
	}, params)
}

// Filter values are free-form user text; they must never end up inside the
// query string itself.
func TestBuildProspectQueryInjectionSafety(t *testing.T) {
	payloads := []string{
		"'; DROP TABLE prospects;--",
		`" OR "1"="1`,
		"Robert'); DELETE FROM users;--",
	}

	for _, payload := range payloads {
		fs := entity.FilterSet{
			JobTitles:  []string{payload},
			SearchText: payload,
		}

		query, params := BuildProspectQuery(1, fs, 0, 25)

		assert.NotContains(t, query, payload)
		assert.NotContains(t, query, "DROP TABLE")
		assert.Contains(t, params, payload)
		assert.Contains(t, params, "%"+payload+"%")
	}
}

func TestBuildProspectQueryPlaceholdersAreSequential(t *testing.T) {
	fs := entity.FilterSet{JobTitles: []string{"a", "b", "c"}}

	query, params := BuildProspectQuery(1, fs, 1, 5)

	assert.Equal(t, 6, len(params)) // user_id + 3 titles + limit + offset
	for _, ph := range []string{"$1", "$2", "$3", "$4", "$5", "$6"} {
		assert.True(t, strings.Contains(query, ph), "missing placeholder %s", ph)
	}
	assert.NotContains(t, query, "$7")
}
