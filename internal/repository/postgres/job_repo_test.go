package postgres

import (
	"strings"
	"testing"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildJobSearchQuery(t *testing.T) {
	t.Run("Empty filter matches all open jobs", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobSearchFilter{})

		assert.Contains(t, query, "j.status = 'OPEN'")
		assert.NotContains(t, query, "$1")
		assert.Empty(t, args)
	})

	t.Run("Keyword hits title and description with one placeholder", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobSearchFilter{Keyword: "golang"})

		assert.Contains(t, query, "(j.title ILIKE $1 OR j.description ILIKE $1)")
		assert.Equal(t, []interface{}{"%golang%"}, args)
	})

	t.Run("Each criterion appends a predicate and an argument in lockstep", func(t *testing.T) {
		maxExp := 5
		filter := domain.JobSearchFilter{
			Keyword:       "go",
			Location:      "Jakarta",
			JobType:       "FULL_TIME",
			MaxExperience: &maxExp,
			CompanyName:   "Acme",
		}
		query, args := buildJobSearchQuery(filter)

		assert.Contains(t, query, "(j.title ILIKE $1 OR j.description ILIKE $1)")
		assert.Contains(t, query, "j.location ILIKE $2")
		assert.Contains(t, query, "j.job_type ILIKE $3")
		assert.Contains(t, query, "j.experience_years <= $4")
		assert.Contains(t, query, "e.company_name ILIKE $5")
		assert.Equal(t, []interface{}{"%go%", "%Jakarta%", "%FULL_TIME%", 5, "%Acme%"}, args)
	})

	t.Run("Placeholders stay dense when earlier criteria are absent", func(t *testing.T) {
		maxExp := 3
		query, args := buildJobSearchQuery(domain.JobSearchFilter{
			JobType:       "REMOTE",
			MaxExperience: &maxExp,
		})

		assert.Contains(t, query, "j.job_type ILIKE $1")
		assert.Contains(t, query, "j.experience_years <= $2")
		assert.NotContains(t, query, "$3")
		assert.Equal(t, []interface{}{"%REMOTE%", 3}, args)
	})

	t.Run("Experience ceiling is inclusive", func(t *testing.T) {
		zero := 0
		query, args := buildJobSearchQuery(domain.JobSearchFilter{MaxExperience: &zero})

		assert.Contains(t, query, "j.experience_years <= $1")
		assert.Equal(t, []interface{}{0}, args)
	})

	t.Run("Criteria combine with AND", func(t *testing.T) {
		query, _ := buildJobSearchQuery(domain.JobSearchFilter{Keyword: "go", Location: "Bandung"})

		assert.Equal(t, 2, strings.Count(query, " AND "),
			"status predicate plus two criteria joins with two ANDs: %s", query)
	})
}
