package postgres

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every column the repository statements reference, per table. Keeping
// this list in sync with the SQL in this package guards the migration
// against silent column renames.
var repositoryColumns = map[string][]string{
	"users":             {"id", "name", "email", "password", "role", "security_question", "security_answer", "created_at"},
	"job_seekers":       {"user_id", "phone"},
	"resume_objectives": {"user_id", "objective"},
	"resume_education":  {"user_id", "degree", "institution", "year"},
	"resume_experience": {"user_id", "company", "role", "duration", "description"},
	"resume_skills":     {"user_id", "skill_name"},
	"resume_projects":   {"user_id", "title", "description", "role"},
	"employers":         {"user_id", "company_name", "industry", "description", "location"},
	"jobs":              {"id", "employer_id", "title", "description", "requirements", "location", "salary_range", "job_type", "experience_years", "status", "posted_at"},
	"applications":      {"id", "job_id", "seeker_id", "cover_letter", "status", "applied_at"},
	"notifications":     {"id", "user_id", "message", "is_read", "created_at"},
}

func loadMigration(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init_schema.sql"))
	require.NoError(t, err)
	return string(data)
}

func TestMigrationDeclaresRepositoryColumns(t *testing.T) {
	ddl := loadMigration(t)

	tableRe := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\);`)
	tables := map[string]string{}
	for _, m := range tableRe.FindAllStringSubmatch(ddl, -1) {
		tables[m[1]] = m[2]
	}

	for table, columns := range repositoryColumns {
		body, ok := tables[table]
		require.True(t, ok, "table %s missing from migration", table)

		for _, column := range columns {
			colRe := regexp.MustCompile(`(?m)^\s*` + column + `\s`)
			assert.True(t, colRe.MatchString(body),
				"table %s: column %q not declared in migration", table, column)
		}
	}
}

func TestMigrationConstraints(t *testing.T) {
	ddl := loadMigration(t)

	// One application per (job, seeker) pair, ever; concurrent applies
	// serialize on this index.
	assert.Contains(t, ddl, "UNIQUE (job_id, seeker_id)")
	// Deleting a job keeps its applications, so no FK on job_id.
	assert.NotRegexp(t, regexp.MustCompile(`job_id\s+BIGINT\s+NOT NULL\s+REFERENCES`), ddl)
	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*email\s+TEXT\s+NOT NULL UNIQUE`), ddl)
}
