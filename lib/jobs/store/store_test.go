package jobstore

import (
	"testing"
	"workvera-backend/lib/access"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestScopeTranslation(t *testing.T) {
	db := dryRunDB(t)
	toSQL := func(scope access.Scope, filter dbmodels.JobPostFilter) string {
		return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			query := tx.Model(&dbmodels.JobPost{})
			AddScope(query, scope)
			impl{db: db}.addFilter(query, filter)
			return query.Find(&[]dbmodels.JobPost{})
		})
	}

	t.Run(`active only`, func(t *testing.T) {
		sql := toSQL(access.Scope{ActiveOnly: true}, dbmodels.JobPostFilter{})
		require.Contains(t, sql, "job_posts.is_active = true")
		require.NotContains(t, sql, "employer_id")
	})
	t.Run(`own postings`, func(t *testing.T) {
		sql := toSQL(access.Scope{EmployerID: "e1"}, dbmodels.JobPostFilter{})
		require.Contains(t, sql, "job_posts.employer_id = 'e1'")
		require.NotContains(t, sql, "is_active")
	})
	t.Run(`empty scope`, func(t *testing.T) {
		sql := toSQL(access.Scope{None: true}, dbmodels.JobPostFilter{})
		require.Contains(t, sql, "1 = 0")
	})
	t.Run(`filters`, func(t *testing.T) {
		gap := true
		sql := toSQL(access.Scope{ActiveOnly: true}, dbmodels.JobPostFilter{
			Title:        "go",
			JobTypeExact: "remote",
			GapFriendly:  &gap,
			EmployerName: "acme",
		})
		require.Contains(t, sql, "job_posts.title ILIKE '%go%'")
		require.Contains(t, sql, "job_posts.job_type = 'remote'")
		require.Contains(t, sql, "job_posts.gap_friendly = true")
		require.Contains(t, sql, "name ILIKE '%acme%'")
	})
	t.Run(`wildcards in filter values match literally`, func(t *testing.T) {
		require.Equal(t, `%100\%%`, like("100%"))
		require.Equal(t, `%snake\_case%`, like("snake_case"))
		require.Equal(t, `%a\\b%`, like(`a\b`))

		sql := toSQL(access.Scope{ActiveOnly: true}, dbmodels.JobPostFilter{Title: "100%"})
		require.Contains(t, sql, `job_posts.title ILIKE '%100\%%'`)
	})
}
