package applicationstore

import (
	"testing"
	"workvera-backend/lib/access"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestScopeTranslation(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	toSQL := func(scope access.Scope) string {
		return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			query := tx.Model(&dbmodels.Application{})
			AddScope(db, query, scope)
			return query.Find(&[]dbmodels.Application{})
		})
	}

	t.Run(`applicant`, func(t *testing.T) {
		sql := toSQL(access.Scope{ApplicantID: "s1"})
		require.Contains(t, sql, "applications.user_id = 's1'")
		require.NotContains(t, sql, "employer_id")
	})
	t.Run(`posting owner`, func(t *testing.T) {
		sql := toSQL(access.Scope{EmployerID: "e1"})
		require.Contains(t, sql, "applications.job_post_id IN (SELECT")
		require.Contains(t, sql, "employer_id = 'e1'")
	})
	t.Run(`admin sees all`, func(t *testing.T) {
		sql := toSQL(access.Scope{})
		require.NotContains(t, sql, "WHERE")
	})
	t.Run(`nobody`, func(t *testing.T) {
		require.Contains(t, toSQL(access.Scope{None: true}), "1 = 0")
	})
}
