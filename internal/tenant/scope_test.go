package tenant

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID        string
	CompanyID string
}

func openDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, mock
}

func TestScope(t *testing.T) {
	db, mock := openDB(t)

	mock.ExpectQuery(`SELECT \* FROM "rows" WHERE company_id = \$1`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id"}).AddRow("r-1", "c-1"))

	var out []row
	require.NoError(t, db.Scopes(Scope("c-1")).Find(&out).Error)
	assert.Len(t, out, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopeTable(t *testing.T) {
	db, mock := openDB(t)

	mock.ExpectQuery(`SELECT \* FROM "rows" WHERE "rows"\.company_id = \$1`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id"}))

	var out []row
	require.NoError(t, db.Scopes(ScopeTable("rows", "c-1")).Find(&out).Error)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
