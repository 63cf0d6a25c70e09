package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func columnTypes(cols []ColumnInfo) map[string]string {
	out := make(map[string]string, len(cols))
	for _, col := range cols {
		out[col.Field] = col.Type
	}
	return out
}

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE menu_sync_settings (ID INTEGER PRIMARY KEY, Enabled NUMERIC NOT NULL, Targets TEXT)").Error)

	cols, err := GetTableColumns(db, "menu_sync_settings")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "integer", "enabled": "numeric", "targets": "text"}, columnTypes(cols))
	assert.Equal(t, "PRI", cols[0].Key)
	assert.Equal(t, "NO", cols[1].Null)
	assert.Equal(t, "YES", cols[2].Null)

	// PRAGMA table_info yields no rows for an unknown table.
	cols, err = GetTableColumns(db, "menu_sync_missing")
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `menu_sync_logs`")).
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("ID", "BIGINT", "NO", "PRI", nil, "auto_increment").
			AddRow("Status", "VARCHAR(20)", "NO", "MUL", nil, ""))

	cols, err := GetTableColumns(db, "menu_sync_logs")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "bigint", "status": "varchar(20)"}, columnTypes(cols))
	assert.Equal(t, "auto_increment", cols[0].Extra)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	_, err = RequireTableColumns(db, "menu_sync_logs")
	assert.ErrorIs(t, err, ErrTableMissing)

	require.NoError(t, db.Exec("CREATE TABLE menu_sync_logs (id INTEGER PRIMARY KEY NOT NULL, status TEXT)").Error)

	cols, err := RequireTableColumns(db, "menu_sync_logs")
	require.NoError(t, err)
	assert.Len(t, cols, 2)
}
