package checks

import (
	"testing"

	"menu-sync/core/auditlog"
	"menu-sync/core/database"
	"menu-sync/core/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &auditlog.Record{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_NotAStruct(t *testing.T) {
	_, err := CheckSchema(setupDB(t), "menu_sync_logs")
	assert.Error(t, err)
}

func TestCheckSchema_Matched(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.AutoMigrate(&auditlog.Record{}, &settings.Row{}))

	report, err := CheckSchema(db, &auditlog.Record{}, settings.Row{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, database.DriverSQLite, report.Driver)
	assert.Equal(t, "ok", report.Tables["menu_sync_logs"].Status)
	assert.Equal(t, "ok", report.Tables["menu_sync_settings"].Status)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.AutoMigrate(&auditlog.Record{}))

	report, err := CheckSchema(db, &auditlog.Record{}, &settings.Row{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.True(t, report.Tables["menu_sync_settings"].Missing)
	assert.Equal(t, "ok", report.Tables["menu_sync_logs"].Status)
}

func TestCheckSchema_Drift(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec("CREATE TABLE menu_sync_logs (id integer primary key, message varchar(10))").Error)

	report, err := CheckSchema(db, &auditlog.Record{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["menu_sync_logs"]
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "status")
	assert.Contains(t, tbl.MissingColumns, "target_tenant_id")
	assert.NotContains(t, tbl.MissingColumns, "message")
	assert.Equal(t, []string{"message: expected text, got varchar(10)"}, tbl.TypeMismatches)
}

func TestTagValue(t *testing.T) {
	assert.Equal(t, "menu_id", tagValue("column:menu_id;not null", "column"))
	assert.Equal(t, "varchar(20)", tagValue("column:status;type:varchar(20);index:x", "type"))
	assert.Equal(t, "", tagValue("primaryKey", "column"))
}
