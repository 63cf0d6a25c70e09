package checks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"menu-sync/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the database against the expected models.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport describes the drift of a single table.
type TableReport struct {
	Missing        bool     `json:"missing"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

type tabler interface {
	TableName() string
}

// CheckSchema verifies every model against the live database, using the gorm
// column and type tags as the source of truth.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range models {
		typ := reflect.TypeOf(model)
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model %T is not a struct", model)
		}
		t, ok := reflect.New(typ).Interface().(tabler)
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", typ.Name())
		}
		tableName := t.TableName()

		tbl := TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "ok"}

		actual, err := database.RequireTableColumns(db, tableName)
		if errors.Is(err, database.ErrTableMissing) {
			tbl.Missing = true
			tbl.Status = "error"
			report.Tables[tableName] = tbl
			report.Matched = false
			continue
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		byName := make(map[string]database.ColumnInfo, len(actual))
		for _, col := range actual {
			byName[col.Field] = col
		}

		for i := 0; i < typ.NumField(); i++ {
			tag := typ.Field(i).Tag.Get("gorm")
			column := tagValue(tag, "column")
			if column == "" {
				continue
			}

			col, exists := byName[column]
			if !exists {
				tbl.MissingColumns = append(tbl.MissingColumns, column)
				tbl.Status = "error"
				continue
			}

			expected := strings.ToLower(tagValue(tag, "type"))
			if expected != "" && !strings.Contains(col.Type, expected) {
				tbl.TypeMismatches = append(tbl.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", column, expected, col.Type))
				tbl.Status = "error"
			}
		}

		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tbl
	}

	return report, nil
}

// tagValue returns the value of key in a gorm struct tag such as "column:id;type:text".
func tagValue(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, key+":") {
			return strings.TrimPrefix(part, key+":")
		}
	}
	return ""
}
