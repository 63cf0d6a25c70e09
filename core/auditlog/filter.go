package auditlog

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultLimit is the page size used when a filter carries no positive limit.
const DefaultLimit = 50

// orderColumns is the allow-list of sortable columns.
var orderColumns = map[string]struct{}{
	"id":               {},
	"timestamp":        {},
	"source_tenant_id": {},
	"target_tenant_id": {},
	"status":           {},
}

// Filter selects audit records. Zero values mean "no constraint".
type Filter struct {
	SourceTenantID int64
	TargetTenantID int64
	MenuID         int64
	Status         string
	// Start and End bound the timestamp inclusively.
	Start *time.Time
	End   *time.Time

	Limit  int
	Offset int
	// OrderBy must name an allow-listed column; anything else sorts by timestamp.
	OrderBy string
	// Order is ASC or DESC (default).
	Order string
}

// Range bounds statistics by timestamp, inclusively on both ends.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// apply adds the WHERE clauses of the filter.
func (f Filter) apply(q *gorm.DB) *gorm.DB {
	if f.SourceTenantID > 0 {
		q = q.Where("source_tenant_id = ?", f.SourceTenantID)
	}
	if f.TargetTenantID > 0 {
		q = q.Where("target_tenant_id = ?", f.TargetTenantID)
	}
	if f.MenuID > 0 {
		q = q.Where("menu_id = ?", f.MenuID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return Range{Start: f.Start, End: f.End}.apply(q)
}

// apply binds the bounds in UTC, the zone Append stores timestamps in. sqlite compares
// the stored text, so a bound with another offset would otherwise compare wrongly.
func (r Range) apply(q *gorm.DB) *gorm.DB {
	if r.Start != nil {
		q = q.Where("timestamp >= ?", r.Start.UTC())
	}
	if r.End != nil {
		q = q.Where("timestamp <= ?", r.End.UTC())
	}
	return q
}

// orderClause returns a safe ORDER BY expression.
func (f Filter) orderClause() string {
	column := strings.ToLower(strings.TrimSpace(f.OrderBy))
	if _, ok := orderColumns[column]; !ok {
		column = "timestamp"
	}
	direction := "DESC"
	if strings.EqualFold(strings.TrimSpace(f.Order), "ASC") {
		direction = "ASC"
	}
	// id breaks ties so pages are stable.
	if column == "id" {
		return "id " + direction
	}
	return column + " " + direction + ", id " + direction
}

func (f Filter) limit() int {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	return f.Limit
}

func (f Filter) offset() int {
	if f.Offset < 0 {
		return 0
	}
	return f.Offset
}
