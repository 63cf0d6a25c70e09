package auditlog

import "time"

const (
	// StatusSuccess marks an attempt that materialized the menu on its target.
	StatusSuccess = "success"
	// StatusError marks an attempt that failed or was aborted.
	StatusError = "error"
)

const (
	// OperationSync is a sync run started manually or by the scheduler.
	OperationSync = "sync"
	// OperationAutoSync is a sync run triggered by a menu update event.
	OperationAutoSync = "auto_sync"
	// OperationApply is a standalone apply of a portable menu.
	OperationApply = "apply"
	// OperationImport is an apply of a snapshot read back from object storage.
	OperationImport = "import"
)

// Record is one persisted sync attempt of a menu onto a target tenant.
// Records are immutable once written.
type Record struct {
	ID             int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Timestamp      time.Time      `gorm:"column:timestamp;not null;index:idx_menu_sync_logs_timestamp" json:"timestamp"`
	SourceTenantID int64          `gorm:"column:source_tenant_id;not null;index:idx_menu_sync_logs_source" json:"source_tenant_id"`
	TargetTenantID int64          `gorm:"column:target_tenant_id;not null;index:idx_menu_sync_logs_target" json:"target_tenant_id"`
	MenuID         int64          `gorm:"column:menu_id;not null" json:"menu_id"`
	MenuName       string         `gorm:"column:menu_name;type:varchar(255)" json:"menu_name"`
	Operation      string         `gorm:"column:operation;type:varchar(50);not null" json:"operation"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;index:idx_menu_sync_logs_status" json:"status"`
	Message        string         `gorm:"column:message;type:text" json:"message"`
	ItemsSynced    int            `gorm:"column:items_synced;not null;default:0" json:"items_synced"`
	Conflicts      map[string]any `gorm:"column:conflicts;type:text;serializer:json" json:"conflicts,omitempty"`
	ActorID        int64          `gorm:"column:actor_id;not null;default:0" json:"actor_id"`
}

// TableName overrides the table name. The table is shared by every tenant.
func (Record) TableName() string { return "menu_sync_logs" }
