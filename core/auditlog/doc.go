// Package auditlog stores one record per menu sync attempt in the shared menu_sync_logs table.
//
// The Log is the only writer of the table. Append never fails the caller: incomplete records are
// rejected and storage errors are reported through the operational logger only. Records are
// removed by PurgeOlderThan, PurgeAll, or the cron driven Retention job.
package auditlog
