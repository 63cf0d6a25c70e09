package cmd

import (
	"fmt"

	"menu-sync/core/auditlog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logsStatus string
	logsTarget int64
	logsMenu   int64
	logsLimit  int
	purgeDays  int
	purgeAll   bool
	yesPurge   bool
)

// logsCmd is the parent command for audit log operations.
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect and prune the sync audit log",
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the most recent audit records",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false, nil)
		if err != nil {
			return err
		}
		defer a.close()

		records, err := a.audit.Query(cmd.Context(), auditlog.Filter{
			TargetTenantID: logsTarget,
			MenuID:         logsMenu,
			Status:         logsStatus,
			Limit:          logsLimit,
		})
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Printf("%-6d %s  %-9s %-7s src=%d dst=%d menu=%d items=%d  %s\n",
				r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Operation, r.Status,
				r.SourceTenantID, r.TargetTenantID, r.MenuID, r.ItemsSynced, r.Message)
		}
		return nil
	},
}

var logsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print sync statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false, nil)
		if err != nil {
			return err
		}
		defer a.close()

		stats, err := a.audit.Statistics(cmd.Context(), auditlog.Range{})
		if err != nil {
			return err
		}
		fmt.Println("\n=== Menu Sync Statistics ===")
		fmt.Printf("Total Attempts: %d\n", stats.Total)
		fmt.Printf("Succeeded: %d\n", stats.Succeeded)
		fmt.Printf("Failed: %d\n", stats.Failed)
		fmt.Printf("Items Synced: %d\n", stats.ItemsSynced)
		fmt.Printf("Success Rate: %.2f%%\n", stats.SuccessRate)
		return nil
	},
}

var logsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete old audit records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if purgeAll && !yesPurge {
			return fmt.Errorf("--all deletes every record, confirm with --yes")
		}

		a, err := bootstrap(false, nil)
		if err != nil {
			return err
		}
		defer a.close()

		var n int64
		if purgeAll {
			n, err = a.audit.PurgeAll(cmd.Context())
		} else {
			n, err = a.audit.PurgeOlderThan(cmd.Context(), purgeDays)
		}
		if err != nil {
			return err
		}
		a.logger.Info("Audit records deleted", zap.Int64("deleted", n), zap.Bool("all", purgeAll))
		return nil
	},
}

func init() {
	logsListCmd.Flags().StringVar(&logsStatus, "status", "", "Filter by status (success, error)")
	logsListCmd.Flags().Int64Var(&logsTarget, "target", 0, "Filter by target tenant id")
	logsListCmd.Flags().Int64Var(&logsMenu, "menu", 0, "Filter by menu id")
	logsListCmd.Flags().IntVar(&logsLimit, "limit", auditlog.DefaultLimit, "Number of records")

	logsPurgeCmd.Flags().IntVar(&purgeDays, "days", auditlog.DefaultRetentionDays, "Delete records older than this many days")
	logsPurgeCmd.Flags().BoolVar(&purgeAll, "all", false, "Delete every record")
	logsPurgeCmd.Flags().BoolVar(&yesPurge, "yes", false, "Confirm --all")

	logsCmd.AddCommand(logsListCmd, logsStatsCmd, logsPurgeCmd)
	RootCmd.AddCommand(logsCmd)
}
