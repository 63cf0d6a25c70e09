package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"menu-sync/core/menusync"
	"menu-sync/core/utils"
	"menu-sync/feature/menus"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncMenuID   int64
	syncTargets  string
	syncStrategy string
	syncActorID  int64
)

// syncCmd is the parent command for sync runs.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize menus from the source tenant to target tenants",
	Long: `Runs a sync with the persisted settings. Targets and conflict strategy can be
overridden per run.

Examples:
  # Sync menu 12 to the configured targets
  sync menu --menu 12

  # Sync menu 12 to tenants 2 and 3, merging into existing menus
  sync menu --menu 12 --targets 2,3 --strategy merge

  # Sync every menu of the source tenant
  sync all`,
}

var syncMenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Sync one menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := syncInput()
		if err != nil {
			return err
		}
		in.MenuID = syncMenuID

		a, err := bootstrap(false, nil)
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.menuService().Sync(cmd.Context(), in)
		if err != nil {
			return err
		}
		a.logger.Info("Sync finished",
			zap.Int64("menu_id", in.MenuID),
			zap.Int("succeeded", len(res.Success)),
			zap.Int("failed", len(res.Failed)),
		)
		return printJSON(res)
	},
}

var syncAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Sync every menu of the source tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := syncInput()
		if err != nil {
			return err
		}

		a, err := bootstrap(false, nil)
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.menuService().SyncAll(cmd.Context(), in)
		if err != nil {
			return err
		}
		a.logger.Info("Sync all finished", zap.Int("menus", len(res.Results)), zap.Int("not_started", len(res.Errors)))
		return printJSON(res)
	},
}

func syncInput() (menus.SyncInput, error) {
	targets, err := utils.ParseIDList(syncTargets)
	if err != nil {
		return menus.SyncInput{}, fmt.Errorf("--targets: %w", err)
	}
	return menus.SyncInput{
		TargetTenantIDs: targets,
		Strategy:        menusync.Strategy(syncStrategy),
		ActorID:         syncActorID,
	}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	syncCmd.PersistentFlags().StringVar(&syncTargets, "targets", "", "Comma separated target tenant ids (default: settings)")
	syncCmd.PersistentFlags().StringVar(&syncStrategy, "strategy", "", "Conflict strategy: override, skip or merge (default: settings)")
	syncCmd.PersistentFlags().Int64Var(&syncActorID, "actor", 0, "User id recorded in the audit log")

	syncMenuCmd.Flags().Int64Var(&syncMenuID, "menu", 0, "Menu id on the source tenant")
	_ = syncMenuCmd.MarkFlagRequired("menu")

	syncCmd.AddCommand(syncMenuCmd, syncAllCmd)
	RootCmd.AddCommand(syncCmd)
}
