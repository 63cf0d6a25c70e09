package cmd

import (
	"fmt"
	"os"

	"menu-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds config.yaml and .env.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "menu-sync",
	Short: "Menu Sync Service",
	Long: `Menu Sync copies navigation menus from a source tenant to target tenants of a
multi-tenant site platform, remapping content references by slug and recording
every attempt in an audit log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding config.yaml and .env")
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// The configured logger may be the thing that failed.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
