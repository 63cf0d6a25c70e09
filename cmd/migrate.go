package cmd

import (
	"github.com/spf13/cobra"
)

var migratePlatform bool

// migrateCmd creates or updates the database tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Creates the audit log and settings tables. With --platform the content store tables
(tenants, menus, menu items, content, terms, slot bindings) are created as well, which is
only wanted when this service owns the content database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false, nil)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.migrate(cmd.Context(), migratePlatform); err != nil {
			return err
		}
		a.logger.Info("Migration completed")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migratePlatform, "platform", false, "Also migrate the content store tables")
	RootCmd.AddCommand(migrateCmd)
}
