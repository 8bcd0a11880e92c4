package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "bussola/internal/adapter/db"
	"bussola/internal/config"
)

func newMigrateCmd(loadConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the reference tables",
		Long: `Apply the embedded schema files for the configured driver (DB_DRIVER).

The files are idempotent and can be applied to an existing database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			db, err := dbadapter.ConnectDB(cfg)
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", cfg.DbDriver, err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					zap.L().Warn("failed to close database connection", zap.Error(err))
				}
			}()

			if err := dbadapter.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", db.DriverName())
			return nil
		},
	}
}
