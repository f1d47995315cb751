package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/app"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	var db dbFlags

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply record store migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			db.apply(&cfg)

			st, err := app.OpenStore(cmd.Context(), cfg, app.NewLogger(cfg))
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied (%s)\n", driverName(cfg))
			return nil
		},
	}

	db.register(cmd)
	return cmd
}

func driverName(cfg app.Config) string {
	if cfg.DBDriver == "" {
		return "sqlite"
	}
	return cfg.DBDriver
}
