package cli

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/app"
)

// dbFlags lets commands that only touch the record store override the
// environment configuration.
type dbFlags struct {
	driver string
	file   string
	url    string
}

func (f *dbFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.driver, "db-driver", "", "record store driver: sqlite or postgres (default from LIMS_DB_DRIVER)")
	cmd.Flags().StringVar(&f.file, "database-file", "", "SQLite database file (default from LIMS_DATABASE_FILE)")
	cmd.Flags().StringVar(&f.url, "database-url", "", "Postgres DSN (default from LIMS_DATABASE_URL)")
}

func (f *dbFlags) apply(cfg *app.Config) {
	if f.driver != "" {
		cfg.DBDriver = f.driver
	}
	if f.file != "" {
		cfg.DatabaseFile = f.file
	}
	if f.url != "" {
		cfg.DatabaseURL = f.url
	}
}
