package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/app"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the LIMS HTTP API",
		Long: `Start the LIMS HTTP API. Configuration is read from the environment
(LIMS_*, PORT, LOG_LEVEL, ...). Migrations are applied on start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			if port != 0 {
				cfg.Port = port
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (default from PORT)")
	return cmd
}
