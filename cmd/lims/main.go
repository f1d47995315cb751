package main

//go:generate swag init -g internal/lims/http/router.go -d ../../ -o ../../api/lims

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/app"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "lims",
		Short:   "AncestryBio LIMS - enzyme, organism and batch records",
		Version: app.BuildVersion,
		Long: `lims runs the AncestryBio laboratory information management API and its
maintenance tasks: record store migrations, sample data and bootstrap tokens.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.TokenCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
