package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
)

// TokenCmd returns the token command
func TokenCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a random value suitable for BOOTSTRAP_TOKEN",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := cryptox.GenerateToken(size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "bytes", cryptox.TokenSize256, "number of random bytes")
	return cmd
}
