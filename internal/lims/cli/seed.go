package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/app"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/seed"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var (
		db   dbFlags
		file string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample enzymes, organism and batches",
		Long: `Load a sample dataset through the LIMS services so every batch is
validated and classified like a live submission.

The built-in dataset is used unless --file points at a YAML file of the same
shape. A lab tech account is created to own the batches; its generated
password is printed once. Seeding is refused if any enzyme already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			db.apply(&cfg)

			ds, err := loadDataset(file)
			if err != nil {
				return err
			}

			if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
				return fmt.Errorf("failed to load pepper: %w", err)
			}

			logger := app.NewLogger(cfg)
			st, err := app.OpenStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ctx := slogx.WithContext(cmd.Context(), logger)
			res, err := seed.Load(ctx, st, nil, ds)
			if errors.Is(err, seed.ErrAlreadySeeded) {
				fmt.Fprintln(cmd.OutOrStdout(), "Store already has enzymes, nothing to do")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded %d enzymes, %d organisms, %d batches (%d peak-yield)\n",
				res.Enzymes, res.Organisms, res.Batches, res.PeakBatches)
			if res.LabTechSecret != "" {
				fmt.Fprintf(out, "Lab tech: %s / %s\n", res.LabTech.Email, res.LabTechSecret)
			}
			return nil
		},
	}

	db.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML dataset to load instead of the built-in one")
	return cmd
}

func loadDataset(path string) (seed.Dataset, error) {
	if path == "" {
		return seed.Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return seed.Dataset{}, fmt.Errorf("failed to read dataset: %w", err)
	}
	return seed.Parse(b)
}
