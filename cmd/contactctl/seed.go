package main

import (
	"github.com/spf13/cobra"

	"github.com/ksred/contact-registry/internal/seed"
)

func seedCmd() *cobra.Command {
	var (
		count int
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample contacts",
		Long:  "Insert sample contacts with intentionally duplicated names, the pre-state the dedupe migration repairs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if count <= 0 {
				count = cfg.Seed.Count
			}

			seeder := seed.NewSeeder(db.DB(), logger)

			if reset {
				if err := seeder.Reset(cmd.Context()); err != nil {
					return err
				}
			}

			_, err = seeder.Seed(cmd.Context(), count)
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Number of contacts to create (0 uses the configured default)")
	cmd.Flags().BoolVar(&reset, "reset", false, "Delete existing contacts first")

	return cmd
}
