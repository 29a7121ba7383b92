package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ksred/contact-registry/internal/database"
	"github.com/ksred/contact-registry/internal/database/migrations"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations",
		Long:  "Apply all pending migrations to the database, in version order, one transaction each.",
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

			runner := database.NewMigrationRunner(db.DB(), logger)
			for _, migration := range migrations.GetMigrations() {
				runner.Register(migration)
			}

			if err := runner.Run(cmd.Context()); err != nil {
				return fmt.Errorf("migration run failed: %w", err)
			}

			logger.Info().Msg("All migrations applied")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pending migrations",
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

			if err := db.Health(cmd.Context()); err != nil {
				return err
			}

			runner := database.NewMigrationRunner(db.DB(), logger)
			for _, migration := range migrations.GetMigrations() {
				runner.Register(migration)
			}

			pending, err := runner.GetPendingMigrations(cmd.Context())
			if err != nil {
				return err
			}

			if len(pending) == 0 {
				fmt.Println("No pending migrations")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tNAME")
			for _, migration := range pending {
				fmt.Fprintf(w, "%s\t%s\n", migration.Version, migration.Name)
			}
			return w.Flush()
		},
	}
}
