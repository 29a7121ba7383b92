package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ksred/contact-registry/internal/dedupe"
)

func dedupeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "dedupe",
		Short: "Deduplicate contact names",
		Long:  "Rename contacts with colliding names so every name is unique. Normally this runs as a migration; this command exists for inspection and manual repair.",
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

			if dryRun {
				store := dedupe.NewGormStore(db.DB())
				renames, err := dedupe.Plan(cmd.Context(), store)
				if err != nil {
					return err
				}

				if len(renames) == 0 {
					fmt.Println("No duplicate names found")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCURRENT NAME\tNEW NAME")
				for _, rename := range renames {
					fmt.Fprintf(w, "%d\t%s\t%s\n", rename.ID, rename.OldName, rename.NewName)
				}
				return w.Flush()
			}

			// Apply all renames atomically
			return db.WithTransaction(func(tx *gorm.DB) error {
				store := dedupe.NewGormStore(tx)
				_, err := dedupe.Deduplicate(cmd.Context(), store, logger)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the planned renames without applying them")

	return cmd
}
