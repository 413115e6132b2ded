package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/webfolio/webfolio/internal/db"
	"github.com/webfolio/webfolio/internal/db/migrate"
)

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the last migration")

	rootCmd.AddCommand(migrateCmd)
}

var (
	migrateDown bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			gdb, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if migrateDown {
				err = migrate.Down(gdb)
			} else {
				err = migrate.Up(gdb)
			}

			if err != nil {
				return err
			}

			log.Info().Bool("down", migrateDown).Msg("migrations done")

			return nil
		},
	}
)
