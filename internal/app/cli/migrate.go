package cli

import (
	"github.com/spf13/cobra"

	"videogame-catalog/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, db, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			logger.Info().Msg("schema migrated")
			return nil
		},
	}
}
