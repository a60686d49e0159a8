// Package cli is the gamecatalog command line: serve the API, migrate the schema and
// bootstrap an admin account.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"videogame-catalog/config"
	"videogame-catalog/database"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gamecatalog",
		Short:         "Video game catalog and ownership API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("database-url", "", "database connection URL (overrides DATABASE_URL)")
	root.PersistentFlags().String("database-driver", "", "postgres or sqlite (overrides DATABASE_DRIVER)")

	root.AddCommand(newServeCommand(), newMigrateCommand(), newCreateAdminCommand())
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and opens the database with the command's flags applied.
func bootstrap(cmd *cobra.Command) (config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, err
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.Database, logger.With().Str("component", "gorm").Logger())
	if err != nil {
		return cfg, logger, nil, err
	}
	return cfg, logger, db, nil
}
