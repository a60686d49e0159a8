package cli

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"videogame-catalog/database"
	routes "videogame-catalog/internal/app/http"
	"videogame-catalog/internal/security"
	"videogame-catalog/internal/store"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, db, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if err := database.Close(db); err != nil {
					logger.Warn().Err(err).Msg("close database")
				}
			}()

			if cfg.AutoMigrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
				logger.Info().Msg("schema migrated")
			}

			if release, _ := cmd.Flags().GetBool("release"); release {
				gin.SetMode(gin.ReleaseMode)
			}

			deps := routes.Dependencies{
				Store:  store.New(db, store.WithLogger(logger.With().Str("component", "store").Logger())),
				Tokens: security.NewTokens(cfg.JWT.Secret, cfg.JWT.ExpiresIn),
				Hasher: security.NewHasher(cfg.BcryptCost),
				Logger: logger,
			}
			engine := routes.NewEngine(cfg, deps)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return routes.Serve(ctx, ":"+cfg.Port, engine, logger)
		},
	}
	cmd.Flags().String("port", "", "listen port (overrides PORT)")
	cmd.Flags().Bool("release", true, "run gin in release mode")
	return cmd
}
