package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"videogame-catalog/database"
	"videogame-catalog/internal/domain/users"
	"videogame-catalog/internal/security"
	"videogame-catalog/internal/store"
)

// newCreateAdminCommand bootstraps an admin account, since registration never grants
// the flag.
func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}
			username = strings.TrimSpace(username)
			email = strings.ToLower(strings.TrimSpace(email))

			if username == "" || email == "" {
				return errors.New("--username and --email are required")
			}
			if !security.IsPasswordStrong(password) {
				return errors.New("password must be at least 8 characters with a letter and a digit (--password or ADMIN_PASSWORD)")
			}

			cfg, logger, db, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if cfg.AutoMigrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}

			hashed, err := security.NewHasher(cfg.BcryptCost).Hash(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			u := users.User{Username: username, Email: email, HashedPassword: hashed, IsAdmin: true}
			if err := store.New(db).CreateUser(cmd.Context(), &u); err != nil {
				return err
			}
			logger.Info().Uint("user_id", u.ID).Str("username", u.Username).Msg("admin created")
			return nil
		},
	}
	cmd.Flags().String("username", "", "admin username")
	cmd.Flags().String("email", "", "admin email")
	cmd.Flags().String("password", "", "admin password (or ADMIN_PASSWORD)")
	return cmd
}
