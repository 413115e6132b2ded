package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/webfolio/webfolio/internal/daemon"
	"github.com/webfolio/webfolio/internal/db"
	"github.com/webfolio/webfolio/internal/db/migrate"
)

func init() { //nolint: gochecknoinits
	createUserCmd.Flags().StringVar(&newUser.username, "username", "", "Login name")
	createUserCmd.Flags().StringVar(&newUser.email, "email", "", "Email address")
	createUserCmd.Flags().StringVar(&newUser.password, "password", "", "Password")
	createUserCmd.Flags().BoolVar(&newUser.staff, "staff", false, "Allow the admin area")

	_ = createUserCmd.MarkFlagRequired("username") //nolint:errcheck // flag exists
	_ = createUserCmd.MarkFlagRequired("password") //nolint:errcheck // flag exists

	rootCmd.AddCommand(createUserCmd)
}

var (
	newUser struct {
		username string
		email    string
		password string
		staff    bool
	}

	createUserCmd = &cobra.Command{
		Use:   "createuser",
		Short: "Create an active user account",
		RunE: func(_ *cobra.Command, _ []string) error {
			gdb, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if err = migrate.Up(gdb); err != nil {
				return err
			}

			user, err := daemon.Provider(gdb).CreateUser(newUser.username, newUser.email, newUser.password, newUser.staff)
			if err != nil {
				return errors.Wrapf(err, "can't create user %q", newUser.username)
			}

			log.Info().Uint64("id", user.ID).Str("username", user.Username).Bool("staff", user.IsStaff).Msg("user created")

			return nil
		},
	}
)
