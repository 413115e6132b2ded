package app

import (
	"github.com/spf13/cobra"

	"github.com/webfolio/webfolio/internal/daemon"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	browseStatic bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the webfolio web service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(cmd.Context(), &cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
