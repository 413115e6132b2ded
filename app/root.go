// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	devMode    bool

	cfg config.Config
	err error
)

var rootCmd = &cobra.Command{
	Use:   "webfolio",
	Short: "Webfolio serves a portfolio website with its admin area",
	Long: `Webfolio serves a company portfolio website: projects, team, skills,
services and FAQs managed by staff in an admin area, with contact messages
and newsletter subscriptions from visitors.`,
	Args: cobra.OnlyValidArgs,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			return err
		}

		if devMode {
			cfg.DevMode = true
		}

		return logger.Init(cfg.Log)
	},
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration directory holding main.toml (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
