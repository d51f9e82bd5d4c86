// Package cli holds the venue command line.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"venue-webapp/config"
	"venue-webapp/logger"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "venue",
		Short:         "Music venue website backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand(), newHashPasswordCommand())
	return root
}

func loadConfig() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, logger.New(cfg.LogLevel, cfg.LogPretty), nil
}
