package cli

import (
	"github.com/spf13/cobra"

	"venue-webapp/app"
)

func newSeedCommand() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write sample shows, users and photos into the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Seed(cmd.Context(), cfg, reset, log)
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "replace existing data with the samples")
	return cmd
}
