package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long: `Init creates the configuration directory with a default config.yaml
(left untouched if it exists) and the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureConfigDir(a.configDir); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}
			cfg := a.cfg
			cfg.DataDir = a.flags.dataDir
			if _, err := writeConfigIfMissing(a.configDir, cfg); err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}
			if err := a.layout.Ensure(); err != nil {
				return sysError(fmt.Errorf("create data directory: %w", err))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Pantry initialized successfully")
			fmt.Fprintln(w, "  config:", a.configDir)
			fmt.Fprintln(w, "  data:  ", a.layout.DataDir)
			return nil
		},
	}
}
