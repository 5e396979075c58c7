package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/overlaykit/reticle/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved settings to defaults",
	Long: `Reset the persisted settings file to the compiled-in defaults.

Key bindings and the polling rate are kept: they can only be changed by
editing the file, so a hand-edited value survives the reset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settingsPath()
		// Load falls back to defaults on an unreadable file, which is
		// exactly what reset wants anyway.
		settings, _ := config.Load(path)
		settings.Reset()
		if err := config.Save(path, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Printf("Settings reset: %s\n", path)
		return nil
	},
}
