package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/overlaykit/reticle/internal/config"
	"github.com/overlaykit/reticle/internal/dialog"
	"github.com/overlaykit/reticle/internal/hotkey"
	"github.com/overlaykit/reticle/internal/monitor"
	"github.com/overlaykit/reticle/internal/notify"
	"github.com/overlaykit/reticle/internal/overlay"
	"github.com/overlaykit/reticle/internal/systray"
)

var (
	version    = "dev"
	debugMode  bool
	configFile string
)

// SetVersion sets the application version (called from main)
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "reticle",
	Short: "Always-on-top crosshair overlay",
	Long: `Reticle draws a crosshair centered on your monitor, on top of every
window and transparent to clicks.

Control it from the system tray, or with hotkeys while in adjust mode:
  - Arrow keys move the crosshair, PageUp/PageDown scale it
  - Ctrl+J toggles adjust mode, Ctrl+H hides the crosshair
  - Ctrl+M cycles monitors, Ctrl+K opens the color picker

Settings persist across sessions; a custom PNG (with alpha channel) can
replace the built-in cross.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debugMode {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOverlay()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: ~/.config/reticle/config.toml)")

	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func settingsPath() string {
	if configFile != "" {
		return configFile
	}
	return config.DefaultPath()
}

func runOverlay() error {
	path := settingsPath()
	settings, err := config.Load(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("settings unreadable, using defaults")
		notify.ConfigLoadFailed(err)
	}

	ctl := overlay.NewController(settings, overlay.NewBackend(), monitor.Detect())
	if err := ctl.Create(); err != nil {
		// The overlay is the whole program; without a window there is
		// nothing to degrade to.
		return err
	}
	defer ctl.Close()

	hk, err := hotkey.NewManager(hotkey.NewPoller(), &settings.Bindings)
	if err != nil {
		return fmt.Errorf("compiling key bindings: %w", err)
	}

	tray := systray.New(settings.Visible)
	loop := &overlay.Loop{
		Controller: ctl,
		Hotkeys:    hk,
		Tray:       tray,
		Dialogs:    dialog.New(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := loop.Run(ctx); err != nil {
			log.Error().Err(err).Msg("overlay loop failed")
		}
		systray.Quit()
	}()

	// Blocks until the loop quits the tray. Some platforms require the
	// tray event loop on the main thread.
	systray.Run(tray)

	if err := config.Save(path, settings); err != nil {
		log.Error().Str("path", path).Err(err).Msg("failed to save settings")
		notify.ConfigSaveFailed(err)
	} else {
		log.Info().Str("path", path).Msg("settings saved")
	}
	return nil
}
