package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagWindow    int
	flagTick      time.Duration
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "pixelpeeker",
	Short: "Pick colors from the screen, magnified",
	Long: `pixelpeeker samples the desktop pixel under a movable crosshair,
shows a magnified preview grid around it, and copies the picked color
in RGB, HEX, HSV, HSL or OKLCH form.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagWindow, "window", defaultWindow,
		"preview grid edge length (odd, at least 3)")
	rootCmd.Flags().DurationVar(&flagTick, "tick", defaultTick,
		"sampling tick period")
	rootCmd.Flags().StringVar(&flagConfigDir, "config-dir", "",
		"settings directory (default ~/.pixelpeeker)")
}

func run() error {
	if flagWindow < 3 || flagWindow%2 == 0 {
		return fmt.Errorf("--window must be odd and at least 3, got %d", flagWindow)
	}
	if flagConfigDir != "" {
		settingsDir = flagConfigDir
	}
	setupLogging()

	settings := LoadSettings()
	picker := NewPicker(NewBackend(), flagWindow)
	picker.SeedHistory(historyColors(settings.History))

	p := tea.NewProgram(newModel(picker, settings, flagTick), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}

	m := result.(model)
	settings.History = historyStrings(picker.History())
	settings.Zoom = m.zoom
	settings.Format = m.format.String()
	if err := SaveSettings(settings); err != nil {
		log.WithError(err).Warn("saving settings failed")
	}
	return nil
}

// setupLogging routes logs to a file under the settings directory; writing
// to stderr would corrupt the alternate screen.
func setupLogging() {
	log.SetLevel(log.WarnLevel)
	path, err := settingsPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "pixelpeeker.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
