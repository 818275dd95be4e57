package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "smartselect [dir]",
	Short: "Demo program for the smartselect dropdown component",
	Long: `Mounts three smartselect widgets in one Bubble Tea program: a
single-select, a multi-select with chips, and a remote select backed by a
debounced HTTP query. Settings are read from .smartselect.toml in the target
directory; a default file is written when none exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := configDir
		if dir == "" && len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
		}
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		// Set up logging
		logFile, err := os.OpenFile("smartselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}

		cfg := loadOrCreateConfig(absDir)
		log.Printf("Starting demo with config from %s", absDir)

		p := tea.NewProgram(newApp(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configDir, "dir", "d", "", "Directory holding .smartselect.toml")
}
