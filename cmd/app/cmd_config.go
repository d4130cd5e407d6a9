package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "countdown: %s (tick %s)\n", cfg.Countdown.Duration, cfg.Countdown.Tick)
		fmt.Fprintf(cmd.OutOrStdout(), "audio: %s volume %.2f autoplay %t\n", cfg.Audio.Track, cfg.Audio.Volume, cfg.Audio.Autoplay)
		fmt.Fprintf(cmd.OutOrStdout(), "subscribe: latency %s, confirmation %s\n", cfg.Subscribe.Latency, cfg.Subscribe.ConfirmationWindow)
		fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\n", cfg.UI.Theme)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
