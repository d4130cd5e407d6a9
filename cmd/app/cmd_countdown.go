package main

import (
	"context"
	"fmt"
	"io"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/spf13/cobra"
)

// countdownCmd runs the countdown without the full-screen UI
var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Print the countdown to stdout",
	Long: `Run the reveal countdown headless, printing MM:SS on every tick and the
welcome line once it completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runHeadless(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

func runHeadless(ctx context.Context, w io.Writer, cfg config.Config) error {
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	defer ctrl.Stop()

	fmt.Fprintln(w, ctrl.State().Remaining)
	ctrl.Start(ctx)
	for {
		select {
		case ev := <-ctrl.Events():
			fmt.Fprintln(w, ev.State.Remaining)
			if ev.Completed {
				fmt.Fprintln(w, "Welcome to "+config.BrandName)
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
