package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-advisor/internal/toggles"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Inspect and switch optional features",
}

var featuresGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show whether a feature is enabled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withToggles(cmd, func(t *toggles.Store) error {
			fmt.Println(t.Get(args[0]))
			return nil
		})
	},
}

var featuresSetCmd = &cobra.Command{
	Use:   "set <name> <true|false>",
	Short: "Enable or disable a feature",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[1])
		}
		return withToggles(cmd, func(t *toggles.Store) error {
			return t.Set(cmd.Context(), args[0], enabled)
		})
	},
}

func init() {
	featuresCmd.AddCommand(featuresGetCmd, featuresSetCmd)
	rootCmd.AddCommand(featuresCmd)
}

func withToggles(cmd *cobra.Command, fn func(*toggles.Store) error) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kv, err := openKV(ctx, cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	t, err := toggles.Load(ctx, kv)
	if err != nil {
		return err
	}
	return fn(t)
}
