package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-advisor/internal/layout"
	"github.com/jonathan/growth-advisor/internal/observability"
	"github.com/jonathan/growth-advisor/internal/overrides"
	"github.com/jonathan/growth-advisor/internal/store"
)

var widgetsStudentID string

var widgetsCmd = &cobra.Command{
	Use:   "widgets",
	Short: "Inspect and rearrange the report widget layout",
}

var widgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the widget layout, hidden widgets included",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withLayout(cmd, func(s *layout.Store) error {
			observability.NewPrinter(os.Stdout).PrintWidgets(s.Snapshot())
			return nil
		})
	},
}

var widgetsShowCmd = &cobra.Command{
	Use:   "show <widget-id>",
	Short: "Make a widget visible",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLayout(cmd, func(s *layout.Store) error {
			return s.SetVisibility(cmd.Context(), args[0], true)
		})
	},
}

var widgetsHideCmd = &cobra.Command{
	Use:   "hide <widget-id>",
	Short: "Hide a widget without changing its position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLayout(cmd, func(s *layout.Store) error {
			return s.SetVisibility(cmd.Context(), args[0], false)
		})
	},
}

var widgetsMoveCmd = &cobra.Command{
	Use:   "move <widget-id> <up|down>",
	Short: "Move a widget one position up or down",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := layout.Direction(args[1])
		if dir != layout.MoveUp && dir != layout.MoveDown {
			return fmt.Errorf("direction must be up or down, got %q", args[1])
		}
		return withLayout(cmd, func(s *layout.Store) error {
			return s.Move(cmd.Context(), args[0], dir)
		})
	},
}

var widgetsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default layout and clear content overrides",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withLayout(cmd, func(s *layout.Store) error {
			if err := s.RestoreDefaults(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Widgets and their content restored to default.")
			return nil
		})
	},
}

func init() {
	widgetsCmd.PersistentFlags().StringVar(&widgetsStudentID, "student", "", "student id (required)")
	_ = widgetsCmd.MarkPersistentFlagRequired("student")
	widgetsCmd.AddCommand(widgetsListCmd, widgetsShowCmd, widgetsHideCmd, widgetsMoveCmd, widgetsResetCmd)
	rootCmd.AddCommand(widgetsCmd)
}

// withLayout loads the persisted layout for the flagged student, runs fn,
// and closes the store.
func withLayout(cmd *cobra.Command, fn func(*layout.Store) error) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kv, err := openKV(ctx, cfg)
	if err != nil {
		return err
	}
	defer func(kv store.KV) { _ = kv.Close() }(kv)

	ov := overrides.NewStore(kv, widgetsStudentID)
	s, err := layout.Load(ctx, kv, widgetsStudentID, ov)
	if err != nil {
		return err
	}
	return fn(s)
}
