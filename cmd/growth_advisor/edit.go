package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-advisor/internal/overrides"
)

var editStudentID string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Set local overrides for generated report fields",
	Long:  "Overrides replace generated content for a single field and persist across regenerations until the layout is reset.",
}

var editSummaryCmd = &cobra.Command{
	Use:   "summary <text>",
	Short: "Override the growth summary text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOverrides(cmd, func(s *overrides.Store) error {
			return s.SetText(cmd.Context(), overrides.FieldGrowthSummary, strings.Join(args, " "))
		})
	},
}

var editStrengthsCmd = &cobra.Command{
	Use:   "strengths <comma-separated list>",
	Short: "Override the identified strengths list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOverrides(cmd, func(s *overrides.Store) error {
			return s.SetList(cmd.Context(), overrides.FieldStrengths, args[0])
		})
	},
}

var editFocusCmd = &cobra.Command{
	Use:   "focus <comma-separated list>",
	Short: "Override the areas-for-focus list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOverrides(cmd, func(s *overrides.Store) error {
			return s.SetList(cmd.Context(), overrides.FieldFocusAreas, args[0])
		})
	},
}

var goalCmd = &cobra.Command{
	Use:   "goal [text]",
	Short: "Show or set the student's current goal",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		goals := overrides.NewGoalStore(kv, editStudentID)
		if len(args) == 0 {
			goal, ok, err := goals.Get(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("No goal set.")
				return nil
			}
			fmt.Println(goal)
			return nil
		}

		goal := strings.TrimSpace(strings.Join(args, " "))
		if goal == "" {
			return fmt.Errorf("goal text must not be empty")
		}
		if err := goals.Set(ctx, goal); err != nil {
			return err
		}
		fmt.Println("Goal set: " + goal)
		return nil
	},
}

func init() {
	editCmd.PersistentFlags().StringVar(&editStudentID, "student", "", "student id (required)")
	_ = editCmd.MarkPersistentFlagRequired("student")
	editCmd.AddCommand(editSummaryCmd, editStrengthsCmd, editFocusCmd)
	rootCmd.AddCommand(editCmd)

	goalCmd.Flags().StringVar(&editStudentID, "student", "", "student id (required)")
	_ = goalCmd.MarkFlagRequired("student")
	rootCmd.AddCommand(goalCmd)
}

func withOverrides(cmd *cobra.Command, fn func(*overrides.Store) error) error {
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

	return fn(overrides.NewStore(kv, editStudentID))
}
