package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/growth-advisor/internal/aggregation"
	"github.com/jonathan/growth-advisor/internal/layout"
	"github.com/jonathan/growth-advisor/internal/observability"
	"github.com/jonathan/growth-advisor/internal/overrides"
	"github.com/jonathan/growth-advisor/internal/report"
	"github.com/jonathan/growth-advisor/internal/session"
	"github.com/jonathan/growth-advisor/internal/toggles"
)

var (
	generateStudentID string
	generateVerbose   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a growth advisory report for a student",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateStudentID, "student", "", "student id (required)")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "print the compiled summary and prompt details")
	_ = generateCmd.MarkFlagRequired("student")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
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

	repos, closeRepos, err := openRepos(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepos()

	toggleStore, err := toggles.Load(ctx, kv)
	if err != nil {
		return err
	}
	overrideStore := overrides.NewStore(kv, generateStudentID)
	layoutStore, err := layout.Load(ctx, kv, generateStudentID, overrideStore)
	if err != nil {
		return err
	}
	if err := layoutStore.BindToggles(ctx, toggleStore); err != nil {
		return err
	}

	generator, err := report.NewGemini(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		printFailure(report.Classify(err))
		return err
	}
	defer generator.Close()

	sess := session.New(session.Config{
		StudentID:  generateStudentID,
		Aggregator: aggregation.New(repos),
		Generator:  generator,
		Layout:     layoutStore,
		Overrides:  overrideStore,
		Sink:       newSink(cfg),
	})

	printer := observability.NewPrinter(os.Stdout)

	if generateVerbose || cfg.Verbose {
		summary, err := aggregation.New(repos).Compile(ctx, generateStudentID)
		if err == nil {
			printer.PrintSummary(summary)
		}
	}

	if err := sess.Generate(ctx); err != nil {
		kind, _ := sess.Failure()
		printFailure(kind)
		return err
	}

	resolved, err := sess.Resolve(ctx)
	if err != nil {
		return err
	}
	printer.PrintReport(sess.Report(), resolved.GrowthSummary, resolved.Strengths, resolved.FocusAreas)
	printer.PrintActionPlan(sess.ActionPlan().Steps())
	printer.PrintWidgets(sess.VisibleWidgets())
	return nil
}

// printFailure writes the single user-facing message for a failure kind.
func printFailure(kind session.FailureKind) {
	var msg string
	switch kind {
	case session.FailureNotFound:
		msg = "Student profile not found."
	case report.FailureConfiguration:
		msg = "The advisor service is not configured. Please contact support."
	case report.FailureSchema:
		msg = "Received an invalid format from the advisor service. Please try again."
	case report.FailureQuota:
		msg = "The advisor service quota is exhausted. Please try again later."
	default:
		msg = "An error occurred while generating growth advice. Please try again later."
	}
	fmt.Fprintln(os.Stderr, msg)
}
