package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khrees2412/careerkit/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerkit",
	Short: "Resume builder, job tracker and placement readiness toolkit",
	Long: `careerkit is a CLI that helps you get placement ready.
It builds and scores your resume, matches you against a job catalog with a daily digest,
and analyzes job descriptions into a readiness score, checklist and prep plan.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if app.GetAppFromContext(cmd.Context()) != nil {
			app.LoggerFromContext(cmd.Context()).WithField("command", cmd.CommandPath()).Debug("running command")
			return nil
		}

		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		application.Log.WithField("command", cmd.CommandPath()).Debug("running command")
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// output goes to stdout, status and errors to stderr
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	cmd, err := rootCmd.ExecuteContextC(ctx)

	// Cleanup: close app resources
	if cmd != nil {
		if appInstance := app.GetAppFromContext(cmd.Context()); appInstance != nil {
			appInstance.Close()
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		cancel()
		os.Exit(1)
	}
}

// getApp returns the App stored by PersistentPreRunE
func getApp(cmd *cobra.Command) (*app.App, error) {
	application := app.GetAppFromContext(cmd.Context())
	if application == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}
