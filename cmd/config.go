package cmd

import (
	"fmt"

	"github.com/khrees2412/careerkit/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		cfg := application.Config

		cmd.Println(titleStyle.Render("Configuration"))
		cmd.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		cmd.Printf("%s %s\n", labelStyle.Render("Data Dir:"), cfg.DataDir)
		cmd.Printf("%s %s (%s)\n", labelStyle.Render("Log Level:"), cfg.LogLevel, cfg.LogFormat)
		cmd.Printf("%s %s\n", labelStyle.Render("Fetch Timeout:"), cfg.FetchTimeout)
		cmd.Printf("%s %s\n", labelStyle.Render("User Agent:"), cfg.UserAgent)

		if cfg.UseBrowser {
			cmd.Printf("%s %s\n", labelStyle.Render("Browser Rendering:"), "✓ Enabled")
		} else {
			cmd.Printf("%s %s\n", labelStyle.Render("Browser Rendering:"), "✗ Disabled")
		}

		if cfg.CatalogFile != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Job Catalog:"), cfg.CatalogFile)
		} else {
			cmd.Printf("%s %s\n", labelStyle.Render("Job Catalog:"), "built-in")
		}
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Args:  cobra.ExactArgs(2),
	Example: `  careerkit config set log_level debug
  careerkit config set use_browser true
  careerkit config set fetch_timeout 30s
  careerkit config set catalog_file ~/jobs.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("error updating config: %w", err)
		}

		cmd.Printf("✓ Configuration updated: %s\n", key)

		// Reload config
		if err := config.Initialize(); err != nil {
			cmd.Printf("Warning: Could not reload config: %v\n", err)
		}
		return nil
	},
}

var pathConfigCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(pathConfigCmd)
}
