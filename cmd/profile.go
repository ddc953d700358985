package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/careerkit/internal/app"
	"github.com/khrees2412/careerkit/internal/catalog"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fairStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	poorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// bandStyle colors a 0-100 score red, amber or green
func bandStyle(score int) lipgloss.Style {
	switch {
	case score < 41:
		return poorStyle
	case score < 71:
		return fairStyle
	default:
		return goodStyle
	}
}

// matchStyle colors a job match score badge
func matchStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return goodStyle
	case score >= 60:
		return fairStyle
	case score >= 40:
		return valueStyle
	default:
		return mutedStyle
	}
}

// scoreBar renders a 20 cell progress bar for a 0-100 score
func scoreBar(score int) string {
	filled := min(max(score, 0), 100) / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return bandStyle(score).Render(bar) + fmt.Sprintf(" %d/100", score)
}

// titleCase converts a string to title case using proper locale-aware capitalization
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return mutedStyle.Render("-")
	}
	return s
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage your job matching preferences",
	Long:  "View and update the role keywords, locations, modes, experience and skills used to score jobs",
}

var showPrefsCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		printPreferences(cmd, application.Tracker.Repository().Preferences())
		return nil
	},
}

var setPrefsCmd = &cobra.Command{
	Use:   "set",
	Short: "Update your preferences",
	Example: `  careerkit prefs set --keywords "frontend, react" --skills "React, TypeScript"
  careerkit prefs set --locations Bangalore,Pune --modes Remote,Hybrid
  careerkit prefs set --experience Fresher --min-score 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		repo := application.Tracker.Repository()
		prefs := repo.Preferences()
		flags := cmd.Flags()

		if flags.Changed("keywords") {
			prefs.RoleKeywords, _ = flags.GetString("keywords")
		}
		if flags.Changed("skills") {
			prefs.Skills, _ = flags.GetString("skills")
		}
		if flags.Changed("locations") {
			prefs.PreferredLocations, _ = flags.GetStringSlice("locations")
		}
		if flags.Changed("modes") {
			modes, _ := flags.GetStringSlice("modes")
			prefs.PreferredMode, err = normalizeModes(modes)
			if err != nil {
				return err
			}
		}
		if flags.Changed("experience") {
			prefs.ExperienceLevel, _ = flags.GetString("experience")
		}
		if flags.Changed("min-score") {
			prefs.MinMatchScore, _ = flags.GetInt("min-score")
		}

		if err := repo.SetPreferences(prefs); err != nil {
			return err
		}

		cmd.Println("✓ Preferences saved")
		printPreferences(cmd, prefs)
		return nil
	},
}

func normalizeModes(modes []string) ([]string, error) {
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		found := false
		for _, mode := range catalog.Modes {
			if strings.EqualFold(strings.TrimSpace(m), string(mode)) {
				out = append(out, string(mode))
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: unknown mode %q (must be one of: Remote, Hybrid, Onsite)", app.ErrInvalidArgument, m)
		}
	}
	return out, nil
}

func printPreferences(cmd *cobra.Command, p models.Preferences) {
	cmd.Println(titleStyle.Render("Preferences"))
	cmd.Printf("%s %s\n", labelStyle.Render("Role Keywords:"), orDash(p.RoleKeywords))
	cmd.Printf("%s %s\n", labelStyle.Render("Locations:"), orDash(strings.Join(p.PreferredLocations, ", ")))
	cmd.Printf("%s %s\n", labelStyle.Render("Modes:"), orDash(strings.Join(p.PreferredMode, ", ")))
	cmd.Printf("%s %s\n", labelStyle.Render("Experience:"), orDash(p.ExperienceLevel))
	cmd.Printf("%s %s\n", labelStyle.Render("Skills:"), orDash(p.Skills))
	cmd.Printf("%s %d\n", labelStyle.Render("Min Match Score:"), p.MinMatchScore)

	if strings.TrimSpace(p.RoleKeywords) == "" {
		cmd.Println(mutedStyle.Render("\nSet your preferences to activate intelligent matching."))
	}
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(showPrefsCmd)
	prefsCmd.AddCommand(setPrefsCmd)

	setPrefsCmd.Flags().String("keywords", "", "Comma-separated role keywords")
	setPrefsCmd.Flags().String("skills", "", "Comma-separated skills")
	setPrefsCmd.Flags().StringSlice("locations", nil, "Preferred locations")
	setPrefsCmd.Flags().StringSlice("modes", nil, "Preferred work modes (Remote, Hybrid, Onsite)")
	setPrefsCmd.Flags().String("experience", "", "Experience level (Fresher, 0-1, 1-3, 3-5, All)")
	setPrefsCmd.Flags().Int("min-score", 40, "Minimum match score (0-100)")
}
