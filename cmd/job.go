package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/khrees2412/careerkit/internal/export"
	"github.com/khrees2412/careerkit/internal/matcher"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and track jobs",
	Long:  "List, filter, save and track catalog jobs scored against your preferences",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs with filters and sorting",
	Example: `  careerkit jobs list --search react --mode Remote
  careerkit jobs list --only-matches --sort match
  careerkit jobs list --status Applied`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		f := matcher.Filters{}
		f.Search, _ = cmd.Flags().GetString("search")
		f.Location, _ = cmd.Flags().GetString("location")
		f.Mode, _ = cmd.Flags().GetString("mode")
		f.Experience, _ = cmd.Flags().GetString("experience")
		f.Source, _ = cmd.Flags().GetString("source")
		f.Status, _ = cmd.Flags().GetString("status")
		f.OnlyMatches, _ = cmd.Flags().GetBool("only-matches")
		sortName, _ := cmd.Flags().GetString("sort")
		limit, _ := cmd.Flags().GetInt("limit")

		order, ok := matcher.ParseSortOrder(sortName)
		if !ok {
			return fmt.Errorf("unknown sort %q (must be latest, oldest, match or salary)", sortName)
		}

		tracker := application.Tracker
		prefs := tracker.Repository().Preferences()
		if f.OnlyMatches && strings.TrimSpace(prefs.RoleKeywords) == "" {
			cmd.Println(mutedStyle.Render("Set your preferences with 'careerkit prefs set' to activate intelligent matching."))
		}

		jobs := tracker.Dashboard(f, order)
		if len(jobs) == 0 {
			cmd.Println("No roles match your criteria. Adjust filters or lower threshold.")
			return nil
		}

		total := len(jobs)
		if limit > 0 && limit < len(jobs) {
			jobs = jobs[:limit]
		}

		statuses := tracker.Repository().Statuses()
		saved := tracker.Repository().Saved()
		cmd.Println(titleStyle.Render(fmt.Sprintf("Jobs (%d of %d)", len(jobs), total)))
		for _, job := range jobs {
			printJobLine(cmd, job, statuses[job.ID], slices.Contains(saved, job.ID))
		}
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show details of a specific job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		job, err := application.Tracker.Scored(args[0])
		if err != nil {
			return err
		}
		repo := application.Tracker.Repository()

		cmd.Println(titleStyle.Render(job.Title))
		cmd.Printf("%s %s\n", labelStyle.Render("Company:"), job.Company)
		cmd.Printf("%s %s (%s)\n", labelStyle.Render("Location:"), job.Location, job.Mode)
		cmd.Printf("%s %s\n", labelStyle.Render("Experience:"), job.Experience)
		cmd.Printf("%s %s\n", labelStyle.Render("Salary:"), job.SalaryRange)
		cmd.Printf("%s %s\n", labelStyle.Render("Skills:"), strings.Join(job.Skills, ", "))
		cmd.Printf("%s %s\n", labelStyle.Render("Source:"), job.Source)
		cmd.Printf("%s %s\n", labelStyle.Render("Posted:"), postedLabel(job.PostedDaysAgo))
		cmd.Printf("%s %s\n", labelStyle.Render("Apply:"), job.ApplyURL)
		if strings.TrimSpace(repo.Preferences().RoleKeywords) != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Match Score:"), matchStyle(job.MatchScore).Render(fmt.Sprintf("%d%%", job.MatchScore)))
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), repo.Status(job.ID))
		if slices.Contains(repo.Saved(), job.ID) {
			cmd.Printf("%s %s\n", labelStyle.Render("Saved:"), "★ yes")
		}

		if job.Description != "" {
			cmd.Println(labelStyle.Render("\nDescription:"))
			cmd.Println(job.Description)
		}
		return nil
	},
}

var saveJobCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Save or unsave a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		saved, err := application.Tracker.ToggleSaved(args[0])
		if err != nil {
			return err
		}
		job, _ := application.Tracker.Job(args[0])
		if saved {
			cmd.Printf("★ Saved: %s at %s\n", job.Title, job.Company)
		} else {
			cmd.Printf("☆ Removed from saved: %s at %s\n", job.Title, job.Company)
		}
		return nil
	},
}

var savedJobsCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		jobs := application.Tracker.SavedJobs()
		if len(jobs) == 0 {
			cmd.Println("No saved jobs yet. Save jobs with 'careerkit jobs save <job-id>'")
			return nil
		}

		statuses := application.Tracker.Repository().Statuses()
		cmd.Println(titleStyle.Render("Saved Jobs"))
		for _, job := range jobs {
			printJobLine(cmd, job, statuses[job.ID], true)
		}
		return nil
	},
}

var digestJobsCmd = &cobra.Command{
	Use:   "digest",
	Short: "Show today's top 10 job digest",
	Long: `Show the daily digest of your 10 best matching jobs. The digest is computed once per day
and reused until midnight, or until you regenerate it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		regenerate, _ := cmd.Flags().GetBool("regenerate")
		mailto, _ := cmd.Flags().GetBool("mailto")
		out, _ := cmd.Flags().GetString("out")

		now := application.Now()
		var (
			digest []models.ScoredJob
			cached bool
		)
		if regenerate {
			digest, err = application.Tracker.RegenerateDigest(now)
		} else {
			digest, cached, err = application.Tracker.Digest(now)
		}
		if err != nil {
			return err
		}

		text := export.DigestText(digest, now)
		if mailto {
			fmt.Fprintln(cmd.OutOrStdout(), export.DigestMailto(text))
			return nil
		}
		if out != "" {
			return writeOutput(cmd, out, text)
		}

		cmd.Println(titleStyle.Render("Top 10 Jobs For You — " + now.Format(export.DigestDateLayout)))
		if len(digest) == 0 {
			cmd.Println("No matching roles today. Check again tomorrow.")
			return nil
		}
		for i, job := range digest {
			cmd.Printf("%s %s at %s\n", labelStyle.Render(fmt.Sprintf("%2d.", i+1)), job.Title, job.Company)
			cmd.Printf("    %s (%s) · %s · %s\n", job.Location, job.Mode, job.Experience,
				matchStyle(job.MatchScore).Render(fmt.Sprintf("%d%% match", job.MatchScore)))
			cmd.Printf("    %s\n", mutedStyle.Render(job.ApplyURL))
		}
		if cached {
			cmd.PrintErrln(mutedStyle.Render("\nThis digest was generated earlier today. Use --regenerate to refresh it."))
		}
		return nil
	},
}

func printJobLine(cmd *cobra.Command, job models.ScoredJob, status models.JobStatus, saved bool) {
	star := " "
	if saved {
		star = "★"
	}
	cmd.Printf("\n%s %s %s\n", star, labelStyle.Render(job.ID), job.Title)
	cmd.Printf("   %s · %s (%s) · %s\n", job.Company, job.Location, job.Mode, job.Experience)
	cmd.Printf("   %s · %s · %s", job.SalaryRange, job.Source, postedLabel(job.PostedDaysAgo))
	cmd.Printf(" · %s", matchStyle(job.MatchScore).Render(fmt.Sprintf("%d%%", job.MatchScore)))
	if status != "" && status != models.StatusNotApplied {
		cmd.Printf(" · %s", statusLabel(status))
	}
	cmd.Println()
}

func postedLabel(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(showJobCmd)
	jobsCmd.AddCommand(saveJobCmd)
	jobsCmd.AddCommand(savedJobsCmd)
	jobsCmd.AddCommand(digestJobsCmd)

	listJobsCmd.Flags().String("search", "", "Search title and company")
	listJobsCmd.Flags().String("location", "", "Filter by location")
	listJobsCmd.Flags().String("mode", "", "Filter by work mode")
	listJobsCmd.Flags().String("experience", "", "Filter by experience level")
	listJobsCmd.Flags().String("source", "", "Filter by source")
	listJobsCmd.Flags().String("status", "", "Filter by status (Not Applied, Applied, Rejected, Selected)")
	listJobsCmd.Flags().Bool("only-matches", false, "Only show jobs above your minimum match score")
	listJobsCmd.Flags().String("sort", "latest", "Sort order (latest, oldest, match, salary)")
	listJobsCmd.Flags().Int("limit", 0, "Maximum number of jobs to show")

	digestJobsCmd.Flags().Bool("regenerate", false, "Recompute today's digest")
	digestJobsCmd.Flags().Bool("mailto", false, "Print a mailto link carrying the digest")
	digestJobsCmd.Flags().StringP("out", "o", "", "Write the digest text to a file")
}
