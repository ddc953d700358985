package cmd

import (
	"bufio"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/khrees2412/careerkit/internal/app"
	"github.com/khrees2412/careerkit/internal/matcher"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively",
	Long:  "Launch an interactive terminal browser over your best matching jobs to save them and update their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		sortName, _ := cmd.Flags().GetString("sort")
		order, ok := matcher.ParseSortOrder(sortName)
		if !ok {
			return fmt.Errorf("unknown sort %q", sortName)
		}
		return runBrowser(cmd, application, order)
	},
}

const browsePageSize = 15

func runBrowser(cmd *cobra.Command, application *app.App, order matcher.SortOrder) error {
	jobs := application.Tracker.Dashboard(matcher.Filters{}, order)
	if len(jobs) == 0 {
		cmd.Println("No jobs found.")
		return nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	page := 0

	for {
		start := page * browsePageSize
		end := min(start+browsePageSize, len(jobs))

		// Display job list
		cmd.Println(titleStyle.Render(fmt.Sprintf("Job Browser (%d-%d of %d)", start+1, end, len(jobs))))
		cmd.Println("Enter a job number to view details, 'n'/'p' to page, 'q' to quit")
		cmd.Println()

		for i := start; i < end; i++ {
			job := jobs[i]
			cmd.Printf("%3d. %s at %s %s\n", i+1, job.Title, job.Company,
				matchStyle(job.MatchScore).Render(fmt.Sprintf("%d%%", job.MatchScore)))
		}

		cmd.Print("\n> ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if err != nil && input == "" {
			return nil
		}

		switch strings.ToLower(input) {
		case "q":
			return nil
		case "n":
			if end < len(jobs) {
				page++
			}
			continue
		case "p":
			if page > 0 {
				page--
			}
			continue
		}

		jobNum, err := strconv.Atoi(input)
		if err != nil || jobNum < 1 || jobNum > len(jobs) {
			cmd.Println("Invalid selection")
			continue
		}

		if quit := displayJobDetails(cmd, application, jobs[jobNum-1], reader); quit {
			return nil
		}
	}
}

// displayJobDetails shows one job until the user goes back. It reports
// whether input ended.
func displayJobDetails(cmd *cobra.Command, application *app.App, job models.ScoredJob, reader *bufio.Reader) bool {
	repo := application.Tracker.Repository()
	for {
		cmd.Println("\n" + strings.Repeat("=", 60))
		cmd.Println(titleStyle.Render(job.Title))
		cmd.Printf("%s %s\n", labelStyle.Render("Company:"), job.Company)
		cmd.Printf("%s %s (%s)\n", labelStyle.Render("Location:"), job.Location, job.Mode)
		cmd.Printf("%s %s\n", labelStyle.Render("Salary:"), job.SalaryRange)
		cmd.Printf("%s %s\n", labelStyle.Render("Skills:"), strings.Join(job.Skills, ", "))
		cmd.Printf("%s %s\n", labelStyle.Render("Apply:"), job.ApplyURL)
		cmd.Printf("%s %d%%\n", labelStyle.Render("Match Score:"), job.MatchScore)
		cmd.Printf("%s %s\n", labelStyle.Render("Status:"), statusLabel(repo.Status(job.ID)))
		saved := slices.Contains(repo.Saved(), job.ID)

		cmd.Println("\nOptions:")
		if saved {
			cmd.Println("  [s] Unsave")
		} else {
			cmd.Println("  [s] Save")
		}
		cmd.Println("  [a] Mark Applied")
		cmd.Println("  [r] Mark Rejected")
		cmd.Println("  [x] Mark Selected")
		cmd.Println("  [d] Show description")
		cmd.Println("  [b] Back to list")
		cmd.Print("\n> ")

		choice, err := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))
		if err != nil && choice == "" {
			return true
		}

		var status models.JobStatus
		switch choice {
		case "s":
			if _, err := application.Tracker.ToggleSaved(job.ID); err != nil {
				cmd.Printf("Error: %v\n", err)
			}
			continue
		case "a":
			status = models.StatusApplied
		case "r":
			status = models.StatusRejected
		case "x":
			status = models.StatusSelected
		case "d":
			cmd.Println(labelStyle.Render("\nDescription:"))
			cmd.Println(job.Description)
			continue
		case "b":
			return false
		default:
			cmd.Println("Invalid choice")
			continue
		}

		if _, err := application.Tracker.SetStatus(job.ID, status, application.Now()); err != nil {
			cmd.Printf("Error: %v\n", err)
			continue
		}
		cmd.Printf("✓ Status updated: %s\n", statusLabel(status))
	}
}

func init() {
	jobsCmd.AddCommand(browseCmd)
	browseCmd.Flags().String("sort", "match", "Sort order (latest, oldest, match, salary)")
}
