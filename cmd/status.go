package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/careerkit/internal/app"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var statusJobCmd = &cobra.Command{
	Use:   "status <job-id> [status]",
	Short: "View or update the application status of a job",
	Args:  cobra.RangeArgs(1, 2),
	Example: `  careerkit jobs status job-3
  careerkit jobs status job-3 applied
  careerkit jobs status job-3 "not applied"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		job, err := application.Tracker.Job(args[0])
		if err != nil {
			return err
		}

		if len(args) == 1 {
			cmd.Printf("%s at %s: %s\n", job.Title, job.Company, statusLabel(application.Tracker.Repository().Status(job.ID)))
			return nil
		}

		status, ok := models.ParseJobStatus(args[1])
		if !ok {
			names := make([]string, len(models.JobStatuses))
			for i, s := range models.JobStatuses {
				names[i] = string(s)
			}
			return fmt.Errorf("%w: status must be one of: %s", app.ErrInvalidArgument, strings.Join(names, ", "))
		}

		changed, err := application.Tracker.SetStatus(job.ID, status, application.Now())
		if err != nil {
			return err
		}
		if !changed {
			cmd.Printf("Status is already %s\n", status)
			return nil
		}
		cmd.Printf("✓ Status updated: %s\n", statusLabel(status))
		return nil
	},
}

var historyJobsCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent status changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		history := application.Tracker.Repository().History()
		if len(history) == 0 {
			cmd.Println("No status changes yet. Update one with 'careerkit jobs status <job-id> <status>'")
			return nil
		}

		cmd.Println(titleStyle.Render("Recent Status Updates"))
		for _, u := range history {
			cmd.Printf("  • %s at %s → %s\n", u.Title, u.Company, statusLabel(u.Status))
			cmd.Printf("    %s\n", mutedStyle.Render(u.ChangedAt.Local().Format("Jan 2, 2006 15:04")))
		}
		return nil
	},
}

func statusLabel(status models.JobStatus) string {
	switch status {
	case models.StatusApplied:
		return infoStyle.Render("✅ Applied")
	case models.StatusRejected:
		return poorStyle.Render("❌ Rejected")
	case models.StatusSelected:
		return goodStyle.Render("🎉 Selected")
	case models.StatusNotApplied, "":
		return mutedStyle.Render("Not Applied")
	}
	return string(status)
}

func init() {
	jobsCmd.AddCommand(statusJobCmd)
	jobsCmd.AddCommand(historyJobsCmd)
}
