package cmd

import (
	"fmt"

	"github.com/khrees2412/careerkit/internal/ats"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View tracking statistics",
	Long:  "Display how many jobs you have saved, applied to and matched, along with your resume and readiness scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		stats := application.Tracker.Stats()

		cmd.Println(titleStyle.Render("Job Tracker Statistics"))

		// Overall stats
		cmd.Printf("%s\n", labelStyle.Render("Overview"))
		cmd.Printf("  Jobs in catalog: %d\n", stats.Total)
		cmd.Printf("  Saved: %d\n", stats.Saved)
		cmd.Printf("  Matching your preferences: %d\n", stats.Matches)

		// Status breakdown
		cmd.Printf("\n%s\n", labelStyle.Render("Status Breakdown"))
		for _, status := range models.JobStatuses {
			count := stats.ByStatus[status]
			percentage := 0.0
			if stats.Total > 0 {
				percentage = float64(count) / float64(stats.Total) * 100
			}
			cmd.Printf("  %s: %d (%.1f%%)\n", statusLabel(status), count, percentage)
		}

		// Response rate
		applied := stats.ByStatus[models.StatusApplied] + stats.ByStatus[models.StatusRejected] + stats.ByStatus[models.StatusSelected]
		if applied > 0 {
			cmd.Printf("\n%s\n", labelStyle.Render("Outcomes"))
			cmd.Printf("  Responses: %.1f%%\n", float64(applied-stats.ByStatus[models.StatusApplied])/float64(applied)*100)
			cmd.Printf("  Selection Rate: %.1f%%\n", float64(stats.ByStatus[models.StatusSelected])/float64(applied)*100)
		}

		if stats.RecentChange != nil {
			cmd.Printf("\n%s\n", labelStyle.Render("Last Update"))
			cmd.Printf("  %s: %s at %s → %s\n", stats.RecentChange.ChangedAt.Local().Format("Jan 2"),
				stats.RecentChange.Title, stats.RecentChange.Company, stats.RecentChange.Status)
		}

		// Resume and readiness
		cmd.Printf("\n%s\n", labelStyle.Render("Readiness"))
		resumeScore := ats.Score(application.Resume.Get()).Score
		cmd.Printf("  Resume ATS score: %s\n", bandStyle(resumeScore).Render(fmt.Sprintf("%d/100", resumeScore)))
		latest, ok, err := application.History.Latest()
		if err != nil {
			return err
		}
		if ok {
			cmd.Printf("  Latest readiness score: %s (%s)\n", bandStyle(latest.FinalScore).Render(fmt.Sprintf("%d/100", latest.FinalScore)), analysisLabel(latest))
		}
		cmd.Printf("  Build track: %s\n", application.BuildTrack.Status())
		return nil
	},
}

func init() {
	jobsCmd.AddCommand(statsCmd)
}
