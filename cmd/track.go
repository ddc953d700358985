package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/careerkit/internal/buildtrack"
	"github.com/khrees2412/careerkit/internal/export"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Follow the build track and prepare your final submission",
	Long:  "Complete the build track steps in order, record your project links and generate the final submission text",
}

var statusTrackCmd = &cobra.Command{
	Use:   "status",
	Short: "Show build track progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		tracker := application.BuildTrack
		st := tracker.State()

		cmd.Println(titleStyle.Render("Build Track: " + string(tracker.Status())))
		for i, step := range tracker.Steps() {
			s := st.Steps[i]
			var mark string
			switch s.Status {
			case models.StepCompleted:
				mark = goodStyle.Render("✓")
			case models.StepUnlocked:
				mark = fairStyle.Render("→")
			default:
				mark = mutedStyle.Render("🔒")
			}
			cmd.Printf("  %s %s %s", mark, labelStyle.Render(step.ID), step.Name)
			if a, ok := st.Artifacts[buildtrack.ArtifactKey(step.ID)]; ok && a.FileName != "" {
				cmd.Printf(" %s", mutedStyle.Render("("+a.FileName+")"))
			}
			cmd.Println()
		}

		cmd.Println(labelStyle.Render("\nSubmission Links"))
		linkErrs := buildtrack.ValidateLinks(st.Links)
		for _, l := range []struct{ field, label, value string }{
			{"lovableLink", "Lovable:", st.Links.Lovable},
			{"githubLink", "GitHub:", st.Links.GitHub},
			{"deployLink", "Deploy:", st.Links.Deploy},
		} {
			cmd.Printf("  %s %s", labelStyle.Render(l.label), orDash(l.value))
			if msg, bad := linkErrs[l.field]; bad {
				cmd.Printf(" %s", errorStyle.Render(msg))
			}
			cmd.Println()
		}

		if tracker.Shipped() {
			cmd.Println(goodStyle.Render("\nProject 3 Shipped Successfully."))
		}
		return nil
	},
}

var completeTrackCmd = &cobra.Command{
	Use:   "complete [step-id]",
	Short: "Complete the current step (or the given one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		tracker := application.BuildTrack

		step, _, ok := tracker.Current()
		if len(args) == 1 {
			step = buildtrack.Step{ID: args[0], Name: args[0]}
			for _, s := range tracker.Steps() {
				if s.ID == args[0] {
					step = s
				}
			}
		} else if !ok {
			cmd.Println("Every step is already completed.")
			return nil
		}

		fileName, _ := cmd.Flags().GetString("artifact")
		if fileName == "" {
			fileName = step.ID + ".txt"
		}

		completed, err := tracker.Complete(step.ID, fileName, application.Now())
		if err != nil {
			return err
		}
		if !completed {
			return fmt.Errorf("step %s is locked or already completed; finish the current step first", step.ID)
		}

		cmd.Printf("✓ Completed %s\n", step.Name)
		if next, _, ok := tracker.Current(); ok {
			cmd.Printf("  Next: %s %s\n", labelStyle.Render(next.ID), next.Name)
		} else {
			cmd.Println("  All steps done. Add your links with 'careerkit track links'.")
		}
		return nil
	},
}

var linksTrackCmd = &cobra.Command{
	Use:   "links",
	Short: "Record your Lovable, GitHub and deployment links",
	Example: `  careerkit track links --lovable https://lovable.dev/projects/x --github https://github.com/me/app --deploy https://app.vercel.app`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		tracker := application.BuildTrack
		links := tracker.State().Links
		if cmd.Flags().Changed("lovable") {
			links.Lovable, _ = cmd.Flags().GetString("lovable")
		}
		if cmd.Flags().Changed("github") {
			links.GitHub, _ = cmd.Flags().GetString("github")
		}
		if cmd.Flags().Changed("deploy") {
			links.Deploy, _ = cmd.Flags().GetString("deploy")
		}
		links.Lovable = strings.TrimSpace(links.Lovable)
		links.GitHub = strings.TrimSpace(links.GitHub)
		links.Deploy = strings.TrimSpace(links.Deploy)

		linkErrs, err := tracker.SetLinks(links)
		if err != nil {
			return err
		}
		if len(linkErrs) > 0 {
			cmd.Println(errorStyle.Render("Some links are invalid:"))
			cmd.Print(linkErrs.Error())
			cmd.Println()
			return nil
		}

		cmd.Println("✓ Links saved")
		cmd.Printf("  %s %s\n", labelStyle.Render("Status:"), tracker.Status())
		return nil
	},
}

var submissionTrackCmd = &cobra.Command{
	Use:   "submission",
	Short: "Generate the final submission text",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		preset, _ := cmd.Flags().GetString("project")
		out, _ := cmd.Flags().GetString("out")

		var s export.Submission
		switch strings.ToLower(preset) {
		case "resume":
			s = export.ResumeSubmission
		case "jobs", "tracker":
			s = export.JobTrackerSubmission
		case "placement", "prep":
			s = export.PlacementSubmission
		default:
			return fmt.Errorf("unknown project %q (must be resume, jobs or placement)", preset)
		}

		links := application.BuildTrack.State().Links
		text := export.SubmissionText(s.WithLinks(links.Lovable, links.GitHub, links.Deploy))
		return writeOutput(cmd, out, text+"\n")
	},
}

var resetTrackCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all build track progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.BuildTrack.Reset(); err != nil {
			return err
		}
		cmd.Println("✓ Build track reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(statusTrackCmd)
	trackCmd.AddCommand(completeTrackCmd)
	trackCmd.AddCommand(linksTrackCmd)
	trackCmd.AddCommand(submissionTrackCmd)
	trackCmd.AddCommand(resetTrackCmd)

	completeTrackCmd.Flags().String("artifact", "", "Name of the artifact file for the step")

	linksTrackCmd.Flags().String("lovable", "", "Lovable project link")
	linksTrackCmd.Flags().String("github", "", "GitHub repository link")
	linksTrackCmd.Flags().String("deploy", "", "Deployed URL")

	submissionTrackCmd.Flags().String("project", "resume", "Project preset (resume, jobs, placement)")
	submissionTrackCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}
