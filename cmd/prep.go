package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/khrees2412/careerkit/internal/export"
	"github.com/khrees2412/careerkit/internal/ingest"
	"github.com/khrees2412/careerkit/internal/placement"
	"github.com/khrees2412/careerkit/internal/readiness"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var prepCmd = &cobra.Command{
	Use:   "prep",
	Short: "Analyze job descriptions for placement readiness",
	Long:  "Extract skills from a job description and get a readiness score, round-wise checklist, 7-day plan and likely interview questions",
}

var analyzePrepCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description",
	Example: `  careerkit prep analyze --company Amazon --role "SDE 1" --file jd.pdf
  careerkit prep analyze --url https://boards.greenhouse.io/acme/jobs/123
  pbpaste | careerkit prep analyze --company Infosys --jd -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		company, _ := cmd.Flags().GetString("company")
		role, _ := cmd.Flags().GetString("role")
		jd, _ := cmd.Flags().GetString("jd")
		file, _ := cmd.Flags().GetString("file")
		url, _ := cmd.Flags().GetString("url")

		switch {
		case file != "":
			jd, err = ingest.FromFile(file)
			if err != nil {
				return err
			}
		case url != "":
			cmd.PrintErrf("Fetching job description from %s...\n", url)
			page, err := ingest.FromURL(cmd.Context(), application.HTTPClient, url, application.IngestOptions())
			if err != nil {
				return err
			}
			jd = page.Text
			if role == "" {
				role = page.Title
			}
		case jd == "-":
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			jd = string(data)
		}

		a, warnings, err := application.Analyzer.Analyze(readiness.Input{Company: company, Role: role, JD: jd})
		if err != nil {
			return err
		}
		for _, w := range warnings {
			cmd.PrintErrln(fairStyle.Render("⚠ " + w))
		}
		if err := application.History.Add(a); err != nil {
			return err
		}

		printAnalysis(cmd, a)
		return nil
	},
}

var listPrepCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		list, err := application.History.List()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			cmd.Println("No analyses yet. Analyze a job description with 'careerkit prep analyze'")
			return nil
		}

		cmd.Println(titleStyle.Render("Analysis History"))
		for _, a := range list {
			cmd.Printf("%s %s %s\n", labelStyle.Render(a.ID), analysisLabel(a),
				bandStyle(a.FinalScore).Render(fmt.Sprintf("%d/100", a.FinalScore)))
			cmd.Printf("   %s\n", mutedStyle.Render(a.CreatedAt.Local().Format("Jan 2, 2006 15:04")))
		}
		return nil
	},
}

var showPrepCmd = &cobra.Command{
	Use:   "show [analysis-id]",
	Short: "Show an analysis (the latest when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		a, err := findAnalysis(application.History, args)
		if err != nil {
			return err
		}
		printAnalysis(cmd, a)
		return nil
	},
}

var togglePrepCmd = &cobra.Command{
	Use:   "toggle <analysis-id> <skill>...",
	Short: "Flip skills between \"I know this\" and \"Need practice\"",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		a, err := application.History.Get(args[0])
		if err != nil {
			return err
		}

		for _, name := range args[1:] {
			skill := matchSkillName(a, name)
			a, err = readiness.ToggleSkill(a, skill, application.Now())
			if err != nil {
				return fmt.Errorf("%w: %s", err, name)
			}
			cmd.Printf("  %s → %s\n", skill, confidenceLabel(a.SkillConfidenceMap[skill]))
		}
		if err := application.History.Update(a); err != nil {
			return err
		}

		cmd.Printf("\n%s %s\n", labelStyle.Render("Readiness:"), scoreBar(a.FinalScore))
		return nil
	},
}

var exportPrepCmd = &cobra.Command{
	Use:   "export [analysis-id]",
	Short: "Export an analysis as text",
	Args:  cobra.MaximumNArgs(1),
	Example: `  careerkit prep export --section plan
  careerkit prep export 1f0e... --out prep.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		a, err := findAnalysis(application.History, args)
		if err != nil {
			return err
		}
		section, _ := cmd.Flags().GetString("section")
		out, _ := cmd.Flags().GetString("out")
		auto, _ := cmd.Flags().GetBool("save")

		var text string
		switch strings.ToLower(section) {
		case "all", "":
			text = export.AnalysisText(a)
		case "checklist":
			text = export.ChecklistText(a.Checklist)
		case "plan":
			text = export.PlanText(a.Plan7Days)
		case "questions":
			text = export.QuestionsText(a.Questions)
		default:
			return fmt.Errorf("unknown section %q (must be all, checklist, plan or questions)", section)
		}
		if out == "" && auto {
			out = export.AnalysisFileName(a)
		}
		return writeOutput(cmd, out, text+"\n")
	},
}

// findAnalysis resolves an optional id argument, defaulting to the latest
func findAnalysis(h *placement.History, args []string) (models.Analysis, error) {
	if len(args) == 1 && args[0] != "latest" {
		return h.Get(args[0])
	}
	a, ok, err := h.Latest()
	if err != nil {
		return models.Analysis{}, err
	}
	if !ok {
		return models.Analysis{}, fmt.Errorf("no analyses yet; run 'careerkit prep analyze' first")
	}
	return a, nil
}

// matchSkillName returns the extracted skill equal to name ignoring case, or
// name itself
func matchSkillName(a models.Analysis, name string) string {
	for _, s := range a.ExtractedSkills.All() {
		if strings.EqualFold(s, name) {
			return s
		}
	}
	return name
}

func analysisLabel(a models.Analysis) string {
	role := a.Role
	if role == "" {
		role = "Role not specified"
	}
	if a.Company == "" {
		return role
	}
	return role + " at " + a.Company
}

func confidenceLabel(c models.SkillConfidence) string {
	if c == models.ConfidenceKnow {
		return goodStyle.Render("I know this")
	}
	return fairStyle.Render("Need practice")
}

func printAnalysis(cmd *cobra.Command, a models.Analysis) {
	cmd.Println(titleStyle.Render("Placement Readiness: " + analysisLabel(a)))
	cmd.Printf("%s %s\n", labelStyle.Render("Readiness:"), scoreBar(a.FinalScore))
	cmd.Printf("%s %d\n", labelStyle.Render("Base Score:"), a.BaseScore)
	cmd.Printf("%s %s\n", labelStyle.Render("Id:"), mutedStyle.Render(a.ID))

	if ci := a.CompanyIntel; ci != nil {
		cmd.Println(labelStyle.Render("\nCompany Intel"))
		cmd.Printf("  %s (%s, %s)\n", ci.Name, ci.Industry, ci.Size)
		cmd.Printf("  %s %s\n", ci.HiringFocus, mutedStyle.Render(ci.HiringFocusDescription))
		cmd.Println(mutedStyle.Render("  Demo Mode: Company intel generated heuristically."))
	}

	if len(a.RoundMapping) > 0 {
		cmd.Println(labelStyle.Render("\nInterview Rounds"))
		for _, r := range a.RoundMapping {
			cmd.Printf("  %d. %s: %s\n", r.Round, r.Title, r.Focus)
			cmd.Printf("     %s\n", mutedStyle.Render(r.WhyItMatters))
		}
	}

	cmd.Println(labelStyle.Render("\nKey Skills"))
	for _, c := range models.SkillCategories {
		list := a.ExtractedSkills.Get(c)
		if len(list) == 0 {
			continue
		}
		names := make([]string, len(list))
		for i, s := range list {
			mark := "○"
			if a.SkillConfidenceMap[s] == models.ConfidenceKnow {
				mark = goodStyle.Render("●")
			}
			names[i] = mark + " " + s
		}
		cmd.Printf("  %s %s\n", labelStyle.Render(categoryHeading(c)+":"), strings.Join(names, "  "))
	}

	cmd.Println(labelStyle.Render("\nRound-wise Checklist"))
	for _, r := range a.Checklist {
		cmd.Printf("  %s\n", r.RoundTitle)
		for _, item := range r.Items {
			cmd.Printf("    ☐ %s\n", item)
		}
	}

	cmd.Println(labelStyle.Render("\n7-Day Plan"))
	for _, d := range a.Plan7Days {
		cmd.Printf("  %s: %s\n", d.Day, d.Focus)
		for _, t := range d.Tasks {
			cmd.Printf("    - %s\n", t)
		}
	}

	cmd.Println(labelStyle.Render("\nLikely Interview Questions"))
	for i, q := range a.Questions {
		cmd.Printf("  %d. %s\n", i+1, q)
	}

	cmd.Println(labelStyle.Render("\nAction Next"))
	weak := readiness.WeakSkills(a)
	if len(weak) > 3 {
		weak = weak[:3]
	}
	if len(weak) > 0 {
		cmd.Printf("  Focus on: %s\n", strings.Join(weak, ", "))
	}
	cmd.Println("  Start Day 1 plan now.")
}

// categoryHeading turns a category key like coreCS into "Core CS"
func categoryHeading(c models.SkillCategory) string {
	if c == models.CategoryCoreCS {
		return "Core CS"
	}
	return titleCase(string(c))
}

func init() {
	rootCmd.AddCommand(prepCmd)
	prepCmd.AddCommand(analyzePrepCmd)
	prepCmd.AddCommand(listPrepCmd)
	prepCmd.AddCommand(showPrepCmd)
	prepCmd.AddCommand(togglePrepCmd)
	prepCmd.AddCommand(exportPrepCmd)

	analyzePrepCmd.Flags().String("company", "", "Company name")
	analyzePrepCmd.Flags().String("role", "", "Role title")
	analyzePrepCmd.Flags().String("jd", "", "Job description text, or - to read stdin")
	analyzePrepCmd.Flags().String("file", "", "Read the job description from a .pdf, .docx or text file")
	analyzePrepCmd.Flags().String("url", "", "Fetch the job description from a web page")
	analyzePrepCmd.MarkFlagsMutuallyExclusive("jd", "file", "url")

	exportPrepCmd.Flags().String("section", "all", "Section to export (all, checklist, plan, questions)")
	exportPrepCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
	exportPrepCmd.Flags().Bool("save", false, "Write to the default file name")
}
