package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/khrees2412/careerkit/internal/ats"
	"github.com/khrees2412/careerkit/internal/export"
	"github.com/khrees2412/careerkit/internal/resume"
	"github.com/khrees2412/careerkit/internal/schemas"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Build and score your resume",
	Long:  "Edit your structured resume, score it for ATS readiness and export it as text or JSON",
}

var showResumeCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		repo := application.Resume
		r := repo.Get()

		cmd.Println(titleStyle.Render(orDash(r.PersonalInfo.Name)))
		cmd.Printf("%s %s\n", labelStyle.Render("Email:"), orDash(r.PersonalInfo.Email))
		cmd.Printf("%s %s\n", labelStyle.Render("Phone:"), orDash(r.PersonalInfo.Phone))
		cmd.Printf("%s %s\n", labelStyle.Render("Location:"), orDash(r.PersonalInfo.Location))
		cmd.Printf("%s %s\n", labelStyle.Render("GitHub:"), orDash(r.Links.GitHub))
		cmd.Printf("%s %s\n", labelStyle.Render("LinkedIn:"), orDash(r.Links.LinkedIn))
		cmd.Printf("%s %s / %s\n", labelStyle.Render("Template:"), repo.Template(), repo.Accent())

		if r.Summary != "" {
			cmd.Println(labelStyle.Render("\nSummary"))
			cmd.Println(valueStyle.Render(r.Summary))
		}

		if len(r.Education) > 0 {
			cmd.Println(labelStyle.Render("\nEducation"))
			for _, e := range r.Education {
				cmd.Printf("  • %s, %s (%s - %s)\n", e.Degree, e.School, e.StartDate, e.EndDate)
				cmd.Printf("    %s\n", mutedStyle.Render("id: "+e.ID))
			}
		}

		if len(r.Experience) > 0 {
			cmd.Println(labelStyle.Render("\nExperience"))
			for _, e := range r.Experience {
				cmd.Printf("  • %s at %s (%s - %s)\n", e.Role, e.Company, e.StartDate, e.EndDate)
				for _, line := range strings.Split(strings.TrimSpace(e.Description), "\n") {
					if line != "" {
						cmd.Printf("    %s\n", line)
					}
				}
				cmd.Printf("    %s\n", mutedStyle.Render("id: "+e.ID))
			}
		}

		if len(r.Projects) > 0 {
			cmd.Println(labelStyle.Render("\nProjects"))
			for _, p := range r.Projects {
				cmd.Printf("  • %s", p.Name)
				if len(p.TechStack) > 0 {
					cmd.Printf(" [%s]", strings.Join(p.TechStack, ", "))
				}
				cmd.Println()
				if p.Description != "" {
					cmd.Printf("    %s\n", p.Description)
				}
				if p.LiveURL != "" {
					cmd.Printf("    %s %s\n", labelStyle.Render("Live:"), p.LiveURL)
				}
				if p.GitHubURL != "" {
					cmd.Printf("    %s %s\n", labelStyle.Render("Code:"), p.GitHubURL)
				}
				cmd.Printf("    %s\n", mutedStyle.Render("id: "+p.ID))
			}
		}

		if r.Skills.Count() > 0 {
			cmd.Println(labelStyle.Render("\nSkills"))
			for _, group := range []struct {
				kind resume.SkillKind
				list []string
			}{
				{resume.SkillsTechnical, r.Skills.Technical},
				{resume.SkillsSoft, r.Skills.Soft},
				{resume.SkillsTools, r.Skills.Tools},
			} {
				if len(group.list) > 0 {
					cmd.Printf("  %s %s\n", labelStyle.Render(titleCase(string(group.kind))+":"), strings.Join(group.list, ", "))
				}
			}
		}
		return nil
	},
}

var scoreResumeCmd = &cobra.Command{
	Use:   "score",
	Short: "Score your resume for ATS readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")

		result := ats.Score(application.Resume.Get())
		cmd.Println(titleStyle.Render("ATS Readiness Score"))
		cmd.Println(scoreBar(result.Score))
		cmd.Println(bandStyle(result.Score).Render(ats.Band(result.Score)))

		suggestions := result.Top(3)
		if all {
			suggestions = result.Suggestions
		}
		if len(suggestions) == 0 {
			cmd.Println("\n✓ No suggestions. Your resume covers every check.")
			return nil
		}
		cmd.Println(labelStyle.Render("\nImprove your score"))
		for _, s := range suggestions {
			cmd.Printf("  • %s %s\n", s.Text, mutedStyle.Render(fmt.Sprintf("(+%d points)", s.Points)))
		}
		return nil
	},
}

var exportResumeCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your resume as plain text or JSON",
	Example: `  careerkit resume export
  careerkit resume export --format json --out resume.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		r := application.Resume.Get()
		var content string
		switch strings.ToLower(format) {
		case "text", "txt":
			content = export.ResumeText(r) + "\n"
		case "json":
			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return fmt.Errorf("encode resume: %w", err)
			}
			content = string(data) + "\n"
		default:
			return fmt.Errorf("unknown format %q (must be text or json)", format)
		}

		return writeOutput(cmd, out, content)
	},
}

var importResumeCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace your resume with a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume file: %w", err)
		}

		r, err := application.Resume.Import(data)
		if err != nil {
			var verr *schemas.ValidationError
			if errors.As(err, &verr) {
				cmd.Println(errorStyle.Render("Resume document is invalid:"))
				for _, fe := range verr.Errors {
					cmd.Printf("  • %s: %s\n", fe.Field, fe.Message)
				}
			}
			return err
		}
		cmd.Printf("✓ Imported resume for %s\n", orDash(r.PersonalInfo.Name))
		return nil
	},
}

var sampleResumeCmd = &cobra.Command{
	Use:   "sample",
	Short: "Load the sample resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		r, err := application.Resume.LoadSample()
		if err != nil {
			return err
		}
		cmd.Printf("✓ Loaded sample resume for %s\n", r.PersonalInfo.Name)
		return nil
	},
}

var resetResumeCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear your resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.Resume.Reset(); err != nil {
			return err
		}
		cmd.Println("✓ Resume cleared")
		return nil
	},
}

var setResumeCmd = &cobra.Command{
	Use:       "set <field> <value>",
	Short:     "Set a personal field, the summary or a link",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"name", "email", "phone", "location", "summary", "github", "linkedin"},
	Example: `  careerkit resume set name "Jane Doe"
  careerkit resume set summary "Built and shipped..."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.Resume.SetField(args[0], args[1]); err != nil {
			return err
		}
		cmd.Printf("✓ Updated %s\n", args[0])
		return nil
	},
}

var addResumeCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or edit resume entries and skills",
}

var addEducationCmd = &cobra.Command{
	Use:   "education",
	Short: "Add an education entry (or edit one with --id)",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		e := models.EducationEntry{}
		e.ID, _ = cmd.Flags().GetString("id")
		e.School, _ = cmd.Flags().GetString("school")
		e.Degree, _ = cmd.Flags().GetString("degree")
		e.StartDate, _ = cmd.Flags().GetString("start")
		e.EndDate, _ = cmd.Flags().GetString("end")

		saved, err := application.Resume.SaveEducation(e)
		if err != nil {
			return err
		}
		cmd.Printf("✓ Saved education %s (id: %s)\n", saved.School, saved.ID)
		return nil
	},
}

var addExperienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Add an experience entry (or edit one with --id)",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		e := models.ExperienceEntry{}
		e.ID, _ = cmd.Flags().GetString("id")
		e.Company, _ = cmd.Flags().GetString("company")
		e.Role, _ = cmd.Flags().GetString("role")
		e.StartDate, _ = cmd.Flags().GetString("start")
		e.EndDate, _ = cmd.Flags().GetString("end")
		e.Description, _ = cmd.Flags().GetString("description")

		saved, err := application.Resume.SaveExperience(e)
		if err != nil {
			return err
		}
		cmd.Printf("✓ Saved experience %s at %s (id: %s)\n", saved.Role, saved.Company, saved.ID)
		printBulletHints(cmd, saved.Description)
		return nil
	},
}

var addProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Add a project (or edit one with --id)",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		p := models.ProjectEntry{}
		p.ID, _ = cmd.Flags().GetString("id")
		p.Name, _ = cmd.Flags().GetString("name")
		p.Description, _ = cmd.Flags().GetString("description")
		p.TechStack, _ = cmd.Flags().GetStringSlice("tech")
		p.LiveURL, _ = cmd.Flags().GetString("live")
		p.GitHubURL, _ = cmd.Flags().GetString("github")

		saved, err := application.Resume.SaveProject(p)
		if err != nil {
			return err
		}
		cmd.Printf("✓ Saved project %s (id: %s)\n", saved.Name, saved.ID)
		printBulletHints(cmd, saved.Description)
		return nil
	},
}

var addSkillCmd = &cobra.Command{
	Use:   "skill <name>...",
	Short: "Add skills to a list, or merge common suggestions with --suggest",
	Example: `  careerkit resume add skill --kind technical Go Kubernetes
  careerkit resume add skill --suggest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		suggest, _ := cmd.Flags().GetBool("suggest")
		if suggest {
			skills, err := application.Resume.SuggestSkills()
			if err != nil {
				return err
			}
			cmd.Printf("✓ Skills now: %d technical, %d soft, %d tools\n", len(skills.Technical), len(skills.Soft), len(skills.Tools))
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("at least one skill is required (or use --suggest)")
		}

		kind, _ := cmd.Flags().GetString("kind")
		if err := application.Resume.AddSkills(resume.SkillKind(strings.ToLower(kind)), args...); err != nil {
			return err
		}
		cmd.Printf("✓ Added %d %s skill(s)\n", len(args), kind)
		return nil
	},
}

var removeResumeCmd = &cobra.Command{
	Use:   "remove <education|experience|projects|skill> <id|kind> [name]",
	Short: "Remove an entry by id, or a skill by kind and name",
	Example: `  careerkit resume remove experience 6f1c...
  careerkit resume remove skill technical Go`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		if args[0] == "skill" || args[0] == "skills" {
			if len(args) != 3 {
				return fmt.Errorf("usage: careerkit resume remove skill <technical|soft|tools> <name>")
			}
			if err := application.Resume.RemoveSkill(resume.SkillKind(strings.ToLower(args[1])), args[2]); err != nil {
				return err
			}
			cmd.Printf("✓ Removed skill %s\n", args[2])
			return nil
		}

		section := resume.Section(strings.ToLower(args[0]))
		if section == "project" {
			section = resume.SectionProjects
		}
		if err := application.Resume.Remove(section, args[1]); err != nil {
			return err
		}
		cmd.Printf("✓ Removed %s entry %s\n", section, args[1])
		return nil
	},
}

var templateResumeCmd = &cobra.Command{
	Use:   "template [classic|modern|minimal]",
	Short: "Show or change the resume template and accent color",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		repo := application.Resume

		if len(args) == 1 {
			if err := repo.SetTemplate(models.ResumeTemplate(strings.ToLower(args[0]))); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("accent") {
			accent, _ := cmd.Flags().GetString("accent")
			if err := repo.SetAccent(models.AccentColor(strings.ToLower(accent))); err != nil {
				return err
			}
		}

		cmd.Printf("%s %s\n", labelStyle.Render("Template:"), repo.Template())
		cmd.Printf("%s %s\n", labelStyle.Render("Accent:"), repo.Accent())
		return nil
	},
}

var bulletResumeCmd = &cobra.Command{
	Use:   "bullet [text]",
	Short: "Check a bullet point, or every experience and project bullet",
	Example: `  careerkit resume bullet "Worked on the billing service"
  careerkit resume bullet`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			hints := ats.CheckBullet(strings.Join(args, " "))
			if len(hints) == 0 {
				cmd.Println("✓ Looks good")
				return nil
			}
			for _, h := range hints {
				cmd.Printf("  • %s\n", h)
			}
			return nil
		}

		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		r := application.Resume.Get()
		found := false
		for _, e := range r.Experience {
			found = printBulletHints(cmd, e.Description) || found
		}
		for _, p := range r.Projects {
			found = printBulletHints(cmd, p.Description) || found
		}
		if !found {
			cmd.Println("✓ Every bullet starts with an action verb and shows measurable impact")
		}
		return nil
	},
}

// printBulletHints lists guidance for the bullets of a description that need
// work and reports whether there were any
func printBulletHints(cmd *cobra.Command, description string) bool {
	hints := ats.CheckDescription(description)
	for _, h := range hints {
		cmd.Printf("  %s %s\n", fairStyle.Render("›"), h.Line)
		for _, hint := range h.Hints {
			cmd.Printf("      %s\n", mutedStyle.Render(hint))
		}
	}
	return len(hints) > 0
}

// writeOutput prints content or writes it to path
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cmd.PrintErrf("✓ Written to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	resumeCmd.AddCommand(showResumeCmd)
	resumeCmd.AddCommand(scoreResumeCmd)
	resumeCmd.AddCommand(exportResumeCmd)
	resumeCmd.AddCommand(importResumeCmd)
	resumeCmd.AddCommand(sampleResumeCmd)
	resumeCmd.AddCommand(resetResumeCmd)
	resumeCmd.AddCommand(setResumeCmd)
	resumeCmd.AddCommand(addResumeCmd)
	resumeCmd.AddCommand(removeResumeCmd)
	resumeCmd.AddCommand(templateResumeCmd)
	resumeCmd.AddCommand(bulletResumeCmd)

	addResumeCmd.AddCommand(addEducationCmd)
	addResumeCmd.AddCommand(addExperienceCmd)
	addResumeCmd.AddCommand(addProjectCmd)
	addResumeCmd.AddCommand(addSkillCmd)

	scoreResumeCmd.Flags().Bool("all", false, "Show every suggestion instead of the top three")

	exportResumeCmd.Flags().String("format", "text", "Output format (text, json)")
	exportResumeCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")

	for _, c := range []*cobra.Command{addEducationCmd, addExperienceCmd, addProjectCmd} {
		c.Flags().String("id", "", "Id of the entry to edit")
	}
	addEducationCmd.Flags().String("school", "", "School or university")
	addEducationCmd.Flags().String("degree", "", "Degree")
	addEducationCmd.Flags().String("start", "", "Start date")
	addEducationCmd.Flags().String("end", "", "End date")

	addExperienceCmd.Flags().String("company", "", "Company")
	addExperienceCmd.Flags().String("role", "", "Role or title")
	addExperienceCmd.Flags().String("start", "", "Start date")
	addExperienceCmd.Flags().String("end", "", "End date")
	addExperienceCmd.Flags().String("description", "", "Description, one bullet per line")

	addProjectCmd.Flags().String("name", "", "Project name")
	addProjectCmd.Flags().String("description", "", "Description, one bullet per line")
	addProjectCmd.Flags().StringSlice("tech", nil, "Tech stack")
	addProjectCmd.Flags().String("live", "", "Live URL")
	addProjectCmd.Flags().String("github", "", "GitHub URL")

	addSkillCmd.Flags().String("kind", "technical", "Skill list (technical, soft, tools)")
	addSkillCmd.Flags().Bool("suggest", false, "Merge a set of common skills into every list")

	templateResumeCmd.Flags().String("accent", "", "Accent color (teal, navy, burgundy, forest, charcoal)")
}
