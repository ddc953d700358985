package intel

import "github.com/khrees2412/careerkit/pkg/models"

var enterpriseRounds = []models.InterviewRound{
	{
		Round: 1, Title: "Online Assessment", Focus: "DSA & Aptitude",
		WhyItMatters: "This is a screening round to filter candidates based on fundamental coding and problem-solving abilities at scale. A high score is crucial to proceed.",
	},
	{
		Round: 2, Title: "Technical Round 1", Focus: "Data Structures & Algorithms",
		WhyItMatters: "Expect an in-depth evaluation of your DSA knowledge. Interviewers will test your ability to write clean, optimal code for complex problems.",
	},
	{
		Round: 3, Title: "Technical Round 2", Focus: "Core CS & System Design (Basics)",
		WhyItMatters: "This round verifies your understanding of computer science fundamentals (OS, DBMS, Networks) and introduces basic system design concepts to check for well-rounded knowledge.",
	},
	{
		Round: 4, Title: "Hiring Manager / HR Round", Focus: "Project Discussion & Behavioral Fit",
		WhyItMatters: "Assesses your project contributions, team collaboration skills, and alignment with the company's values. It's the final check for your overall suitability.",
	},
}

// Rounds returns the four interview rounds expected at a company. Without
// intel the company is treated as a startup.
func Rounds(skills models.ExtractedSkills, ci *models.CompanyIntel) []models.InterviewRound {
	size := models.SizeStartup
	if ci != nil && ci.Size != "" {
		size = ci.Size
	}

	if size == models.SizeEnterprise {
		out := make([]models.InterviewRound, len(enterpriseRounds))
		copy(out, enterpriseRounds)
		return out
	}

	web := len(skills.Web) > 0
	return []models.InterviewRound{
		{
			Round: 1, Title: "Screening Task / Call",
			Focus:        pick(web, "Practical Coding Challenge", "Problem-Solving"),
			WhyItMatters: "This round checks if you have the immediate, practical skills needed for the role. It could be a take-home assignment or a live coding session on a relevant problem.",
		},
		{
			Round: 2, Title: "Technical Deep Dive",
			Focus:        pick(web, "Stack-Specific Implementation", "Advanced DSA"),
			WhyItMatters: "Here, they evaluate your expertise in their specific tech stack or your ability to handle more complex algorithmic challenges relevant to their domain.",
		},
		{
			Round: 3, Title: "System Design & Architecture", Focus: "Product-centric System Discussion",
			WhyItMatters: "This round assesses your ability to think about the bigger picture, make design trade-offs, and architect a scalable and maintainable solution for their product.",
		},
		{
			Round: 4, Title: "Founder / Team-Fit Round", Focus: "Cultural Fit & Vision Alignment",
			WhyItMatters: "Crucial for smaller teams. This final round ensures you align with the company's culture, work ethic, and long-term vision.",
		},
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
