package resume

import "github.com/khrees2412/careerkit/pkg/models"

// Sample returns a filled-in resume for trying out the builder
func Sample() models.Resume {
	return models.Resume{
		PersonalInfo: models.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane.doe@example.com",
			Phone:    "123-456-7890",
			Location: "San Francisco, CA",
		},
		Summary: "Driven and innovative software engineer with over 5 years of experience in developing and deploying " +
			"scalable web applications. Proficient in JavaScript, React, and Node.js, with a proven track record of " +
			"delivering high-quality products. I led a team that improved application performance by 30%.",
		Education: []models.EducationEntry{
			{ID: "edu1", School: "Stanford University", Degree: "M.S. in Computer Science", StartDate: "2017", EndDate: "2019"},
		},
		Experience: []models.ExperienceEntry{
			{
				ID: "exp1", Company: "Tech Solutions Inc.", Role: "Senior Software Engineer", StartDate: "2021", EndDate: "Present",
				Description: "• Led the development of a new microservices-based architecture, improving system scalability by 40%.\n" +
					"• Mentored a team of 5 junior engineers.",
			},
			{
				ID: "exp2", Company: "Web Innovators", Role: "Software Engineer", StartDate: "2019", EndDate: "2021",
				Description: "• Developed and maintained client-side features for a high-traffic e-commerce platform using React.\n" +
					"• Achieved 95% test coverage for critical components.",
			},
		},
		Projects: []models.ProjectEntry{
			{
				ID: "proj1", Name: "AI Resume Builder",
				Description: "• A web application to help users build ATS-friendly resumes with AI-powered suggestions.\n" +
					"• Built with Next.js, TypeScript, and Tailwind CSS.",
				TechStack: []string{"Next.js", "TypeScript", "Tailwind CSS"},
				GitHubURL: "https://github.com/janedoe/ai-resume-builder",
			},
			{
				ID: "proj2", Name: "E-commerce Analytics Dashboard",
				Description: "• Created a real-time analytics dashboard for an e-commerce site, processing 10,000+ events per minute.",
				TechStack:   []string{"React", "D3.js", "WebSocket"},
				LiveURL:     "https://example-analytics.com",
			},
		},
		Skills: models.SkillSet{
			Technical: []string{"JavaScript", "TypeScript", "React", "Node.js", "Next.js", "PostgreSQL", "GraphQL"},
			Soft:      []string{"Team Leadership", "Problem Solving", "Agile Methodologies"},
			Tools:     []string{"Git", "Docker", "AWS", "Firebase", "Tailwind CSS"},
		},
		Links: models.Links{
			GitHub:   "https://github.com/janedoe",
			LinkedIn: "https://linkedin.com/in/janedoe",
		},
	}
}
