package readiness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/khrees2412/careerkit/pkg/models"
)

// MaxQuestions is the number of interview questions generated
const MaxQuestions = 10

// Checklist builds the four-round preparation checklist
func Checklist(skills models.ExtractedSkills) []models.ChecklistRound {
	dsa := []string{
		"Solve 5 medium-level problems on arrays and strings.",
		"Practice 3 problems related to linked lists.",
		"Implement tree traversal algorithms (In-order, Pre-order, Post-order).",
		"Solve 2 graph problems (BFS, DFS).",
		"Review complexity analysis for common algorithms.",
	}
	if slices.Contains(skills.CoreCS, "DBMS") {
		dsa = append(dsa, "Review normalization and basic SQL queries.")
	}

	tech := []string{
		"Prepare a 2-minute summary of each of your key projects.",
		"Be ready to explain your role and contributions in each project.",
		"Revise the tech stack used in your projects.",
		"Anticipate questions about design choices and trade-offs.",
	}
	if len(skills.Web) > 0 {
		tech = append(tech, fmt.Sprintf("Deep dive into %s concepts.", strings.Join(skills.Web, ", ")))
	}
	if len(skills.Languages) > 0 {
		tech = append(tech, fmt.Sprintf("Practice coding in %s as it's mentioned in the JD.", skills.Languages[0]))
	}

	return []models.ChecklistRound{
		{
			RoundTitle: "Round 1: Aptitude & CS Basics",
			Items: []string{
				"Practice quantitative aptitude problems (Time, Speed, Distance).",
				"Solve logical reasoning puzzles.",
				"Revise fundamental concepts of Data Structures.",
				"Go through basic principles of Object-Oriented Programming (OOP).",
				"Brush up on Database Management Systems (DBMS) basics.",
				"Review key concepts of Operating Systems (OS) and Computer Networks.",
			},
		},
		{RoundTitle: "Round 2: DSA & Core CS Deep Dive", Items: dsa},
		{RoundTitle: "Round 3: Technical Interview (Projects & Stack)", Items: tech},
		{
			RoundTitle: "Round 4: Managerial & HR",
			Items: []string{
				`Prepare answers for "Tell me about yourself".`,
				"Research the company, its products, and recent news.",
				"Prepare 2-3 questions to ask the interviewer.",
				"Think about your strengths and weaknesses with examples.",
				"Be ready to discuss your career goals and why you want this role.",
			},
		},
	}
}

// Plan builds the seven-day study plan
func Plan(skills models.ExtractedSkills) []models.DayPlan {
	day2 := []string{"Strengthen Computer Networks knowledge (TCP/IP, HTTP)."}
	if len(skills.Languages) > 0 {
		day2 = append(day2, fmt.Sprintf("Quickly revise syntax and features of %s.", strings.Join(skills.Languages, ", ")))
	}

	day5 := []string{
		"Align your resume with the job description, highlighting key skills.",
		"Prepare detailed explanations for 2 of your main projects.",
	}
	if slices.Contains(skills.Web, "React") {
		day5 = append(day5, "Revise React hooks and state management.")
	}

	return []models.DayPlan{
		{Day: "Day 1", Focus: "Core CS Fundamentals", Tasks: []string{
			"Revise OOP concepts.", "Study DBMS basics and normalization.", "Review OS concepts like processes and threads.",
		}},
		{Day: "Day 2", Focus: "Languages & Networks", Tasks: day2},
		{Day: "Day 3", Focus: "Data Structures Practice", Tasks: []string{
			"Solve 5 problems on arrays and strings.", "Practice linked list manipulation.", "Implement stacks and queues.",
		}},
		{Day: "Day 4", Focus: "Advanced DSA", Tasks: []string{
			"Practice tree-based problems (BST, Traversals).", "Solve graph algorithm problems (BFS, DFS).",
			"Review dynamic programming concepts with 2-3 simple problems.",
		}},
		{Day: "Day 5", Focus: "Projects & Resume", Tasks: day5},
		{Day: "Day 6", Focus: "Mock Interviews", Tasks: []string{
			"Take a mock DSA coding interview.", "Practice explaining your projects to a friend.", "Answer common HR questions out loud.",
		}},
		{Day: "Day 7", Focus: "Revision & Weak Areas", Tasks: []string{
			"Quickly revise all topics from Day 1-6.", "Focus on 1-2 topics you feel least confident about.",
			"Relax and get a good night's sleep.",
		}},
	}
}

type bankEntry struct {
	key       string
	questions []string
}

// questionBank is searched in order; the first key contained in a skill wins
var questionBank = []bankEntry{
	{"dsa", []string{
		"How would you find a cycle in a linked list?",
		"Explain the difference between BFS and DFS for graph traversal.",
		"What is dynamic programming and when would you use it?",
		"How do you handle collisions in a hash map?",
		"Describe a situation where you would use a priority queue.",
	}},
	{"oop", []string{
		"What are the four main principles of Object-Oriented Programming?",
		"Explain method overriding and method overloading with an example.",
		"What is an abstract class and when would you use it?",
	}},
	{"dbms", []string{
		"What is database normalization? Explain 1NF, 2NF, and 3NF.",
		"Explain the difference between SQL and NoSQL databases.",
		"What is an index in a database and how does it improve performance?",
	}},
	{"os", []string{
		"What is the difference between a process and a thread?",
		"Explain what a deadlock is and how it can be prevented.",
		"What is virtual memory?",
	}},
	{"networks", []string{
		"Explain the TCP/IP model.",
		"What happens when you type a URL into your browser and press Enter?",
	}},
	{"java", []string{"Explain the difference between JDK, JRE, and JVM."}},
	{"python", []string{"What are decorators in Python?"}},
	{"javascript", []string{"Explain event delegation in JavaScript."}},
	{"typescript", []string{"What are the benefits of using TypeScript over plain JavaScript?"}},
	{"react", []string{
		"What is the virtual DOM and how does it work?",
		"Explain the difference between state and props in React.",
		"What are React Hooks? Give an example of `useState` and `useEffect`.",
	}},
	{"node.js", []string{"What is the event loop in Node.js?"}},
	{"sql", []string{"What is the difference between `JOIN` and `UNION` in SQL?"}},
	{"mongodb", []string{"What are the advantages of MongoDB over SQL databases?"}},
	{"aws", []string{"What is the difference between an EC2 instance and a Lambda function?"}},
	{"docker", []string{"What is a Docker container, and how is it different from a virtual machine?"}},
	{"communication", []string{
		"How do you handle disagreements within your team?",
		"Describe a complex technical concept to a non-technical person.",
	}},
}

var genericQuestions = []string{
	"What are your biggest strengths and weaknesses?",
	"Why do you want to work for this company?",
}

// Questions picks up to ten likely interview questions: two generic ones,
// then questions for each detected skill, then core CS questions to fill up
func Questions(skills models.ExtractedSkills) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(q string) {
		if len(out) < MaxQuestions && !seen[q] {
			out = append(out, q)
			seen[q] = true
		}
	}

	for _, q := range genericQuestions {
		add(q)
	}

	for _, skill := range skills.All() {
		lower := strings.ToLower(skill)
		for _, entry := range questionBank {
			if strings.Contains(lower, entry.key) {
				for _, q := range entry.questions {
					add(q)
				}
				break
			}
		}
	}

	for _, key := range []string{"dsa", "oop", "dbms"} {
		for _, entry := range questionBank {
			if entry.key == key {
				for _, q := range entry.questions {
					add(q)
				}
			}
		}
	}
	return out
}
