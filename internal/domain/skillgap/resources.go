package skillgap

// Canned learning bundles keyed by normalized skill name. Unrecognized
// skills fall back to a generic four-phase path.

var learningPaths = map[string][]string{
	"python": {
		"Python Basics & Syntax (1-2 weeks)",
		"Data Structures & Algorithms (3-4 weeks)",
		"Object-Oriented Programming (2 weeks)",
		"Projects & Practice (3-4 weeks)",
	},
	"java": {
		"Java Fundamentals (2-3 weeks)",
		"Object-Oriented Programming (2-3 weeks)",
		"Spring Framework (3-4 weeks)",
		"Build REST APIs (2 weeks)",
	},
	"machine learning": {
		"Python for Data Science (2 weeks)",
		"Statistics & Mathematics (3 weeks)",
		"ML Algorithms & Models (4 weeks)",
		"Real-world Projects (4 weeks)",
	},
	"web development": {
		"HTML, CSS, JavaScript (3 weeks)",
		"React.js Framework (3 weeks)",
		"Backend with Node.js (3 weeks)",
		"Full-stack Project (3 weeks)",
	},
	"aws": {
		"Cloud Concepts (1 week)",
		"AWS Core Services (3 weeks)",
		"Hands-on Labs (2 weeks)",
		"Project Deployment (2 weeks)",
	},
	"data analysis": {
		"Python Pandas (2 weeks)",
		"Data Visualization (2 weeks)",
		"SQL for Analysis (2 weeks)",
		"Analytics Projects (3 weeks)",
	},
	"sql": {
		"Database Fundamentals (1 week)",
		"SQL Queries (2 weeks)",
		"Advanced SQL (2 weeks)",
		"Database Design (1 week)",
	},
	"react": {
		"JavaScript ES6+ (2 weeks)",
		"React Fundamentals (2 weeks)",
		"State Management (2 weeks)",
		"Projects (2 weeks)",
	},
}

var defaultLearningPath = []string{
	"Fundamentals (2-3 weeks)",
	"Intermediate Concepts (3 weeks)",
	"Advanced Topics (3 weeks)",
	"Practical Projects (4 weeks)",
}

var learningDurations = map[string]string{
	"python":           "8-10 weeks",
	"java":             "10-12 weeks",
	"machine learning": "12-16 weeks",
	"web development":  "10-12 weeks",
	"aws":              "6-8 weeks",
	"data analysis":    "8-10 weeks",
	"react":            "6-8 weeks",
	"sql":              "4-6 weeks",
	"javascript":       "6-8 weeks",
	"html":             "2-4 weeks",
	"css":              "2-4 weeks",
	"docker":           "4-6 weeks",
}

const defaultDuration = "8-12 weeks"

var learningResources = map[string][]Resource{
	"python": {
		{Name: "Python for Everybody", Platform: "Coursera", Free: true, URL: "https://www.coursera.org/specializations/python"},
		{Name: "Automate the Boring Stuff", Platform: "Online Book", Free: true, URL: "https://automatetheboringstuff.com/"},
		{Name: "Python Official Documentation", Platform: "Python.org", Free: true, URL: "https://docs.python.org/3/"},
	},
	"java": {
		{Name: "Java Programming & Software Engineering", Platform: "Coursera", Free: true, URL: "https://www.coursera.org/specializations/java-programming"},
		{Name: "Spring Framework Guide", Platform: "Spring.io", Free: true, URL: "https://spring.io/guides"},
		{Name: "Java Practice Exercises", Platform: "HackerRank", Free: true, URL: "https://www.hackerrank.com/domains/java"},
	},
	"machine learning": {
		{Name: "Machine Learning Specialization", Platform: "Coursera", Free: true, URL: "https://www.coursera.org/specializations/machine-learning-introduction"},
		{Name: "Fast.ai Practical Deep Learning", Platform: "Fast.ai", Free: true, URL: "https://course.fast.ai/"},
		{Name: "Kaggle Micro-courses", Platform: "Kaggle", Free: true, URL: "https://www.kaggle.com/learn"},
	},
	"web development": {
		{Name: "The Odin Project", Platform: "Odin Project", Free: true, URL: "https://www.theodinproject.com/"},
		{Name: "Full Stack Open", Platform: "University of Helsinki", Free: true, URL: "https://fullstackopen.com/en/"},
		{Name: "FreeCodeCamp", Platform: "FreeCodeCamp", Free: true, URL: "https://www.freecodecamp.org/"},
	},
	"sql": {
		{Name: "SQL for Data Science", Platform: "Coursera", Free: true, URL: "https://www.coursera.org/learn/sql-for-data-science"},
		{Name: "SQL Bolt", Platform: "SQL Bolt", Free: true, URL: "https://sqlbolt.com/"},
		{Name: "W3Schools SQL", Platform: "W3Schools", Free: true, URL: "https://www.w3schools.com/sql/"},
	},
	"react": {
		{Name: "React Official Tutorial", Platform: "React.js", Free: true, URL: "https://reactjs.org/tutorial/tutorial.html"},
		{Name: "Full Stack Open", Platform: "University of Helsinki", Free: true, URL: "https://fullstackopen.com/en/"},
		{Name: "React Practice Projects", Platform: "FreeCodeCamp", Free: true, URL: "https://www.freecodecamp.org/learn/front-end-development-libraries/"},
	},
}

var defaultResources = []Resource{
	{Name: "Online Course", Platform: "Coursera/edX", Free: true, URL: "https://www.coursera.org/"},
	{Name: "Official Documentation", Platform: "Official", Free: true, URL: "#"},
	{Name: "Practice Platform", Platform: "HackerRank/LeetCode", Free: true, URL: "https://www.hackerrank.com/"},
}

var projectIdeas = map[string][]string{
	"python": {
		"Build a personal budget tracker",
		"Create a web scraper for job postings",
		"Develop a simple chatbot",
		"Build a data analysis dashboard",
	},
	"java": {
		"Create a student management system",
		"Build a REST API for a library system",
		"Develop a simple e-commerce application",
		"Create a multiplayer game",
	},
	"machine learning": {
		"Predict house prices using regression",
		"Build a spam email classifier",
		"Create a movie recommendation system",
		"Develop an image recognition model",
	},
	"web development": {
		"Build a portfolio website",
		"Create a task management app",
		"Develop a weather application",
		"Build a social media clone",
	},
	"data analysis": {
		"Analyze COVID-19 dataset trends",
		"Create sales performance dashboard",
		"Analyze student performance patterns",
		"Build customer segmentation model",
	},
	"sql": {
		"Design and implement a library database",
		"Create complex queries for business analytics",
		"Build a reporting system with multiple tables",
		"Optimize database performance",
	},
	"react": {
		"Build a todo list application",
		"Create a weather app with API integration",
		"Develop a portfolio website with React",
		"Build a chat application interface",
	},
}

var defaultProjectIdeas = []string{
	"Build a simple application",
	"Create a portfolio project",
	"Solve real-world problems",
	"Contribute to open source",
}

func learningPathFor(skill string) []string {
	if p, ok := learningPaths[skill]; ok {
		return p
	}
	return defaultLearningPath
}

func durationFor(skill string) string {
	if d, ok := learningDurations[skill]; ok {
		return d
	}
	return defaultDuration
}

func resourcesFor(skill string) []Resource {
	if r, ok := learningResources[skill]; ok {
		return r
	}
	return defaultResources
}

func projectIdeasFor(skill string) []string {
	if p, ok := projectIdeas[skill]; ok {
		return p
	}
	return defaultProjectIdeas
}

// fallbackGaps is returned when there is nothing to analyze; the platform
// always surfaces something actionable.
func fallbackGaps() []Gap {
	return []Gap{
		{
			Skill:         "Python Programming",
			Priority:      PriorityCritical,
			PriorityScore: 95,
			LearningPath: []string{
				"Python Basics & Syntax (2 weeks)",
				"Data Structures & Algorithms (4 weeks)",
				"Projects & Practice (4 weeks)",
			},
			Duration: "10 weeks",
			Resources: []Resource{
				{Name: "Python for Everybody", Platform: "Coursera", Free: true, URL: "https://www.coursera.org/specializations/python"},
				{Name: "Automate the Boring Stuff", Platform: "Online Book", Free: true, URL: "https://automatetheboringstuff.com/"},
			},
			Projects: []string{
				"Build a web scraper",
				"Create a data analysis dashboard",
				"Develop a simple web application",
			},
			Reason: "Most demanded programming language across all tech domains",
		},
		{
			Skill:         "SQL & Databases",
			Priority:      PriorityHigh,
			PriorityScore: 75,
			LearningPath: []string{
				"SQL Fundamentals (2 weeks)",
				"Database Design (2 weeks)",
				"Advanced Queries (2 weeks)",
			},
			Duration: "6 weeks",
			Resources: []Resource{
				{Name: "SQL for Data Science", Platform: "Coursera", Free: true, URL: "https://www.coursera.org/learn/sql-for-data-science"},
				{Name: "SQL Practice Exercises", Platform: "HackerRank", Free: true, URL: "https://www.hackerrank.com/domains/sql"},
			},
			Projects: []string{
				"Design a student database",
				"Analyze sales data with SQL",
				"Build a reporting system",
			},
			Reason: "Essential for database management and data analysis roles",
		},
	}
}
