package roadmap

// Readiness bands. Every derived quantity (titles, durations, improvement
// multiplier, total timeline) is a table lookup keyed on the band, not a
// transition-based state machine.
type band int

const (
	bandBeginner     band = iota // < 40
	bandIntermediate             // 40-59
	bandAdvanced                 // 60-79
	bandExpert                   // >= 80
)

func bandFor(readiness int) band {
	switch {
	case readiness >= 80:
		return bandExpert
	case readiness >= 60:
		return bandAdvanced
	case readiness >= 40:
		return bandIntermediate
	default:
		return bandBeginner
	}
}

// Step titles. The two lowest bands share a title set, as do the durations
// below 40; titles only differentiate at 60 and 80.
func stepTitle(b band, step int) string {
	var titles [4]string
	switch {
	case b >= bandExpert:
		titles = [4]string{
			"Advanced Skill Enhancement",
			"Expert Specialization",
			"Industry Leadership Projects",
			"Executive Preparation",
		}
	case b >= bandAdvanced:
		titles = [4]string{
			"Skill Foundation & Gap Closure",
			"Specialized Skill Development",
			"Practical Experience & Projects",
			"Job Preparation & Interview Readiness",
		}
	default:
		titles = [4]string{
			"Basic Skill Foundation",
			"Core Skill Development",
			"Hands-on Project Experience",
			"Career Preparation Basics",
		}
	}
	return titles[step-1]
}

// Per-step durations by band: lower readiness means longer phases.
var stepDurations = map[band][4]string{
	bandBeginner:     {"3-4 months", "4-5 months", "5-6 months", "2-3 months"},
	bandIntermediate: {"2-3 months", "3-4 months", "4-5 months", "1-2 months"},
	bandAdvanced:     {"1-2 months", "2-3 months", "3-4 months", "1 month"},
	bandExpert:       {"1 month", "2 months", "2-3 months", "1 month"},
}

// baseImprovements holds the per-step CRS gain before the diminishing-returns
// adjustment; improving gets harder the closer the student is to mastery.
var baseImprovements = [4]int{15, 20, 25, 10}

func adjustmentFactor(b band) float64 {
	switch b {
	case bandExpert:
		return 0.5
	case bandAdvanced:
		return 0.7
	case bandIntermediate:
		return 0.9
	default:
		return 1.0
	}
}

var totalTimelines = map[band]string{
	bandBeginner:     "10-16 months",
	bandIntermediate: "7-12 months",
	bandAdvanced:     "4-8 months",
	bandExpert:       "2-5 months",
}

// Default focus areas keep steps non-empty when the gap list cannot fill
// them; steps 3 and 4 are always fixed.
var defaultFocusAreas = [4][]string{
	{"Programming Fundamentals", "Core Concepts", "Basic Tools"},
	{"Advanced Technologies", "Specialized Tools", "Industry Frameworks"},
	{"Real-world Applications", "Industry Tools", "Team Collaboration"},
	{"Interview Skills", "Resume Building", "Networking"},
}

var stepCompletionMetrics = [4][]string{
	{
		"Master core programming concepts",
		"Close high-priority skill gaps",
		"Complete basic certification",
	},
	{
		"Learn specialization-specific technologies",
		"Build portfolio projects",
		"Complete advanced courses",
	},
	{
		"Complete internships or freelance work",
		"Build complex projects",
		"Contribute to open source",
	},
	{
		"Prepare resume and portfolio",
		"Practice coding interviews",
		"Network with professionals",
	},
}

var stepResources = [4][]Resource{
	{
		{Name: "FreeCodeCamp", URL: "https://freecodecamp.org", Free: true},
		{Name: "GeeksforGeeks", URL: "https://geeksforgeeks.org", Free: true},
	},
	{
		{Name: "Coursera Specializations", URL: "https://coursera.org", Free: false},
		{Name: "Udemy Courses", URL: "https://udemy.com", Free: false},
	},
	{
		{Name: "Internshala", URL: "https://internshala.com", Free: true},
		{Name: "GitHub", URL: "https://github.com", Free: true},
	},
	{
		{Name: "LeetCode", URL: "https://leetcode.com", Free: true},
		{Name: "LinkedIn", URL: "https://linkedin.com", Free: true},
	},
}
