package readiness

import (
	"testing"

	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

func profile(skills string, cgpa float64, projects string) student.Profile {
	return student.NewProfile(uuid.New(), string(student.BranchComputerScience), skills, cgpa, projects, "")
}

func TestAcademicScore(t *testing.T) {
	cases := []struct {
		cgpa float64
		want int
	}{
		{0, 50},
		{-1, 50},
		{9.0, 100},
		{9.8, 100},
		{8.0, 85},
		{8.9, 85},
		{7.0, 70},
		{6.0, 60},
		{5.9, 40},
		{3.2, 40},
	}
	for _, tc := range cases {
		if got := AcademicScore(tc.cgpa); got != tc.want {
			t.Errorf("AcademicScore(%.1f) = %d, want %d", tc.cgpa, got, tc.want)
		}
	}
}

func TestSkillsScore(t *testing.T) {
	if got := SkillsScore(nil); got != 30 {
		t.Fatalf("empty skills = %d, want 30", got)
	}

	// python and docker are high-demand: 2+2 of max 18.
	if got := SkillsScore([]string{"python", "docker"}); got != 22 {
		t.Fatalf("two high-demand skills = %d, want 22", got)
	}

	// cooking counts single: (2+1)/18.
	if got := SkillsScore([]string{"python", "cooking"}); got != 16 {
		t.Fatalf("mixed skills = %d, want 16", got)
	}

	// Substring match still counts as high-demand.
	if got := SkillsScore([]string{"python programming"}); got != 11 {
		t.Fatalf("substring high-demand = %d, want 11", got)
	}

	many := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		many = append(many, "python")
	}
	if got := SkillsScore(many); got != 100 {
		t.Fatalf("oversized portfolio = %d, want 100", got)
	}
}

func TestProjectsScore(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 20},
		{1, 30},
		{2, 50},
		{3, 75},
		{4, 75},
		{5, 100},
		{9, 100},
	}
	for _, tc := range cases {
		projects := make([]string, tc.n)
		for i := range projects {
			projects[i] = "project"
		}
		if got := ProjectsScore(projects); got != tc.want {
			t.Errorf("ProjectsScore(len %d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestActivitiesScore(t *testing.T) {
	if got := ActivitiesScore(UnknownActivityCount); got != 30 {
		t.Fatalf("unknown count = %d, want 30", got)
	}
	if got := ActivitiesScore(0); got != 0 {
		t.Fatalf("zero activities = %d, want 0", got)
	}
	if got := ActivitiesScore(4); got != 40 {
		t.Fatalf("4 activities = %d, want 40", got)
	}
	if got := ActivitiesScore(15); got != 100 {
		t.Fatalf("capped activities = %d, want 100", got)
	}
}

func TestCalculate_WeightedComposite(t *testing.T) {
	// academic 85, skills 22, projects 75, activities 40:
	// 25.5 + 8.8 + 15 + 4 = 53.3 -> 53.
	p := profile("python, docker", 8.5, "one, two, three")
	if got := Calculate(p, 4); got != 53 {
		t.Fatalf("Calculate = %d, want 53", got)
	}
}

func TestCalculate_AllDefaults(t *testing.T) {
	// 50*0.3 + 30*0.4 + 20*0.2 + 30*0.1 = 34.
	p := student.Profile{UserID: uuid.New(), Branch: student.BranchComputerScience}
	if got := Calculate(p, UnknownActivityCount); got != 34 {
		t.Fatalf("default Calculate = %d, want 34", got)
	}
}

func TestCalculate_Bounded(t *testing.T) {
	p := profile("python, java, javascript, react, node, sql, aws, docker, git, kubernetes", 9.9,
		"a, b, c, d, e, f")
	got := Calculate(p, 20)
	if got < 0 || got > 100 {
		t.Fatalf("Calculate = %d, outside [0,100]", got)
	}
}
