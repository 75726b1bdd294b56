package skillgap

import (
	"io"
	"log"
	"reflect"
	"strings"
	"testing"

	"career-connect/internal/domain/catalog"
	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(log.New(io.Discard, "", 0))
}

func profileWithSkills(skills string) student.Profile {
	return student.NewProfile(uuid.New(), string(student.BranchComputerScience), skills, 7.5, "", "")
}

func recWithSkills(required, missing []string) recommend.Recommendation {
	return recommend.Recommendation{
		Job:           catalog.Job{ID: "job", RequiredSkills: required},
		MissingSkills: missing,
	}
}

func TestAnalyze_FallbackOnEmptyRecommendations(t *testing.T) {
	gaps := testAnalyzer().Analyze(profileWithSkills("python"), nil)

	if len(gaps) != 2 {
		t.Fatalf("expected 2 fallback gaps, got %d", len(gaps))
	}
	if gaps[0].Skill != "Python Programming" || gaps[0].Priority != PriorityCritical {
		t.Fatalf("unexpected first fallback gap: %+v", gaps[0])
	}
	if gaps[1].Skill != "SQL & Databases" || gaps[1].Priority != PriorityHigh {
		t.Fatalf("unexpected second fallback gap: %+v", gaps[1])
	}
}

func TestAnalyze_PriorityScaling(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Docker"}, nil),
		recWithSkills([]string{"Docker", "Kubernetes"}, nil),
		recWithSkills([]string{"Docker", "Kubernetes", "Terraform"}, nil),
		recWithSkills([]string{"Docker"}, nil),
		recWithSkills([]string{"Docker"}, nil),
	}

	gaps := testAnalyzer().Analyze(profileWithSkills("cooking"), recs)
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}

	// docker seen 5 times: capped at 100, Critical.
	if gaps[0].Skill != "Docker" || gaps[0].PriorityScore != 100 || gaps[0].Priority != PriorityCritical {
		t.Fatalf("unexpected top gap: %+v", gaps[0])
	}
	// kubernetes seen twice: 50, Medium.
	if gaps[1].Skill != "Kubernetes" || gaps[1].PriorityScore != 50 || gaps[1].Priority != PriorityMedium {
		t.Fatalf("unexpected second gap: %+v", gaps[1])
	}
	if gaps[2].Skill != "Terraform" || gaps[2].PriorityScore != 25 {
		t.Fatalf("unexpected third gap: %+v", gaps[2])
	}
}

func TestAnalyze_KnownSkillsExcluded(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Python", "Docker"}, []string{"Docker"}),
	}

	gaps := testAnalyzer().Analyze(profileWithSkills("python, python3"), recs)
	for _, g := range gaps {
		if strings.EqualFold(g.Skill, "python") {
			t.Fatalf("known skill reported as gap: %+v", g)
		}
	}
	if len(gaps) != 1 || gaps[0].Skill != "Docker" {
		t.Fatalf("expected single Docker gap, got %+v", gaps)
	}
}

func TestAnalyze_SynonymsExcluded(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Machine Learning"}, nil),
	}

	// "ml" is a synonym of "machine learning"; no gap should surface.
	gaps := testAnalyzer().Analyze(profileWithSkills("ml"), recs)
	if len(gaps) != 0 {
		t.Fatalf("synonym of known skill reported as gap: %+v", gaps)
	}
}

func TestAnalyze_ShortTokensSkipped(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Go", "R", "Rust"}, nil),
	}

	gaps := testAnalyzer().Analyze(profileWithSkills("cooking"), recs)
	if len(gaps) != 1 || gaps[0].Skill != "Rust" {
		t.Fatalf("expected only Rust gap, got %+v", gaps)
	}
}

func TestAnalyze_CapAtFive(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Docker", "Kubernetes", "Terraform", "Ansible", "Prometheus", "Grafana", "Jenkins"}, nil),
	}

	gaps := testAnalyzer().Analyze(profileWithSkills("cooking"), recs)
	if len(gaps) != 5 {
		t.Fatalf("expected 5 gaps, got %d", len(gaps))
	}
}

func TestAnalyze_DefaultContentAttached(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Terraform"}, nil),
	}

	gaps := testAnalyzer().Analyze(profileWithSkills("cooking"), recs)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	g := gaps[0]
	if len(g.LearningPath) == 0 || g.Duration == "" || len(g.Resources) == 0 || len(g.Projects) == 0 {
		t.Fatalf("gap missing default learning content: %+v", g)
	}
	if g.Reason != "Essential for 1 recommended career paths" {
		t.Fatalf("unexpected reason %q", g.Reason)
	}
}

func TestAnalyze_CuratedContentForKnownSkill(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Machine Learning"}, nil),
	}

	gaps := testAnalyzer().Analyze(profileWithSkills("cooking"), recs)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].LearningPath[0] == defaultLearningPath[0] {
		t.Fatalf("expected curated learning path for machine learning")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	recs := []recommend.Recommendation{
		recWithSkills([]string{"Docker", "Kubernetes"}, []string{"Terraform"}),
		recWithSkills([]string{"Ansible", "Docker"}, nil),
	}
	p := profileWithSkills("cooking")

	a := testAnalyzer()
	first := a.Analyze(p, recs)
	for i := 0; i < 5; i++ {
		if again := a.Analyze(p, recs); !reflect.DeepEqual(first, again) {
			t.Fatalf("Analyze not deterministic")
		}
	}
}
