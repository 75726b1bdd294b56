package recommend

import (
	"io"
	"log"
	"reflect"
	"testing"

	"career-connect/internal/domain/catalog"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

func testRecommender(jobs []catalog.Job) *Recommender {
	logger := log.New(io.Discard, "", 0)
	if jobs == nil {
		return NewRecommender(catalog.New(), logger)
	}
	return NewRecommender(catalog.NewWithJobs(jobs), logger)
}

func csProfile(skills string) student.Profile {
	return student.NewProfile(uuid.New(), string(student.BranchComputerScience), skills, 8.2, "Portfolio site", "Web Development")
}

func TestRecommend_SortedAndBounded(t *testing.T) {
	r := testRecommender(nil)

	recs := r.Recommend(csProfile("Python, SQL, Machine Learning, Docker"), 0)
	if len(recs) == 0 {
		t.Fatalf("expected recommendations for CS profile")
	}
	if len(recs) > DefaultTopN {
		t.Fatalf("default topN exceeded: %d", len(recs))
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].CompatibilityScore > recs[i-1].CompatibilityScore {
			t.Fatalf("recommendations not sorted descending at %d", i)
		}
	}
	for _, rec := range recs {
		if rec.CompatibilityScore < 25 || rec.CompatibilityScore > 95 {
			t.Fatalf("score %d outside [25,95] for %q", rec.CompatibilityScore, rec.Job.ID)
		}
	}
}

func TestRecommend_TopNRespected(t *testing.T) {
	r := testRecommender(nil)

	recs := r.Recommend(csProfile("Python"), 3)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
}

func TestRecommend_StableTieOrder(t *testing.T) {
	jobs := []catalog.Job{
		{ID: "a", Category: "Software Engineering", RequiredSkills: []string{"go"}},
		{ID: "b", Category: "Software Engineering", RequiredSkills: []string{"rust"}},
		{ID: "c", Category: "Software Engineering", RequiredSkills: []string{"zig"}},
	}
	r := testRecommender(jobs)

	// No skill matches anything: all scores equal, catalog order must hold.
	recs := r.Recommend(csProfile("cooking"), 10)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	ids := []string{recs[0].Job.ID, recs[1].Job.ID, recs[2].Job.ID}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("tie order not stable: %v", ids)
	}
}

func TestRecommend_EmptyCandidates(t *testing.T) {
	r := testRecommender([]catalog.Job{})

	recs := r.Recommend(csProfile("Python"), 5)
	if recs == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestRecommend_EmptySkillsStillScored(t *testing.T) {
	r := testRecommender(nil)

	recs := r.Recommend(csProfile(""), 0)
	if len(recs) == 0 {
		t.Fatalf("expected recommendations for empty-skill profile")
	}
	for _, rec := range recs {
		if rec.CompatibilityScore < 25 {
			t.Fatalf("empty-skill score below floor: %d", rec.CompatibilityScore)
		}
	}
}

func TestRecommend_MatchType(t *testing.T) {
	r := testRecommender(nil)

	recs := r.Recommend(csProfile("Python"), 1)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation")
	}
	if recs[0].MatchType != "Computer Science Specialist" {
		t.Fatalf("unexpected match type %q", recs[0].MatchType)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	r := testRecommender(nil)
	p := csProfile("Python, SQL, React")

	first := r.Recommend(p, 10)
	for i := 0; i < 5; i++ {
		if again := r.Recommend(p, 10); !reflect.DeepEqual(first, again) {
			t.Fatalf("Recommend not deterministic")
		}
	}
}
