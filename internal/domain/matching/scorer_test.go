package matching

import (
	"reflect"
	"testing"

	"career-connect/internal/domain/student"
)

func TestCalculate_DataScienceExample(t *testing.T) {
	studentSkills := student.SplitSkills("Python, SQL, Communication")
	jobSkills := []string{"python", "machine learning", "sql", "statistics"}

	res := Calculate(studentSkills, student.BranchComputerScience, jobSkills)

	// base 10 + (2/4)*50 = 35
	if res.Score != 35 {
		t.Fatalf("expected score 35, got %d", res.Score)
	}
	if want := []string{"Python", "Sql"}; !reflect.DeepEqual(res.MatchedSkills, want) {
		t.Fatalf("matched skills = %v, want %v", res.MatchedSkills, want)
	}
	if want := []string{"Machine Learning", "Statistics"}; !reflect.DeepEqual(res.MissingSkills, want) {
		t.Fatalf("missing skills = %v, want %v", res.MissingSkills, want)
	}
}

func TestCalculate_ScoreBounds(t *testing.T) {
	jobSkills := []string{"python", "sql", "docker", "aws"}

	// No skills at all: base score alone is below the floor.
	res := Calculate(nil, student.BranchComputerScience, jobSkills)
	if res.Score != MinScore {
		t.Fatalf("empty skills: expected floor %d, got %d", MinScore, res.Score)
	}

	// Full overlap plus a generous base never exceeds the ceiling.
	res = Calculate(jobSkills, student.Branch("Unknown Branch"), jobSkills)
	if res.Score < MinScore || res.Score > MaxScore {
		t.Fatalf("score %d outside [%d,%d]", res.Score, MinScore, MaxScore)
	}

	// No required skills: base only, clamped up.
	res = Calculate([]string{"python"}, student.BranchComputerScience, nil)
	if res.Score != MinScore {
		t.Fatalf("no job skills: expected %d, got %d", MinScore, res.Score)
	}
}

func TestCalculate_BranchBaseScores(t *testing.T) {
	jobSkills := []string{"a1", "b2", "c3", "d4", "e5"} // nothing matches

	cs := Calculate([]string{"zzz"}, student.BranchComputerScience, jobSkills)
	ee := Calculate([]string{"zzz"}, student.BranchElectricalEngineering, jobSkills)
	if cs.Score != MinScore {
		t.Fatalf("CS base 10 should clamp to %d, got %d", MinScore, cs.Score)
	}
	if ee.Score != MinScore {
		t.Fatalf("EE base 15 should clamp to %d, got %d", MinScore, ee.Score)
	}

	// With one match out of two, the base difference becomes visible:
	// CS: 10+25=35, EE: 15+25=40.
	two := []string{"python", "zzzz"}
	csOne := Calculate([]string{"python"}, student.BranchComputerScience, two)
	eeOne := Calculate([]string{"python"}, student.BranchElectricalEngineering, two)
	if csOne.Score != 35 || eeOne.Score != 40 {
		t.Fatalf("expected 35/40, got %d/%d", csOne.Score, eeOne.Score)
	}
}

func TestCalculate_EachStudentSkillCountsOnce(t *testing.T) {
	// "python" matches both job skills, but only the first hit counts.
	res := Calculate([]string{"python"}, student.BranchComputerScience, []string{"python", "python programming"})
	// 10 + (1/2)*50 = 35
	if res.Score != 35 {
		t.Fatalf("expected 35, got %d", res.Score)
	}
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "Python" {
		t.Fatalf("unexpected matched skills %v", res.MatchedSkills)
	}
}

func TestCalculate_MatchedFallbackNeverEmpty(t *testing.T) {
	res := Calculate([]string{"quantum basket weaving"}, student.BranchComputerScience,
		[]string{"python", "sql", "docker", "aws"})
	if len(res.MatchedSkills) != 3 {
		t.Fatalf("expected fallback of first 3 job skills, got %v", res.MatchedSkills)
	}
	if res.MatchedSkills[0] != "Python" {
		t.Fatalf("fallback should keep job order, got %v", res.MatchedSkills)
	}
}

func TestCalculate_Caps(t *testing.T) {
	jobSkills := []string{"python", "sql", "docker", "aws", "git", "linux"}
	res := Calculate(jobSkills, student.BranchComputerScience, jobSkills)
	if len(res.MatchedSkills) > 4 {
		t.Fatalf("matched skills cap 4 violated: %v", res.MatchedSkills)
	}

	res = Calculate(nil, student.BranchComputerScience, jobSkills)
	if len(res.MissingSkills) > 3 {
		t.Fatalf("missing skills cap 3 violated: %v", res.MissingSkills)
	}
}

func TestCalculate_MatchedMissingDisjoint(t *testing.T) {
	studentSkills := []string{"python", "react"}
	jobSkills := []string{"python", "react", "sql", "docker"}

	res := Calculate(studentSkills, student.BranchComputerScience, jobSkills)

	missing := make(map[string]struct{}, len(res.MissingSkills))
	for _, m := range res.MissingSkills {
		missing[m] = struct{}{}
	}
	for _, m := range res.MatchedSkills {
		if _, ok := missing[m]; ok {
			t.Fatalf("skill %q in both matched and missing", m)
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	studentSkills := student.SplitSkills("Python, SQL, React, Git")
	jobSkills := []string{"python", "machine learning", "sql", "statistics", "git"}

	first := Calculate(studentSkills, student.BranchComputerScience, jobSkills)
	for i := 0; i < 10; i++ {
		again := Calculate(studentSkills, student.BranchComputerScience, jobSkills)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Calculate not deterministic: %+v vs %+v", first, again)
		}
	}
}
