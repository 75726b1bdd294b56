package student

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Python, SQL, Machine Learning", []string{"python", "sql", "machine learning"}},
		{"  React ,, Node.js ", []string{"react", "node.js"}},
		{"python, Python, PYTHON", []string{"python", "python", "python"}},
		{"", []string{}},
		{" , , ", []string{}},
	}
	for _, tc := range cases {
		if got := SplitSkills(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitSkills(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewProfile_Defaults(t *testing.T) {
	id := uuid.New()

	p := NewProfile(id, " Computer Science ", "Python", 0, "", "")
	if p.UserID != id {
		t.Fatalf("user id not kept")
	}
	if p.Branch != BranchComputerScience {
		t.Fatalf("branch not trimmed: %q", p.Branch)
	}
	if p.CGPA != DefaultCGPA {
		t.Fatalf("zero CGPA not defaulted: %v", p.CGPA)
	}
	if len(p.Projects) != 0 || len(p.Interests) != 0 {
		t.Fatalf("empty lists not empty: %+v", p)
	}
}

func TestNewProfile_CGPABounds(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-1, DefaultCGPA},
		{0, DefaultCGPA},
		{10.5, DefaultCGPA},
		{10, 10},
		{7.25, 7.25},
	}
	for _, tc := range cases {
		p := NewProfile(uuid.New(), "Computer Science", "", tc.in, "", "")
		if p.CGPA != tc.want {
			t.Errorf("cgpa %v: got %v, want %v", tc.in, p.CGPA, tc.want)
		}
	}
}

func TestNewProfile_ProjectsKeepCasing(t *testing.T) {
	p := NewProfile(uuid.New(), "Computer Science", "", 8, "Chat App, ML Pipeline", "Web Development")
	if !reflect.DeepEqual(p.Projects, []string{"Chat App", "ML Pipeline"}) {
		t.Fatalf("unexpected projects %v", p.Projects)
	}
	if !reflect.DeepEqual(p.Interests, []string{"Web Development"}) {
		t.Fatalf("unexpected interests %v", p.Interests)
	}
}
