package matching

import "testing"

func TestMatches_Substring(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"python", "python programming", true},
		{"rest apis", "rest", true},
		{"Python", "PYTHON", true},
		{"java", "javascript", true}, // loose by design
		{"sql", "statistics", false},
		{"golang", "haskell", false},
		{"", "python", false},
		{"python", "", false},
	}

	for _, c := range cases {
		if got := Matches(c.a, c.b); got != c.want {
			t.Fatalf("Matches(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestMatches_WordOverlap(t *testing.T) {
	if !Matches("machine learning engineer", "deep learning") {
		t.Fatalf("expected word-overlap match")
	}
	if !Matches("design", "circuit design") {
		t.Fatalf("expected word containment match")
	}
	if Matches("water treatment", "circuit design") {
		t.Fatalf("unexpected match for disjoint phrases")
	}
}

func TestMatches_Synonyms(t *testing.T) {
	pairs := [][2]string{
		{"js", "javascript"},
		{"ml", "ai"},
		{"mysql", "database"},
		{"ds", "algorithms"},
		{"reactjs", "react.js"},
	}
	for _, p := range pairs {
		if !Matches(p[0], p[1]) {
			t.Fatalf("expected synonym match for %q / %q", p[0], p[1])
		}
	}

	if Matches("ml", "js") {
		t.Fatalf("different synonym groups must not match")
	}
}

func TestMatches_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"python", "python programming"},
		{"js", "javascript"},
		{"node", "node.js"},
	}
	for _, p := range pairs {
		if Matches(p[0], p[1]) != Matches(p[1], p[0]) {
			t.Fatalf("Matches not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"python":           "Python",
		"sql":              "Sql",
		"machine learning": "Machine Learning",
		"node.js":          "Node.Js",
		"rest apis":        "Rest Apis",
		"c/c++":            "C/C++",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Fatalf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
