package matching

// synonymGroups lists skill spellings that count as the same skill. Matching
// is deliberately loose and recall-heavy; tightening these groups changes
// observable compatibility scores.
var synonymGroups = [][]string{
	{"python", "python programming", "python3", "python development"},
	{"javascript", "js", "javascript programming"},
	{"html", "html5", "html/css"},
	{"css", "css3", "html/css"},
	{"react", "reactjs", "react.js"},
	{"node", "nodejs", "node.js"},
	{"sql", "database", "mysql", "postgresql"},
	{"machine learning", "ml", "ai"},
	{"data structures", "ds", "algorithms"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	idx := make(map[string]int, 32)
	for gi, group := range synonymGroups {
		for _, s := range group {
			if _, ok := idx[s]; !ok {
				idx[s] = gi
			}
		}
	}
	return idx
}

func sameSynonymGroup(a, b string) bool {
	ga, ok := synonymIndex[a]
	if !ok {
		return false
	}
	gb, ok := synonymIndex[b]
	if !ok {
		return false
	}
	return ga == gb
}
