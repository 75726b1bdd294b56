package matching

import "strings"

// Matches reports whether two free-text skill tokens describe the same
// skill. Two tokens match when either contains the other, when any
// whitespace-delimited word of one appears in the other, or when both belong
// to the same synonym group.
//
// The looseness is intentional: skill text comes from unstructured profiles
// and job listings, so recall is favored over precision. Pure function.
func Matches(a, b string) bool {
	a = Normalize(a)
	b = Normalize(b)
	if a == "" || b == "" {
		return false
	}

	if strings.Contains(b, a) || strings.Contains(a, b) {
		return true
	}

	for _, w := range strings.Fields(a) {
		if strings.Contains(b, w) {
			return true
		}
	}
	for _, w := range strings.Fields(b) {
		if strings.Contains(a, w) {
			return true
		}
	}

	return sameSynonymGroup(a, b)
}

// Normalize lower-cases and trims a skill token.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleCase renders a normalized skill token the way it is shown to users:
// every letter that follows a non-letter is upper-cased ("machine learning"
// -> "Machine Learning", "node.js" -> "Node.Js").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
		case isLetter:
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
