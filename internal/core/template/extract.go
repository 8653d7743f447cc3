// Package template extracts variable references embedded in node text
// content. It is pure: no state, no failure mode, deterministic output.
package template

import "regexp"

// pattern matches {{name}} references. Non-greedy so adjacent references
// never merge, and at least one character is required between delimiters.
var pattern = regexp.MustCompile(`\{\{(.+?)\}\}`)

// Extract returns every variable name referenced in text, in order of
// appearance, matching left-to-right without overlap. Duplicates are
// preserved: each occurrence yields one entry and therefore one dynamic
// handle. Text with no references yields an empty sequence.
func Extract(text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Equal reports whether two match sequences are identical element-wise.
// Used to detect the no-op path: an edit that leaves the sequence
// unchanged must not churn the dynamic handle list.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
