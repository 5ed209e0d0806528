package search

import "regexp"

// ScanLines runs re over lines[first, last] inclusive (both already
// clamped to the document by the caller) and returns every match,
// naturally ordered by (line, start) since it scans forward one line at a
// time. It backs the synchronous viewport preview; the background
// committed scan in StartBackground runs the regexp over its snapshot
// directly.
func ScanLines(lineAt func(i int) (string, bool), re *regexp.Regexp, first, last int) []Match {
	var out []Match
	for i := first; i <= last; i++ {
		line, ok := lineAt(i)
		if !ok {
			continue
		}
		for _, loc := range re.FindAllStringIndex(line, -1) {
			out = append(out, Match{Line: i, Start: loc[0], End: loc[1]})
		}
	}
	return out
}
