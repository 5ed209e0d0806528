package search

import (
	"regexp"
	"strings"

	"github.com/mna/glance/internal/pager/glanceerr"
)

// CompileSmartCase compiles query as a regular expression. When smartCase is
// enabled and query contains no uppercase letter, it compiles
// case-insensitively (prefixing "(?i)"); otherwise it compiles exactly as
// given. An invalid pattern is reported as a glanceerr.BadRegex error, never
// a panic.
func CompileSmartCase(query string, smartCase bool) (*regexp.Regexp, error) {
	pattern := query
	if smartCase && !hasUpper(query) {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, glanceerr.New(glanceerr.BadRegex, "compile "+query, err)
	}
	return re, nil
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}
