package diff

import (
	"fmt"
	"regexp"
	"strings"
)

// pattern is one compiled exclusion pattern. A path is excluded when any of
// the match rules succeeds, tried in order: exact-or-suffix, basename, glob.
type pattern struct {
	raw  string
	glob *regexp.Regexp // nil when the glob form failed to compile
}

// compilePatterns prepares the exclusion patterns. A pattern whose glob form
// does not compile still participates with its literal rules; the failure is
// reported as a warning, never an error.
func compilePatterns(raw []string) ([]pattern, []string) {
	patterns := make([]pattern, 0, len(raw))
	var warnings []string
	for _, r := range raw {
		p := pattern{raw: r}
		re, err := globRegexp(r)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid exclusion glob %q: %v", r, err))
		} else {
			p.glob = re
		}
		patterns = append(patterns, p)
	}
	return patterns, warnings
}

func (p pattern) matches(path string) bool {
	if path == p.raw || strings.HasSuffix(path, p.raw) {
		return true
	}
	if base := path[strings.LastIndex(path, "/")+1:]; base == p.raw {
		return true
	}
	return p.glob != nil && p.glob.MatchString(path)
}

// globRegexp converts a glob pattern to an anchored regexp: "." is literal,
// "*" matches any run of characters, "?" matches a single character. All
// other characters pass through, so a malformed pattern can fail to compile.
func globRegexp(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range glob {
		switch r {
		case '.':
			b.WriteString(`\.`)
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
