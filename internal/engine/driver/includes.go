package driver

import (
	"regexp"
	"strings"
)

// includeScanLimit caps how many leading buffer lines the include filter
// examines. Directives beyond the limit are left untouched.
const includeScanLimit = 300

// reIncludeDirective matches a line-initial #include directive and captures
// its quoted or angle-bracketed target. The restricted character class keeps
// the match well inside the directive grammar; anything else is no-match.
var reIncludeDirective = regexp.MustCompile(`^[ \t]*#[ \t]*include[ \t]*["<]([a-zA-Z0-9_/\\: .+\-]+)[">]`)

// StripIncludes removes every line-initial #include directive from the first
// includeScanLimit lines of buffer, preserving the remainder of each line.
// It returns the filtered buffer and the ordered list of removed include
// targets.
func StripIncludes(buffer string) (string, []string) {
	lines := strings.SplitAfter(buffer, "\n")

	var removed []string
	var out strings.Builder
	out.Grow(len(buffer))

	for i, line := range lines {
		if i >= includeScanLimit {
			out.WriteString(line)
			continue
		}

		// The regex is only worth running on preprocessor lines.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] != '#' {
			out.WriteString(line)
			continue
		}

		m := reIncludeDirective.FindStringSubmatchIndex(line)
		if m == nil {
			out.WriteString(line)
			continue
		}

		removed = append(removed, line[m[2]:m[3]])
		out.WriteString(line[m[1]:])
	}

	return out.String(), removed
}
