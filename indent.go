package codetex

import (
	"strings"
	"unicode"
)

// RemoveIndent unindents a captured block so its first line starts at
// column zero. Surrounding newlines are trimmed, then the first line's
// leading whitespace width is removed from every line. Lines indented less
// than the first lose that many characters regardless of what they are.
func RemoveIndent(block string) string {
	lines := strings.Split(strings.Trim(block, "\n"), "\n")

	indent := 0
	for _, r := range lines[0] {
		if !unicode.IsSpace(r) {
			break
		}
		indent++
	}
	if indent == 0 {
		return strings.Join(lines, "\n")
	}

	for i, line := range lines {
		lines[i] = dropRunes(line, indent)
	}
	return strings.Join(lines, "\n")
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
