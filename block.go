package codetex

import (
	"fmt"
	"regexp"
)

// Marker names used by LaTeX presentations.
const (
	FrameMarker   = "frame"
	ListingMarker = "lstlisting"
)

// BlockMatch is a single begin/end environment found in a text.
type BlockMatch struct {
	// Full is the whole environment including its markers.
	Full string

	// Content is the text strictly between the markers.
	Content string

	// Start and End are byte offsets of Full in the scanned text.
	Start int
	End   int
}

// BlockMatcher finds \begin{name} ... \end{name} environments.
//
// Matching is non-greedy: a block runs from a begin marker to the next end
// marker with the same name. Same-name nesting is therefore not supported,
// and a begin marker with no matching end marker never matches.
type BlockMatcher struct {
	name string
	re   *regexp.Regexp
}

// NewBlockMatcher returns a matcher for environments called name.
// The name is matched literally and case-sensitively.
func NewBlockMatcher(name string) *BlockMatcher {
	q := regexp.QuoteMeta(name)
	pattern := fmt.Sprintf(`\\begin\{%s\}(?s:(.*?))\\end\{%s\}`, q, q)
	return &BlockMatcher{
		name: name,
		re:   regexp.MustCompile(pattern),
	}
}

// Name returns the environment name the matcher looks for.
func (m *BlockMatcher) Name() string {
	return m.name
}

// FindAll returns every non-overlapping match in text, left to right.
func (m *BlockMatcher) FindAll(text string) []BlockMatch {
	locs := m.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]BlockMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, BlockMatch{
			Full:    text[loc[0]:loc[1]],
			Content: text[loc[2]:loc[3]],
			Start:   loc[0],
			End:     loc[1],
		})
	}
	return matches
}
