package rewriter

import (
	"fmt"
	"strings"
)

// Selector identifies the elements a rule applies to.
// Tag and ID may each be empty, but not both.
type Selector struct {
	Tag string
	ID  string
}

// ParseSelector parses "tag", "#id" or "tag#id".
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}

	tag, id, hasID := strings.Cut(s, "#")
	if hasID && id == "" {
		return Selector{}, fmt.Errorf("selector %q: empty id", s)
	}
	if strings.ContainsAny(tag, " .[]:>+~#") || strings.ContainsAny(id, " .[]:>+~#") {
		return Selector{}, fmt.Errorf("selector %q: only tag, #id and tag#id are supported", s)
	}

	return Selector{Tag: tag, ID: id}, nil
}

// MustParseSelector is like ParseSelector but panics on error.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// Matches reports whether an element with the given tag and id attribute
// is selected. Both comparisons are exact.
func (s Selector) Matches(tag, id string, hasID bool) bool {
	if s.Tag != "" && s.Tag != tag {
		return false
	}
	if s.ID != "" && (!hasID || s.ID != id) {
		return false
	}
	return true
}

func (s Selector) String() string {
	if s.ID == "" {
		return s.Tag
	}
	return s.Tag + "#" + s.ID
}
