package intset

import (
	"fmt"
	"strings"
)

// Filter tests whether an int (glyph ID or code point) is in a set.
// Polarity decides whether membership means accept or reject.
type Filter struct {
	set        Set
	acceptIfIn bool
}

// NewFilter creates a filter over the given set. When acceptIfIn is true
// the filter accepts members of the set, otherwise it accepts non-members.
func NewFilter(acceptIfIn bool, set Set) *Filter {
	return &Filter{set: set, acceptIfIn: acceptIfIn}
}

// Accept reports whether the filter accepts v
func (f *Filter) Accept(v int) bool {
	return f.acceptIfIn == f.set.Contains(v)
}

// AcceptIfIn reports the filter's polarity
func (f *Filter) AcceptIfIn() bool {
	return f.acceptIfIn
}

// Set returns the underlying integer set
func (f *Filter) Set() Set {
	return f.set
}

func (f *Filter) String() string {
	word := "only"
	if !f.acceptIfIn {
		word = "except"
	}
	values := f.set.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%x", v)
	}
	return word + " " + strings.Join(parts, " ")
}
