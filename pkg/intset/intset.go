// Package intset parses textual code point and glyph ID sets and provides
// the include/exclude filters built from them.
package intset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/fontlint/pkg/errors"
)

// Set is a set of non-negative integers (code points or glyph IDs)
type Set map[int]struct{}

// Contains reports whether v is a member of the set
func (s Set) Contains(v int) bool {
	_, ok := s[v]
	return ok
}

// Len returns the cardinality of the set
func (s Set) Len() int {
	return len(s)
}

// Values returns the members of the set in ascending order
func (s Set) Values() []int {
	values := make([]int, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Parse builds a Set from a list of values or ranges separated by spaces.
// A range is two values separated by a hyphen with no intervening spaces.
// When hex is true, values are parsed as base-16 literals, otherwise base-10.
//
// Overlap between values and ranges is an error, not a silent merge: the
// parsed item count must equal the cardinality of the resulting set.
func Parse(spec string, hex bool) (Set, error) {
	result := make(Set)
	count := 0
	base := 10
	if hex {
		base = 16
	}

	for _, val := range strings.Fields(spec) {
		if strings.Contains(val, "-") { // assume range
			parts := strings.Split(val, "-")
			if len(parts) != 2 {
				return nil, errors.Newf(errors.ErrIntSet, "could not parse range from %q", val)
			}
			lo, err := parseValue(parts[0], base)
			if err != nil {
				return nil, err
			}
			hi, err := parseValue(parts[1], base)
			if err != nil {
				return nil, err
			}
			if lo >= hi {
				return nil, errors.Newf(errors.ErrIntSet, "range %q must have high > low", val)
			}
			for v := lo; v <= hi; v++ {
				result[v] = struct{}{}
			}
			count += hi - lo + 1
		} else {
			v, err := parseValue(val, base)
			if err != nil {
				return nil, err
			}
			result[v] = struct{}{}
			count++
		}
	}

	if len(result) != count {
		return nil, errors.Newf(errors.ErrIntSet,
			"duplicate values in %q, expected count is %d but result has %d", spec, count, len(result))
	}
	return result, nil
}

func parseValue(s string, base int) (int, error) {
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrIntSet, "could not parse value %q", s)
	}
	return int(v), nil
}
