// Package catalog defines the fixed hierarchy of lint test tags.
//
// The hierarchy is parsed once from an embedded, indentation-significant
// description. Any level of the hierarchy, down to the root, can be named
// by enable/disable directives in a rule spec. The parsed catalog is
// immutable and safe to share across concurrent resolutions.
package catalog

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/fontlint/pkg/errors"
)

//go:embed embedded/catalog.txt
var defaultData string

// Entry describes one tag in the catalog. RelationPattern and
// ArgTypePattern are both set or both empty; a tag without them does not
// accept a filter clause.
type Entry struct {
	Tag             string
	RelationPattern string
	ArgTypePattern  string
	Comment         string

	relationRx *regexp.Regexp
	argTypeRx  *regexp.Regexp
}

// AllowsOptions reports whether the tag declares a relation pattern,
// i.e. whether a filter clause may be attached to it.
func (e *Entry) AllowsOptions() bool {
	return e.relationRx != nil
}

// AllowsRelation reports whether the relation word is permitted by the
// tag's relation pattern.
func (e *Entry) AllowsRelation(relation string) bool {
	return e.relationRx != nil && e.relationRx.MatchString(relation)
}

// AllowsArgType reports whether the argument type is permitted by the
// tag's arg-type pattern.
func (e *Entry) AllowsArgType(argType string) bool {
	return e.argTypeRx != nil && e.argTypeRx.MatchString(argType)
}

// Catalog is the immutable set of all tags with their entries.
type Catalog struct {
	entries map[string]*Entry
	tags    []string // sorted
}

// Fields of a description line are:
//
//	zero or more spaces
//	tag, lower case alphanumeric plus underscore
//	optional relation pattern and value type pattern, delimited by whitespace
//	optional '--' followed by comment to end of line
var lineRx = regexp.MustCompile(`^(\s*)([a-z0-9_]+)(?:\s+(\S+)\s+(\S+))?\s*(?:--\s*(.*?)\s*)?$`)

// Parse builds a catalog from a hierarchical text description. Leading
// whitespace encodes nesting depth; a line's full tag path is its nearest
// enclosing ancestor's path joined with '/' plus its own name.
func Parse(data string) (*Catalog, error) {
	type frame struct {
		indent int
		tag    string
	}

	entries := make(map[string]*Entry)
	stack := []frame{{indent: 0, tag: ""}}

	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := lineRx.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Newf(errors.ErrCatalogParse, "failed to match line: %q", line)
		}
		lineIndent := len(m[1])
		name := m[2]
		relation := m[3]
		argType := m[4]
		comment := m[5]

		for lineIndent <= stack[len(stack)-1].indent && len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]

		tag := name
		if top.tag != "" {
			tag = top.tag + "/" + name
		}

		entry := &Entry{
			Tag:             tag,
			RelationPattern: relation,
			ArgTypePattern:  argType,
			Comment:         comment,
		}
		if relation != "" {
			// Patterns match at the start of the word, as declared.
			entry.relationRx = regexp.MustCompile(`^(?:` + relation + `)`)
			entry.argTypeRx = regexp.MustCompile(`^(?:` + argType + `)`)
		}
		entries[tag] = entry

		if lineIndent > top.indent {
			stack = append(stack, frame{indent: lineIndent, tag: tag})
		}
	}

	tags := make([]string, 0, len(entries))
	for tag := range entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return &Catalog{entries: entries, tags: tags}, nil
}

// MustParse is like Parse but panics on error. Intended for the embedded
// description, which is fixed at build time.
func MustParse(data string) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustParse(defaultData)
})

// Default returns the shared catalog built from the embedded description.
func Default() *Catalog {
	return defaultCatalog()
}

// Has reports whether tag is an exact catalog entry
func (c *Catalog) Has(tag string) bool {
	_, ok := c.entries[tag]
	return ok
}

// Entry returns the entry for an exact tag
func (c *Catalog) Entry(tag string) (*Entry, bool) {
	e, ok := c.entries[tag]
	return e, ok
}

// Len returns the number of tags in the catalog
func (c *Catalog) Len() int {
	return len(c.tags)
}

// Tags returns all tag paths, sorted lexicographically
func (c *Catalog) Tags() []string {
	tags := make([]string, len(c.tags))
	copy(tags, c.tags)
	return tags
}

// Entries returns all entries, sorted lexicographically by tag path
func (c *Catalog) Entries() []*Entry {
	entries := make([]*Entry, len(c.tags))
	for i, tag := range c.tags {
		entries[i] = c.entries[tag]
	}
	return entries
}

// TagSet is a set of full tag paths
type TagSet map[string]struct{}

// Contains reports whether the set contains tag
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the members of the set in lexicographic order
func (s TagSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ResolveScope expands a possibly partial tag into the set of catalog tags
// it names: the tag itself plus its entire subtree. A tag that is not an
// exact entry is matched as a '/'- or '_'-delimited segment; the match must
// be unique or resolution fails.
func (c *Catalog) ResolveScope(tag string) (TagSet, error) {
	if !c.Has(tag) {
		uniqueTag := ""
		for _, t := range c.tags {
			ix := strings.Index(t, tag)
			if ix == -1 {
				continue
			}
			if ix > 0 && !isSegmentBoundary(t[ix-1]) {
				continue
			}
			end := ix + len(tag)
			if end < len(t) && !isSegmentBoundary(t[end]) {
				continue
			}
			if uniqueTag != "" {
				return nil, errors.Newf(errors.ErrAmbiguousTag, "multiple matches for partial tag %q", tag)
			}
			uniqueTag = t
		}
		if uniqueTag == "" {
			return nil, errors.Newf(errors.ErrUnknownTag, "unknown tag: %q", tag)
		}
		tag = uniqueTag
	}

	result := make(TagSet)
	for _, candidate := range c.tags {
		if strings.HasPrefix(candidate, tag) {
			result[candidate] = struct{}{}
		}
	}
	return result, nil
}

func isSegmentBoundary(b byte) bool {
	return b == '/' || b == '_'
}
