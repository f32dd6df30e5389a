// Package font holds the descriptive metadata snapshot that rule
// conditions are matched against, plus helpers that build a snapshot from
// a font file name or a TTX dump. The engine itself never opens a binary
// font file.
package font

import (
	"fmt"
	"strconv"
)

// Attributes is an immutable snapshot of one font's descriptive metadata.
// String fields are optional; the empty string means "not known".
type Attributes struct {
	Filename  string
	Name      string
	Style     string
	Script    string
	Variant   string
	Weight    string
	Vendor    string
	Version   string
	Monospace bool
	Hinted    bool
}

// Field returns the value of the named condition field. Boolean fields are
// exposed in their strconv form so relations can treat them uniformly.
// The second result is false for an unknown field name.
func (a Attributes) Field(name string) (string, bool) {
	switch name {
	case "filename":
		return a.Filename, true
	case "name":
		return a.Name, true
	case "style":
		return a.Style, true
	case "script":
		return a.Script, true
	case "variant":
		return a.Variant, true
	case "weight":
		return a.Weight, true
	case "hinted":
		return strconv.FormatBool(a.Hinted), true
	case "vendor":
		return a.Vendor, true
	case "version":
		return a.Version, true
	}
	return "", false
}

func (a Attributes) String() string {
	return fmt.Sprintf(
		"Attributes{filename: %s, name: %s, style: %s, script: %s, variant: %s, weight: %s, monospace: %t, hinted: %t, vendor: %s, version: %s}",
		a.Filename, a.Name, a.Style, a.Script, a.Variant, a.Weight, a.Monospace, a.Hinted, a.Vendor, a.Version)
}
