package font

import (
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/logging"
)

// TTX name table IDs used for attribute extraction
const (
	nameIDFontFamily        = "1"
	nameIDVersion           = "5"
	nameIDTypographicFamily = "16"
)

// FromTTX builds an attribute snapshot from a fontTools TTX dump. The
// name, version, vendor and monospace fields come from the dumped tables;
// the style, script, variant and weight fields come from the file name
// when it follows the naming guidelines.
func FromTTX(path string) (Attributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Attributes{}, errors.Wrapf(err, errors.ErrFileAccess, "open TTX file %q", path)
	}
	defer f.Close()
	return ParseTTX(f, path)
}

// ParseTTX parses TTX XML from r. The path argument seeds the filename
// attribute and, when it matches the naming guidelines, the name-derived
// fields.
func ParseTTX(r io.Reader, path string) (Attributes, error) {
	log := logging.GetLogger("font.ttx")

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Attributes{}, errors.Wrapf(err, errors.ErrFontTTX, "parse TTX from %q", path)
	}

	root := doc.SelectElement("ttFont")
	if root == nil {
		return Attributes{}, errors.Newf(errors.ErrFontTTX, "%q: missing ttFont root element", path)
	}

	// Start from the naming-guideline attributes when the file name allows,
	// then let table contents override.
	ttfName := strings.TrimSuffix(path, ".ttx")
	attrs, err := FromFilename(ttfName)
	if err != nil {
		log.Debug().Str("path", path).Msg("TTX file name not in naming-guideline form")
		attrs = Attributes{Filename: path}
	}

	if name := root.SelectElement("name"); name != nil {
		applyNameTable(&attrs, name)
	}
	if os2 := root.SelectElement("OS_2"); os2 != nil {
		if vendID := os2.SelectElement("achVendID"); vendID != nil {
			attrs.Vendor = strings.TrimSpace(vendID.SelectAttrValue("value", attrs.Vendor))
		}
	}
	if post := root.SelectElement("post"); post != nil {
		if fixed := post.SelectElement("isFixedPitch"); fixed != nil {
			attrs.Monospace = fixed.SelectAttrValue("value", "0") != "0"
		}
	}
	if head := root.SelectElement("head"); head != nil {
		if rev := head.SelectElement("fontRevision"); rev != nil {
			attrs.Version = strings.TrimSpace(rev.SelectAttrValue("value", attrs.Version))
		}
	}
	// Hint tables present in the dump mark the font as hinted.
	for _, table := range []string{"fpgm", "prep", "cvt"} {
		if root.SelectElement(table) != nil {
			attrs.Hinted = true
			break
		}
	}

	log.Debug().Str("path", path).Str("attrs", attrs.String()).Msg("Extracted attributes from TTX")
	return attrs, nil
}

func applyNameTable(attrs *Attributes, name *etree.Element) {
	records := make(map[string]string)
	for _, rec := range name.SelectElements("namerecord") {
		id := rec.SelectAttrValue("nameID", "")
		if id == "" {
			continue
		}
		// Prefer the first record for each ID; TTX repeats records per
		// platform with identical strings for the fields we read.
		if _, ok := records[id]; !ok {
			records[id] = strings.TrimSpace(rec.Text())
		}
	}

	if family, ok := records[nameIDTypographicFamily]; ok {
		attrs.Name = family
	} else if family, ok := records[nameIDFontFamily]; ok {
		attrs.Name = family
	}
	if version, ok := records[nameIDVersion]; ok {
		attrs.Version = parseVersionString(version)
	}
}

// parseVersionString extracts the numeric revision from a name table
// version string such as "Version 2.001;GOOG;...".
func parseVersionString(s string) string {
	s = strings.TrimPrefix(s, "Version ")
	if ix := strings.IndexAny(s, "; "); ix != -1 {
		s = s[:ix]
	}
	return s
}
