package font

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/fontlint/pkg/errors"
)

// Noto font naming guidelines: Noto<Style><Script>?<Variant>?-<Weight>.ttf
// for most families, with a separate scheme for the CJK families.

var fontStyles = []string{"Sans", "Serif", "Kufi", "Naskh", "Nastaliq", "Emoji"}

var fontWeights = []string{"Regular", "Bold", "Italic", "BoldItalic"}

var fontVariants = []string{
	"UI",
	// The next three are for Syriac
	"Eastern", "Western", "Estrangela",
}

var cjkFontStyles = []string{"Sans"}

var cjkFontWeights = []string{"Light", "DemiLight", "Thin", "Regular", "Medium", "Bold", "Black"}

var cjkFontVariants = []string{"JP", "KR", "SC", "TC", "CJKjp", "CJKkr", "CJKsc", "CJKtc"}

// compactScripts maps the compact (no spaces, no underscores) human-readable
// script names used in Noto file names to ISO 15924 script codes.
var compactScripts = map[string]string{
	"Arabic":              "Arab",
	"Armenian":            "Armn",
	"Avestan":             "Avst",
	"Balinese":            "Bali",
	"Bamum":               "Bamu",
	"Batak":               "Batk",
	"Bengali":             "Beng",
	"Brahmi":              "Brah",
	"Buginese":            "Bugi",
	"Buhid":               "Buhd",
	"CanadianAboriginal":  "Cans",
	"Carian":              "Cari",
	"Cham":                "Cham",
	"Cherokee":            "Cher",
	"Coptic":              "Copt",
	"Cypriot":             "Cprt",
	"Cyrillic":            "Cyrl",
	"Deseret":             "Dsrt",
	"Devanagari":          "Deva",
	"EgyptianHieroglyphs": "Egyp",
	"Ethiopic":            "Ethi",
	"Georgian":            "Geor",
	"Glagolitic":          "Glag",
	"Gothic":              "Goth",
	"Greek":               "Grek",
	"Gujarati":            "Gujr",
	"Gurmukhi":            "Guru",
	"Hanunoo":             "Hano",
	"Hebrew":              "Hebr",
	"ImperialAramaic":     "Armi",
	"Javanese":            "Java",
	"Kaithi":              "Kthi",
	"Kannada":             "Knda",
	"KayahLi":             "Kali",
	"Kharoshthi":          "Khar",
	"Khmer":               "Khmr",
	"Lao":                 "Laoo",
	"Lepcha":              "Lepc",
	"Limbu":               "Limb",
	"LinearB":             "Linb",
	"Lisu":                "Lisu",
	"Lycian":              "Lyci",
	"Lydian":              "Lydi",
	"Malayalam":           "Mlym",
	"Mandaic":             "Mand",
	"MeeteiMayek":         "Mtei",
	"Mongolian":           "Mong",
	"Myanmar":             "Mymr",
	"NKo":                 "Nkoo",
	"NewTaiLue":           "Talu",
	"Ogham":               "Ogam",
	"OlChiki":             "Olck",
	"OldItalic":           "Ital",
	"OldPersian":          "Xpeo",
	"OldSouthArabian":     "Sarb",
	"OldTurkic":           "Orkh",
	"Oriya":               "Orya",
	"Osmanya":             "Osma",
	"PhagsPa":             "Phag",
	"Phoenician":          "Phnx",
	"Rejang":              "Rjng",
	"Runic":               "Runr",
	"Samaritan":           "Samr",
	"Saurashtra":          "Saur",
	"Shavian":             "Shaw",
	"Sinhala":             "Sinh",
	"Sundanese":           "Sund",
	"SylotiNagri":         "Sylo",
	"Symbols":             "Zsym",
	"Syriac":              "Syrc",
	"Tagalog":             "Tglg",
	"Tagbanwa":            "Tagb",
	"TaiLe":               "Tale",
	"TaiTham":             "Lana",
	"TaiViet":             "Tavt",
	"Tamil":               "Taml",
	"Telugu":              "Telu",
	"Thaana":              "Thaa",
	"Thai":                "Thai",
	"Tibetan":             "Tibt",
	"Tifinagh":            "Tfng",
	"Ugaritic":            "Ugar",
	"Vai":                 "Vaii",
	"Yi":                  "Yiii",
}

// hardCodedFontInfo covers legacy file names that predate the naming
// guidelines: style, script, variant, weight.
var hardCodedFontInfo = map[string][4]string{
	"AndroidEmoji.ttf":                     {"Sans", "Qaae", "", "Regular"},
	"DroidEmoji.ttf":                       {"Sans", "Qaae", "", "Regular"},
	"NotoEmoji-Regular.ttf":                {"", "Qaae", "", "Regular"},
	"NotoNaskh-Regular.ttf":                {"Naskh", "Arab", "", "Regular"},
	"NotoNaskh-Bold.ttf":                   {"Naskh", "Arab", "", "Bold"},
	"NotoNaskhUI-Regular.ttf":              {"Naskh", "Arab", "UI", "Regular"},
	"NotoNaskhUI-Bold.ttf":                 {"Naskh", "Arab", "UI", "Bold"},
	"NotoSansCypriotSyllabary-Regular.ttf": {"Sans", "Cprt", "", "Regular"},
	"NotoSansEmoji-Regular.ttf":            {"Sans", "Qaae", "", "Regular"},
	"NotoSansKufiArabic-Regular.ttf":       {"Kufi", "Arab", "", "Regular"},
	"NotoSansKufiArabic-Bold.ttf":          {"Kufi", "Arab", "", "Bold"},
	"NotoSansSymbols-Regular.ttf":          {"Sans", "Zsym", "", "Regular"},
}

var (
	fontNameRx    = regexp.MustCompile(buildFontNamePattern())
	cjkFontNameRx = regexp.MustCompile(buildCJKFontNamePattern())
)

func buildFontNamePattern() string {
	return "^Noto" +
		"(" + alternation(fontStyles) + ")" +
		"(" + alternation(compactScriptNames()) + ")?" +
		"(" + alternation(fontVariants) + ")?" +
		"-" +
		"(" + alternation(fontWeights) + ")" +
		`\.ttf$`
}

func buildCJKFontNamePattern() string {
	return "^Noto" +
		"(" + alternation(cjkFontStyles) + ")" +
		"(Mono)?" +
		"(" + alternation(cjkFontVariants) + ")?" +
		"-" +
		"(" + alternation(cjkFontWeights) + ")" +
		`\.otf$`
}

func compactScriptNames() []string {
	names := make([]string, 0, len(compactScripts))
	for name := range compactScripts {
		names = append(names, name)
	}
	return names
}

// alternation joins words into a regex alternation, longest first so that
// prefixes of longer words cannot win the submatch.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return strings.Join(sorted, "|")
}

// FromFilename derives an attribute snapshot from a font file path that
// follows the Noto naming guidelines. The version field is left empty; it
// is only known once the font itself is inspected.
func FromFilename(path string) (Attributes, error) {
	base := filepath.Base(path)
	hinted := strings.Contains(path, "/hinted") || strings.Contains(path, "_hinted")

	attrs := Attributes{
		Filename: base,
		Name:     "Noto",
		Hinted:   hinted,
		Vendor:   "Monotype",
	}

	if m := fontNameRx.FindStringSubmatch(base); m != nil {
		attrs.Style = m[1]
		attrs.Variant = m[3]
		attrs.Weight = m[4]
		switch {
		case m[2] != "":
			attrs.Script = compactScripts[m[2]]
		case attrs.Style == "Sans" || attrs.Style == "Serif":
			attrs.Script = "Latn" // LGC really
		case attrs.Style == "Nastaliq":
			attrs.Script = "Arab"
		default:
			// Legacy names such as NotoEmoji-Regular.ttf match the pattern
			// but carry no script; the hard-coded table has the answer.
			info, ok := hardCodedFontInfo[base]
			if !ok {
				return Attributes{}, errors.Newf(errors.ErrFontName,
					"style %s needs a script mentioned in the file name: %q", attrs.Style, base)
			}
			attrs.Style = info[0]
			attrs.Script = info[1]
			attrs.Variant = info[2]
			attrs.Weight = info[3]
		}
		return attrs, nil
	}

	if m := cjkFontNameRx.FindStringSubmatch(base); m != nil {
		attrs.Style = m[1]
		attrs.Monospace = m[2] == "Mono"
		attrs.Variant = m[3]
		attrs.Weight = m[4]
		attrs.Vendor = "Adobe"
		return attrs, nil
	}

	if info, ok := hardCodedFontInfo[base]; ok {
		attrs.Style = info[0]
		attrs.Script = info[1]
		attrs.Variant = info[2]
		attrs.Weight = info[3]
		return attrs, nil
	}

	return Attributes{}, errors.Newf(errors.ErrFontName,
		"file name %q does not match the Noto font naming guidelines", base)
}
