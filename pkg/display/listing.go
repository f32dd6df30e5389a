package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/rules"
)

// ListOptions controls the tag listing annotations
type ListOptions struct {
	// Comments annotates tags that carry a catalog comment
	Comments bool
	// Filters annotates tags that declare a relation/arg-type signature
	Filters bool
}

// RenderTagListing writes all catalog tags, sorted lexicographically by
// full tag path, with optional annotations.
func RenderTagListing(w io.Writer, cat *catalog.Catalog, opts ListOptions, format Format) {
	for _, entry := range cat.Entries() {
		fmt.Fprintln(w, Styled(format, "Tag", entry.Tag))
		if opts.Filters && entry.RelationPattern != "" {
			signature := entry.RelationPattern + " " + entry.ArgTypePattern
			fmt.Fprintf(w, "  %s\n", Styled(format, "Filter", signature))
		}
		if opts.Comments && entry.Comment != "" {
			fmt.Fprintf(w, "  %s\n", Styled(format, "Comment", "-- "+entry.Comment))
		}
	}
}

// RenderResolveReport writes the tags enabled for one font, annotating
// tags that carry a filter.
func RenderResolveReport(w io.Writer, ts *rules.TestSet, format Format) {
	enabled := ts.Enabled()
	heading := fmt.Sprintf("%d of %d tests enabled:", len(enabled), ts.Catalog().Len())
	fmt.Fprintln(w, Styled(format, "Heading", heading))
	for _, tag := range enabled {
		filter, _ := ts.Filter(tag)
		if filter != nil {
			fmt.Fprintf(w, "  %s %s\n", Styled(format, "Tag", tag), Styled(format, "Filter", filter.String()))
		} else {
			fmt.Fprintf(w, "  %s\n", Styled(format, "Tag", tag))
		}
	}
}

// RenderRunReport writes the run and/or skip audit after a validation
// pass, in the host tool's traditional wording.
func RenderRunReport(w io.Writer, ts *rules.TestSet, runlog, skiplog bool, format Format) {
	if runlog {
		log := ts.RunLog()
		if len(log) > 0 {
			fmt.Fprintln(w, Styled(format, "Run", fmt.Sprintf("Ran %d test%s:", len(log), plural(len(log)))))
			for _, tag := range log {
				fmt.Fprintf(w, "  %s\n", tag)
			}
		} else {
			fmt.Fprintln(w, "Ran no tests.")
		}
	}
	if skiplog {
		log := ts.SkipLog()
		if len(log) > 0 {
			fmt.Fprintln(w, Styled(format, "Skip", fmt.Sprintf("Skipped %d test/group%s:", len(log), plural(len(log)))))
			for _, tag := range log {
				fmt.Fprintf(w, "  %s\n", tag)
			}
		} else {
			fmt.Fprintln(w, "Skipped no tests.")
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
