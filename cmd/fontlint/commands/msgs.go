package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "A rule-driven test selector for font lint runs"
	MsgTagsShort    = "List the tags of the test catalog"
	MsgTagsLong     = "List every test tag in the catalog, sorted, with optional comment and filter annotations."
	MsgCheckShort   = "Validate a lint spec file"
	MsgCheckLong    = "Parse a lint spec file and report the first grammar or catalog error, or the number of rule blocks on success."
	MsgResolveShort = "Resolve the enabled tests for one font"
	MsgResolveLong  = `Resolve applies the rule spec to a font's attributes and prints the
tests that would run for it. Attributes come from the font path given as
an argument (a Noto file name, or a TTX dump with --ttx) and can be
overridden with flags.`
	MsgConfigShort     = "Manage the fontlint configuration file"
	MsgConfigInitShort = "Write the default configuration file"
	MsgConfigPathShort = "Print the configuration file path"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term or text"
	MsgFlagComments = "Show catalog comments next to each tag"
	MsgFlagFilters  = "Show relation/arg-type signatures next to filterable tags"
	MsgFlagSpec     = "Rule spec file to apply (overrides the configured spec_file)"
	MsgFlagExtra    = "Inline spec text processed after the spec file"
	MsgFlagTTX      = "Treat the font argument as a TTX dump and read attributes from it"
	MsgFlagRunlog   = "Print the tags that would run"
	MsgFlagSkiplog  = "Print the tags that would be skipped"
	MsgFlagForce    = "Overwrite the configuration file if it already exists"

	// Status messages
	MsgSpecOKFormat     = "%s: OK, %d rule block%s\n"
	MsgConfigInitFormat = "Wrote default configuration to %s\n"
	MsgNoSpecNotice     = "No spec file configured; all tests enabled.\n"
	MsgErrNoCommand     = "no command specified"
	MsgErrAttributeBoth = "give a font path or attribute flags, not a bare --ttx"
)

// Long messages
const (
	MsgRootLong = `fontlint decides which lint tests run for which fonts. A plain-text
spec pairs font conditions with cumulative enable/disable rules over a
hierarchical tag catalog; resolving a font's attributes against the
spec yields the exact set of tests to run, with optional codepoint or
glyph filters.`
)
