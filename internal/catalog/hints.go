package catalog

// FormatHints maps each known format to its ordered hint phrases. The table
// is fixed at build time; prompt expansion reads it, never mutates it.
var FormatHints = map[Format][]string{
	FormatLandscape: {"format:landscape", "desktop layout", "wide hero"},
	FormatPortrait:  {"format:portrait", "mobile layout", "vertical video"},
	FormatSquare:    {"format:square", "social square", "1:1 canvas"},
}

// GenericHint is the fallback hint when no recognized format yields any.
const GenericHint = "generic format"

// HintsFor concatenates the hint lists for the given formats in order.
// Unrecognized formats contribute nothing. Duplicate hint text is preserved,
// not deduplicated. When the concatenation is empty the result is the single
// generic hint.
func HintsFor(formats []Format) []string {
	var hints []string
	for _, f := range formats {
		hints = append(hints, FormatHints[f]...)
	}
	if len(hints) == 0 {
		return []string{GenericHint}
	}
	return hints
}
