package formatter

import "strings"

// Mode names recognized by Resolve.
const (
	ModeUpper   = "upper"
	ModeLower   = "lower"
	ModeTitle   = "title"
	ModeReverse = "reverse"
	ModePlain   = "plain"
)

var catalog = map[string]Formatter{
	ModeUpper:   Upper{},
	ModeLower:   Lower{},
	ModeTitle:   Title{},
	ModeReverse: Reverse{},
}

// Resolve maps a mode name to a formatter. The name is trimmed and
// lowercased before lookup; anything unrecognized, including the empty
// string, resolves to Plain. Resolve never fails.
func Resolve(mode string) Formatter {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if f, ok := catalog[normalized]; ok {
		return f
	}
	return Plain{}
}

// Modes returns the recognized mode names for help text and completion.
// The order is fixed but not part of any contract.
func Modes() []string {
	return []string{ModeUpper, ModeLower, ModeTitle, ModeReverse, ModePlain}
}
