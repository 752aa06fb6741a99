package symtab

import "strings"

// Normalize converts an identifier to its canonical case-insensitive form.
// Every name entering the symbol table (scope names, symbol names, module
// names, only-list entries, lookup queries) passes through here so that no
// two code paths can disagree on the canonical form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
