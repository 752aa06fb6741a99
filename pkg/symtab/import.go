package symtab

import (
	"fmt"
	"strings"
)

// ModuleImport records a use-association of another module's names into a
// scope.  A wildcard import exposes all of the module's names; a restricted
// import exposes only the names in Only, in the order the use statements
// supplied them (duplicates permitted, since repeated restricted imports are
// legal and cumulative).
type ModuleImport struct {
	// Name is the normalized name of the imported module.
	Name string
	// Wildcard is true when the module was imported without a restriction
	// list.
	Wildcard bool
	// Only holds the normalized restricted names, in statement order.  Nil
	// when Wildcard is true.
	Only []string
}

// merge folds a subsequent use statement for the same module into the
// record.  A nil onlyList is a wildcard import.  Rules:
//
//   - wildcard + anything stays wildcard (a later restriction is absorbed)
//   - restricted + restricted appends, preserving order and duplicates
//   - restricted + wildcard promotes the record to wildcard, discarding the
//     restricted list (symmetry assumption, see DESIGN.md)
func (m *ModuleImport) merge(onlyList []string) {
	if m.Wildcard {
		return
	}
	if onlyList == nil {
		m.Wildcard = true
		m.Only = nil
		return
	}
	m.Only = append(m.Only, onlyList...)
}

// String implements fmt.Stringer
func (m *ModuleImport) String() string {
	if m.Wildcard {
		return fmt.Sprintf("use %s", m.Name)
	}
	return fmt.Sprintf("use %s, only: %s", m.Name, strings.Join(m.Only, ", "))
}

// normalizeOnlyList validates and normalizes the entries of a restriction
// list.  A nil list (wildcard) passes through.  Entries that are empty after
// normalization are rejected; the error enumerates every offending position
// so the caller sees all of them at once.
func normalizeOnlyList(onlyList []string) ([]string, error) {
	if onlyList == nil {
		return nil, nil
	}
	normalized := make([]string, len(onlyList))
	var bad []string
	for i, entry := range onlyList {
		normalized[i] = Normalize(entry)
		if normalized[i] == "" {
			bad = append(bad, fmt.Sprintf("%d:%q", i, entry))
		}
	}
	if len(bad) > 0 {
		return nil, &InvalidArgumentError{
			Field:  "only list",
			Reason: fmt.Sprintf("entries must be non-empty names, got [%s]", strings.Join(bad, ", ")),
		}
	}
	return normalized, nil
}
