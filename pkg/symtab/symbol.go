package symtab

import "fmt"

// Symbol associates a declared name with the classification tag the parser
// recorded for it (e.g. the declared type label "real").  The classification
// is opaque to this package; it is stored and reported verbatim.  A Symbol is
// immutable once constructed: a redeclaration replaces the Symbol rather
// than mutating it.
type Symbol struct {
	// Name is the normalized name of the symbol.
	Name string
	// Classification is the parser-supplied tag, typically a declared-type
	// label.  Not an enumerated set.
	Classification string
}

// NewSymbol constructs a symbol, normalizing the name.  Both arguments must
// be non-empty after normalization.
func NewSymbol(name, classification string) (*Symbol, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return nil, &InvalidArgumentError{
			Field:  "symbol name",
			Reason: fmt.Sprintf("must be non-empty, got %q", name),
		}
	}
	if classification == "" {
		return nil, &InvalidArgumentError{
			Field:  "symbol classification",
			Reason: fmt.Sprintf("must be non-empty for symbol %q", normalized),
		}
	}
	return &Symbol{
		Name:           normalized,
		Classification: classification,
	}, nil
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	return fmt.Sprintf("(%s<%s>)", s.Name, s.Classification)
}
