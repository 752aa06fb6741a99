package symtab

import (
	"fmt"
	"strings"
)

// ScopeOption configures a Scope under construction.
type ScopeOption func(*Scope) *Scope

// WithParent sets the navigational parent link of the new scope.  It does
// not attach the scope to the parent's children; use Scope.AddChild for
// that.
func WithParent(parent *Scope) ScopeOption {
	return func(s *Scope) *Scope {
		s.parent = parent
		return s
	}
}

// WithChecking enables consistency checking for the lifetime of the scope.
// A checked scope rejects declarations that collide with an existing local
// symbol or with an imported name; an unchecked scope silently overwrites
// (last write wins).
func WithChecking() ScopeOption {
	return func(s *Scope) *Scope {
		s.checking = true
		return s
	}
}

// NewScope constructs a scope for one lexical region.  The name is
// normalized for storage; an empty name denotes an anonymous scope (e.g. a
// block construct).  Checking is disabled by default and fixed for the
// scope's lifetime.
func NewScope(name string, options ...ScopeOption) *Scope {
	s := &Scope{
		name:    Normalize(name),
		symbols: make(map[string]*Symbol),
		imports: make(map[string]*ModuleImport),
	}
	for _, opt := range options {
		s = opt(s)
	}
	return s
}

// Scope is one lexical scope discovered during tree traversal: the locally
// declared symbols, the use-associated modules, and the scope hierarchy.
//
// A scope exclusively owns its children; the parent pointer is purely
// navigational and carries no ownership, so parent/child never form an
// ownership cycle.  Name visibility is strictly lexical: a name is visible
// if declared locally, else if visible in the parent, recursively.  Sibling
// and child scopes are never consulted.
//
// A Scope is not safe for concurrent use; the traversal discipline is
// single-writer (one traversal at a time per scope tree).
type Scope struct {
	name     string
	parent   *Scope
	children []*Scope
	checking bool

	// symbols and imports are keyed by normalized name; the order slices
	// record first-insertion order for deterministic rendering.
	symbols     map[string]*Symbol
	symbolOrder []string
	imports     map[string]*ModuleImport
	importOrder []string
}

// Name returns the normalized scope name.  Empty for anonymous scopes.
func (s *Scope) Name() string { return s.name }

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// SetParent replaces the navigational parent link.  A nil parent makes the
// scope a root.
func (s *Scope) SetParent(parent *Scope) { s.parent = parent }

// CheckingEnabled reports whether this scope enforces consistency checks on
// declaration.
func (s *Scope) CheckingEnabled() bool { return s.checking }

// Root ascends parent links to the scope that has no parent.  For a root
// scope this is the scope itself.
func (s *Scope) Root() *Scope {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Children returns the child scopes in attachment order.  The returned
// slice is the scope's own; callers must not mutate it.
func (s *Scope) Children() []*Scope { return s.children }

// Child returns the named child scope, if present.
func (s *Scope) Child(name string) (*Scope, bool) {
	normalized := Normalize(name)
	for _, child := range s.children {
		if child.name == normalized {
			return child, true
		}
	}
	return nil, false
}

// AddChild appends the scope to the children and reparents it here,
// transferring ownership to this scope.
func (s *Scope) AddChild(child *Scope) error {
	if child == nil {
		return &InvalidArgumentError{Field: "child scope", Reason: "must be non-nil"}
	}
	s.children = append(s.children, child)
	child.parent = s
	return nil
}

// DelChild removes and releases the named child scope (and transitively its
// descendants).  Only the first matching child is removed.
func (s *Scope) DelChild(name string) error {
	normalized := Normalize(name)
	for i, child := range s.children {
		if child.name == normalized {
			s.children = append(s.children[:i], s.children[i+1:]...)
			child.parent = nil
			return nil
		}
	}
	return NewScopeNotFoundError(s.name, normalized)
}

// Lookup resolves a name to its symbol, searching this scope and then each
// enclosing scope in turn.  Case-insensitive: any case variant of a
// declared name resolves to the identical symbol.
func (s *Scope) Lookup(name string) (*Symbol, error) {
	normalized := Normalize(name)
	if sym, ok := s.symbols[normalized]; ok {
		return sym, nil
	}
	if s.parent != nil {
		sym, err := s.parent.Lookup(normalized)
		if err != nil {
			// report the originating scope, not the ancestor that ran out
			// of parents
			return nil, NewSymbolNotFoundError(s.name, normalized)
		}
		return sym, nil
	}
	return nil, NewSymbolNotFoundError(s.name, normalized)
}

// Declare records a local symbol with the given classification.  When
// checking is enabled the declaration fails if the name collides with an
// existing local symbol, an imported module name, or a name inside a
// restricted import list.  When checking is disabled the last declaration
// wins, keeping the original insertion position.
func (s *Scope) Declare(name, classification string) (*Symbol, error) {
	sym, err := NewSymbol(name, classification)
	if err != nil {
		return nil, err
	}
	if s.checking {
		if err := s.checkDuplicate(sym.Name); err != nil {
			return nil, err
		}
	}
	if _, exists := s.symbols[sym.Name]; !exists {
		s.symbolOrder = append(s.symbolOrder, sym.Name)
	}
	s.symbols[sym.Name] = sym
	return sym, nil
}

// checkDuplicate scans the local symbol table and the import records for an
// existing occupant of the name.
func (s *Scope) checkDuplicate(name string) error {
	if _, ok := s.symbols[name]; ok {
		return &DuplicateSymbolError{Scope: s.name, Name: name, Kind: DuplicateLocalSymbol}
	}
	if _, ok := s.imports[name]; ok {
		return &DuplicateSymbolError{Scope: s.name, Name: name, Kind: DuplicateModuleUse}
	}
	for _, moduleName := range s.importOrder {
		for _, imported := range s.imports[moduleName].Only {
			if imported == name {
				return &DuplicateSymbolError{
					Scope:  s.name,
					Name:   name,
					Kind:   DuplicateImportedName,
					Module: moduleName,
				}
			}
		}
	}
	return nil
}

// ImportModule records a use statement for the named module.  A nil
// onlyList is a wildcard import.  Subsequent use statements for the same
// module merge: a wildcard absorbs later restrictions, restricted lists
// accumulate in statement order, and a wildcard after a restricted list
// promotes the record to wildcard.
func (s *Scope) ImportModule(moduleName string, onlyList []string) error {
	normalized := Normalize(moduleName)
	if normalized == "" {
		return &InvalidArgumentError{
			Field:  "module name",
			Reason: fmt.Sprintf("must be non-empty, got %q", moduleName),
		}
	}
	only, err := normalizeOnlyList(onlyList)
	if err != nil {
		return err
	}
	if existing, ok := s.imports[normalized]; ok {
		existing.merge(only)
		return nil
	}
	s.imports[normalized] = &ModuleImport{
		Name:     normalized,
		Wildcard: only == nil,
		Only:     only,
	}
	s.importOrder = append(s.importOrder, normalized)
	return nil
}

// Import returns the import record for the named module, if present.
func (s *Scope) Import(moduleName string) (*ModuleImport, bool) {
	imp, ok := s.imports[Normalize(moduleName)]
	return imp, ok
}

// Imports returns the import records in first-use order.
func (s *Scope) Imports() []*ModuleImport {
	imports := make([]*ModuleImport, len(s.importOrder))
	for i, name := range s.importOrder {
		imports[i] = s.imports[name]
	}
	return imports
}

// Symbols returns the local symbols in declaration order.
func (s *Scope) Symbols() []*Symbol {
	symbols := make([]*Symbol, len(s.symbolOrder))
	for i, name := range s.symbolOrder {
		symbols[i] = s.symbols[name]
	}
	return symbols
}

// String implements the fmt.Stringer interface.  The listing is a
// deterministic diagnostic rendering (header, local symbol names in
// declaration order, imported module names in first-use order), not a
// persistence format.
func (s *Scope) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Symbol Table '%s'\n", s.name)
	buf.WriteString("Symbols:\n")
	for _, name := range s.symbolOrder {
		buf.WriteString(name)
		buf.WriteRune('\n')
	}
	buf.WriteString("Used modules:\n")
	for _, name := range s.importOrder {
		buf.WriteString(name)
		buf.WriteRune('\n')
	}
	return buf.String()
}
