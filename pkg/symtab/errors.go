package symtab

import "fmt"

// InvalidArgumentError reports a malformed value supplied by the traversal
// collaborator (empty name, empty classification, nil child, bad only-list
// entries).  It is raised regardless of whether consistency checking is
// enabled for the scope.
type InvalidArgumentError struct {
	// Field is the name of the offending argument.
	Field string
	// Reason describes what was wrong with the value.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewSymbolNotFoundError constructs the error returned by Scope.Lookup when
// a name is not visible in the scope or any of its ancestors.
func NewSymbolNotFoundError(scope, name string) *SymbolNotFoundError {
	return &SymbolNotFoundError{Scope: scope, Name: name}
}

// SymbolNotFoundError is returned by Scope.Lookup when the queried name is
// not declared in the originating scope or any enclosing scope.
type SymbolNotFoundError struct {
	// Scope is the name of the scope the lookup originated from.
	Scope string
	// Name is the (normalized) name that was queried.
	Name string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("failed to find symbol named %q in scope %q or any of its ancestors", e.Name, e.Scope)
}

// DuplicateKind says what an offending declaration collided with.
type DuplicateKind int

const (
	// DuplicateLocalSymbol: the name is already declared in the scope.
	DuplicateLocalSymbol DuplicateKind = iota
	// DuplicateModuleUse: the name is already used as an imported module name.
	DuplicateModuleUse
	// DuplicateImportedName: the name already appears in the only-list of an
	// imported module.
	DuplicateImportedName
)

// DuplicateSymbolError is returned by Scope.Declare, when consistency
// checking is enabled, for a declaration that collides with an existing
// local symbol, an imported module name, or a name inside a restricted
// import list.
type DuplicateSymbolError struct {
	// Scope is the name of the scope the declaration targeted.
	Scope string
	// Name is the colliding (normalized) name.
	Name string
	// Kind says which table the name collided in.
	Kind DuplicateKind
	// Module is the imported module involved (DuplicateModuleUse and
	// DuplicateImportedName only).
	Module string
}

func (e *DuplicateSymbolError) Error() string {
	switch e.Kind {
	case DuplicateModuleUse:
		return fmt.Sprintf("scope %q already contains a use of a module with name %q", e.Scope, e.Name)
	case DuplicateImportedName:
		return fmt.Sprintf("scope %q already contains a use of a symbol named %q from module %q", e.Scope, e.Name, e.Module)
	default:
		return fmt.Sprintf("scope %q already contains a symbol with name %q", e.Scope, e.Name)
	}
}

// NewScopeNotFoundError constructs the error for a failed child-scope or
// registry lookup.  An empty scope argument means the lookup was against a
// ScopeRegistry rather than a parent scope.
func NewScopeNotFoundError(scope, name string) *ScopeNotFoundError {
	return &ScopeNotFoundError{Scope: scope, Name: name}
}

// ScopeNotFoundError is returned by Scope.DelChild and ScopeRegistry.Lookup
// when no scope is recorded under the queried name.
type ScopeNotFoundError struct {
	// Scope is the name of the parent scope searched, or empty for a
	// registry lookup.
	Scope string
	// Name is the (normalized) name that was queried.
	Name string
}

func (e *ScopeNotFoundError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("no scope named %q is registered", e.Name)
	}
	return fmt.Sprintf("scope %q does not contain a child scope named %q", e.Scope, e.Name)
}
