package symtab

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NewScopeRegistry constructs an empty registry.
func NewScopeRegistry() *ScopeRegistry {
	return &ScopeRegistry{
		scopes: make(map[string]*Scope),
	}
}

// ScopeRegistry is the directory of root (unparented) scopes for one
// analysis session.  Entries are non-owning references: clearing the
// registry does not invalidate scopes still referenced elsewhere.
//
// Not safe for concurrent use; one traversal at a time per registry.
type ScopeRegistry struct {
	scopes map[string]*Scope
	order  []string
}

// Register stores a root scope under its normalized name, overwriting any
// prior entry for that name (last registration wins; clash detection is not
// this layer's concern).  The scope must be unparented and named.
func (r *ScopeRegistry) Register(scope *Scope) error {
	if scope == nil {
		return &InvalidArgumentError{Field: "scope", Reason: "must be non-nil"}
	}
	if scope.Parent() != nil {
		return &InvalidArgumentError{
			Field:  "scope",
			Reason: fmt.Sprintf("%q has a parent scope: only root scopes are registrable", scope.Name()),
		}
	}
	if scope.Name() == "" {
		return &InvalidArgumentError{Field: "scope", Reason: "anonymous scopes are not registrable"}
	}
	if _, exists := r.scopes[scope.Name()]; !exists {
		r.order = append(r.order, scope.Name())
	}
	r.scopes[scope.Name()] = scope
	return nil
}

// Lookup returns the root scope registered under the given unit name.
func (r *ScopeRegistry) Lookup(name string) (*Scope, error) {
	normalized := Normalize(name)
	scope, ok := r.scopes[normalized]
	if !ok {
		return nil, NewScopeNotFoundError("", normalized)
	}
	return scope, nil
}

// Match returns the root scopes whose names match the given doublestar
// pattern (e.g. "mod_*"), in registration order.  The pattern is matched
// against normalized names.
func (r *ScopeRegistry) Match(pattern string) ([]*Scope, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &InvalidArgumentError{
			Field:  "pattern",
			Reason: fmt.Sprintf("malformed glob %q", pattern),
		}
	}
	var matched []*Scope
	for _, name := range r.order {
		if ok, _ := doublestar.Match(Normalize(pattern), name); ok {
			matched = append(matched, r.scopes[name])
		}
	}
	return matched, nil
}

// Names returns the registered unit names in registration order.
func (r *ScopeRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered root scopes.
func (r *ScopeRegistry) Len() int { return len(r.scopes) }

// Clear empties the registry so independent analysis sessions can reuse
// it.  Scopes referenced elsewhere are unaffected.
func (r *ScopeRegistry) Clear() {
	r.scopes = make(map[string]*Scope)
	r.order = nil
}

// String implements the fmt.Stringer interface
func (r *ScopeRegistry) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "ScopeRegistry (%d scopes)\n", len(r.order))
	for _, name := range r.order {
		buf.WriteString(name)
		buf.WriteRune('\n')
	}
	return buf.String()
}
