package walker

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/fortran-scope/pkg/collections"
	"github.com/stackb/fortran-scope/pkg/symtab"
)

// debugScopes is a debug flag for use by a developer: when enabled, each
// completed root scope tree is dumped to the logger.
const debugScopes = false

// ScopeBuilder is the contract the parse-tree traversal uses to create and
// populate scopes as program units, declarations, and use statements are
// visited.  The traversal decides *when* scopes open and close; the builder
// maintains the tree and the registry.
type ScopeBuilder interface {
	// EnterScope opens a scope for a scope-introducing construct.  The new
	// scope is attached as a child of the current scope, or registered as a
	// root when no scope is open.
	EnterScope(name string) (*symtab.Scope, error)
	// LeaveScope closes the current scope, returning it.  False when no
	// scope is open.
	LeaveScope() (*symtab.Scope, bool)
	// Declare records a declaration statement in the current scope.
	Declare(name, classification string) (*symtab.Symbol, error)
	// ImportModule records a use statement in the current scope.  A nil
	// onlyList is a wildcard import.
	ImportModule(moduleName string, onlyList []string) error
}

type WalkerOption func(*Walker) *Walker

// WithLogger sets the logger used for traversal events.
func WithLogger(logger zerolog.Logger) WalkerOption {
	return func(w *Walker) *Walker {
		w.logger = logger
		return w
	}
}

// WithChecking makes every scope the walker creates enforce consistency
// checks on declaration.
func WithChecking() WalkerOption {
	return func(w *Walker) *Walker {
		w.checking = true
		return w
	}
}

// NewWalker constructs a walker that builds scope trees into the given
// registry.
func NewWalker(registry *symtab.ScopeRegistry, options ...WalkerOption) *Walker {
	w := &Walker{
		registry: registry,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		w = opt(w)
	}
	return w
}

// Walker implements ScopeBuilder over a stack of open scopes.  It is the
// only state the traversal collaborator needs to carry: the current scope
// is always the top of the stack, and finished root scopes land in the
// registry.
type Walker struct {
	logger   zerolog.Logger
	registry *symtab.ScopeRegistry
	open     collections.Stack[*symtab.Scope]
	checking bool
}

// Current returns the scope being populated, if any.
func (w *Walker) Current() (*symtab.Scope, bool) {
	return w.open.Peek()
}

// Depth returns the number of open scopes.
func (w *Walker) Depth() int {
	return w.open.Len()
}

// EnterScope implements part of the ScopeBuilder interface.
func (w *Walker) EnterScope(name string) (*symtab.Scope, error) {
	var options []symtab.ScopeOption
	if w.checking {
		options = append(options, symtab.WithChecking())
	}
	scope := symtab.NewScope(name, options...)

	if parent, ok := w.open.Peek(); ok {
		if err := parent.AddChild(scope); err != nil {
			return nil, err
		}
	} else if err := w.registry.Register(scope); err != nil {
		return nil, err
	}

	w.open.Push(scope)
	w.logger.Debug().
		Str("scope", scope.Name()).
		Int("depth", w.open.Len()).
		Msg("entered scope")
	return scope, nil
}

// LeaveScope implements part of the ScopeBuilder interface.
func (w *Walker) LeaveScope() (*symtab.Scope, bool) {
	scope, ok := w.open.Pop()
	if !ok {
		return nil, false
	}
	w.logger.Debug().
		Str("scope", scope.Name()).
		Int("depth", w.open.Len()).
		Msg("left scope")
	if debugScopes && w.open.IsEmpty() {
		w.logger.Debug().Msg(spew.Sdump(scope))
	}
	return scope, true
}

// Declare implements part of the ScopeBuilder interface.
func (w *Walker) Declare(name, classification string) (*symtab.Symbol, error) {
	scope, ok := w.open.Peek()
	if !ok {
		return nil, fmt.Errorf("declare %q: no enclosing scope is open", name)
	}
	sym, err := scope.Declare(name, classification)
	if err != nil {
		return nil, err
	}
	w.logger.Debug().
		Str("scope", scope.Name()).
		Stringer("symbol", sym).
		Msg("declared symbol")
	return sym, nil
}

// ImportModule implements part of the ScopeBuilder interface.
func (w *Walker) ImportModule(moduleName string, onlyList []string) error {
	scope, ok := w.open.Peek()
	if !ok {
		return fmt.Errorf("use %q: no enclosing scope is open", moduleName)
	}
	if err := scope.ImportModule(moduleName, onlyList); err != nil {
		return err
	}
	w.logger.Debug().
		Str("scope", scope.Name()).
		Str("module", symtab.Normalize(moduleName)).
		Bool("wildcard", onlyList == nil).
		Msg("imported module")
	return nil
}
