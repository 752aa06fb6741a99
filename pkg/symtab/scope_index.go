package symtab

import (
	"strings"

	"github.com/dghubble/trie"
)

// NewScopeIndex constructs an empty index.
func NewScopeIndex() *ScopeIndex {
	return &ScopeIndex{
		paths: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: scopePathSegmenter,
		}),
	}
}

// ScopeIndex resolves dot-qualified unit paths (e.g. "my_mod.my_sub") to
// scopes using a path trie.  It is a derived, read-mostly view built after
// traversal; it does not own any scope and is not kept in sync with later
// tree mutations.
type ScopeIndex struct {
	paths *trie.PathTrie
}

// IndexRegistry indexes every root scope in the registry, recursively.
func (x *ScopeIndex) IndexRegistry(registry *ScopeRegistry) {
	for _, name := range registry.Names() {
		scope, err := registry.Lookup(name)
		if err != nil {
			continue
		}
		x.IndexScope(scope)
	}
}

// IndexScope indexes the scope and all of its descendants under their
// qualified paths.  Anonymous scopes contribute no path segment of their
// own but their named descendants are still reachable.
func (x *ScopeIndex) IndexScope(scope *Scope) {
	x.index("", scope)
}

func (x *ScopeIndex) index(prefix string, scope *Scope) {
	path := prefix
	if scope.Name() != "" {
		if path == "" {
			path = scope.Name()
		} else {
			path = path + "." + scope.Name()
		}
		x.paths.Put(path, scope)
	}
	for _, child := range scope.Children() {
		x.index(path, child)
	}
}

// Get resolves a qualified path to the nearest enclosing indexed scope: an
// exact path returns that scope, and a longer path (e.g. a qualified symbol
// reference "my_mod.my_sub.x") returns the innermost scope on the path.
func (x *ScopeIndex) Get(qualified string) (*Scope, bool) {
	var last interface{}
	x.paths.WalkPath(Normalize(qualified), func(key string, value interface{}) error {
		last = value
		return nil
	})
	if last == nil {
		return nil, false
	}
	return last.(*Scope), true
}

// scopePathSegmenter segments qualified paths by dot separators.  For
// example, "a.b.c" -> ("a", 1), (".b", 3), (".c", -1) in successive calls.
// It does not allocate any heap memory.
func scopePathSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
