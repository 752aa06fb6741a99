package symtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildTree constructs my_mod > my_sub > inner plus a second root.
func buildTree(t *testing.T) (*ScopeRegistry, map[string]*Scope) {
	t.Helper()
	scopes := map[string]*Scope{
		"my_mod": NewScope("my_mod"),
		"my_sub": NewScope("my_sub"),
		"inner":  NewScope("inner"),
		"other":  NewScope("other"),
	}
	if err := scopes["my_mod"].AddChild(scopes["my_sub"]); err != nil {
		t.Fatal(err)
	}
	if err := scopes["my_sub"].AddChild(scopes["inner"]); err != nil {
		t.Fatal(err)
	}
	registry := NewScopeRegistry()
	for _, name := range []string{"my_mod", "other"} {
		if err := registry.Register(scopes[name]); err != nil {
			t.Fatal(err)
		}
	}
	return registry, scopes
}

func TestScopeIndexGet(t *testing.T) {
	for name, tc := range map[string]struct {
		qualified string
		want      string // key into the scopes map, empty = miss
	}{
		"degenerate":     {qualified: "", want: ""},
		"miss":           {qualified: "nope", want: ""},
		"root":           {qualified: "my_mod", want: "my_mod"},
		"nested":         {qualified: "my_mod.my_sub", want: "my_sub"},
		"deeply nested":  {qualified: "my_mod.my_sub.inner", want: "inner"},
		"second root":    {qualified: "other", want: "other"},
		"case variant":   {qualified: "My_Mod.MY_SUB", want: "my_sub"},
		"symbol path":    {qualified: "my_mod.my_sub.x", want: "my_sub"},
		"unrelated tail": {qualified: "other.my_sub", want: "other"},
	} {
		t.Run(name, func(t *testing.T) {
			registry, scopes := buildTree(t)
			index := NewScopeIndex()
			index.IndexRegistry(registry)

			got, ok := index.Get(tc.qualified)
			if tc.want == "" {
				if ok {
					t.Fatalf("want miss, got %v", got)
				}
				return
			}
			if !ok {
				t.Fatalf("want %q, got miss", tc.want)
			}
			if got != scopes[tc.want] {
				t.Errorf("Get(%q) = %q, want %q", tc.qualified, got.Name(), tc.want)
			}
		})
	}
}

func TestScopeIndexAnonymousScopes(t *testing.T) {
	// an anonymous block scope contributes no path segment, but its named
	// descendants remain reachable
	root := NewScope("my_mod")
	block := NewScope("")
	if err := root.AddChild(block); err != nil {
		t.Fatal(err)
	}
	leaf := NewScope("leaf")
	if err := block.AddChild(leaf); err != nil {
		t.Fatal(err)
	}

	index := NewScopeIndex()
	index.IndexScope(root)

	got, ok := index.Get("my_mod.leaf")
	if !ok {
		t.Fatal("want leaf to be indexed under my_mod.leaf")
	}
	if got != leaf {
		t.Errorf("Get = %q, want leaf", got.Name())
	}
}

func TestScopePathSegmenter(t *testing.T) {
	var segments []string
	for start := 0; start >= 0; {
		var segment string
		segment, start = scopePathSegmenter("a.b.c", start)
		segments = append(segments, segment)
	}
	if diff := cmp.Diff([]string{"a", ".b", ".c"}, segments); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
