package symtab

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSymbol(t *testing.T) {
	for name, tc := range map[string]struct {
		name           string
		classification string
		want           *Symbol
		wantErr        string
	}{
		"normalizes name case": {
			name:           "VaR",
			classification: "integer",
			want:           &Symbol{Name: "var", Classification: "integer"},
		},
		"classification kept verbatim": {
			name:           "x",
			classification: "REAL",
			want:           &Symbol{Name: "x", Classification: "REAL"},
		},
		"empty name": {
			name:           "",
			classification: "integer",
			wantErr:        `invalid symbol name: must be non-empty, got ""`,
		},
		"blank name": {
			name:           "   ",
			classification: "integer",
			wantErr:        `invalid symbol name: must be non-empty, got "   "`,
		},
		"empty classification": {
			name:           "var",
			classification: "",
			wantErr:        `invalid symbol classification: must be non-empty for symbol "var"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := NewSymbol(tc.name, tc.classification)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("want error %q, got none", tc.wantErr)
				}
				var invalid *InvalidArgumentError
				if !errors.As(err, &invalid) {
					t.Fatalf("want *InvalidArgumentError, got %T", err)
				}
				if diff := cmp.Diff(tc.wantErr, err.Error()); diff != "" {
					t.Errorf("error (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSymbolString(t *testing.T) {
	sym, err := NewSymbol("A", "real")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("(a<real>)", sym.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
