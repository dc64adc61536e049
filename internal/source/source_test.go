package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Row
	}{
		{"empty", "", nil},
		{"labels only", "alpha\nbeta\n", []Row{{ID: "alpha", Label: "alpha"}, {ID: "beta", Label: "beta"}}},
		{"id and label", "1\tfirst\n2\tsecond", []Row{{ID: "1", Label: "first"}, {ID: "2", Label: "second"}}},
		{"detail", "1\tfirst\tmore\tstuff", []Row{{ID: "1", Label: "first", Detail: "more\tstuff"}}},
		{"comments and blanks", "# header\n\n  \nx\r\n", []Row{{ID: "x", Label: "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLines(tt.text)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseLines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key(Row{ID: "id-1", Label: "x"}, 5); got != "id-1" {
		t.Errorf("Key = %q, want id-1", got)
	}
}
