package dsl

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/zone"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want layout.Instruction
	}{
		{
			name: "nested",
			in:   "h(1, 2: v(3, 4), 5)",
			want: layout.H(
				layout.L(1),
				layout.N(2, layout.V(layout.L(3), layout.L(4))),
				layout.L(5),
			),
		},
		{
			name: "no whitespace",
			in:   "v(3,1)",
			want: layout.V(layout.L(3), layout.L(1)),
		},
		{
			name: "generous whitespace",
			in:   "\n  h (\t1 ,\n 2 : v( 1 , 1 ) , 1 )\n",
			want: layout.H(layout.L(1), layout.N(2, layout.V(layout.L(1), layout.L(1))), layout.L(1)),
		},
		{
			name: "single child",
			in:   "h(1)",
			want: layout.H(layout.L(1)),
		},
		{
			name: "decimals",
			in:   "v(0.5, 1.25, 007)",
			want: layout.V(layout.L(0.5), layout.L(1.25), layout.L(7)),
		},
		{
			name: "zero ratios parse",
			in:   "h(0, 0)",
			want: layout.H(layout.L(0), layout.L(0)),
		},
		{
			name: "deep right spine",
			in:   "h(1: v(1: h(1: v(1))))",
			want: layout.H(layout.N(1, layout.V(layout.N(1, layout.H(layout.N(1, layout.V(layout.L(1)))))))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sentinel error
		line     int
		col      int
		contains string
	}{
		{"empty", "", ErrSyntax, 1, 1, `expected "h" or "v", found end of input`},
		{"bare number", "1", ErrSyntax, 1, 1, `found "1"`},
		{"unknown direction", "x(1)", ErrSyntax, 1, 1, `found "x"`},
		{"missing paren", "h 1", ErrSyntax, 1, 3, `expected "("`},
		{"empty list", "h()", ErrSyntax, 1, 3, "expected number"},
		{"unclosed", "h(1, 2", ErrSyntax, 1, 7, `expected "," or ")", found end of input`},
		{"trailing comma", "h(1,)", ErrSyntax, 1, 5, "expected number"},
		{"dangling decimal", "h(1.)", ErrSyntax, 1, 4, `found "."`},
		{"leading decimal", "h(.5)", ErrSyntax, 1, 3, `found "."`},
		{"colon without split", "h(1:)", ErrSyntax, 1, 5, `expected "h" or "v"`},
		{"negative", "h(-1)", ErrSyntax, 1, 3, `found "-"`},
		{"exponent", "h(1e3)", ErrSyntax, 1, 4, `found "e"`},
		{"second line", "h(1,\n  2 x)", ErrSyntax, 2, 5, `found "x"`},
		{"trailing word", "h(1,2)extra", ErrMoreThanOne, 1, 7, "more than one layout description"},
		{"two layouts", "h(1) v(1)", ErrMoreThanOne, 1, 6, `found "v"`},
		{"stray paren", "h(1))", ErrMoreThanOne, 1, 5, `found ")"`},
		{"huge ratio", "h(" + strings.Repeat("9", 400) + ")", ErrRatioRange, 1, 3, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.in, got)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.sentinel)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.in, err)
			}
			if pe.Line != tt.line || pe.Column != tt.col {
				t.Errorf("Parse(%q) position = %d:%d, want %d:%d", tt.in, pe.Line, pe.Column, tt.line, tt.col)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Parse(%q) error = %q, want it to contain %q", tt.in, err, tt.contains)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("h(1: ", 10) + "h(1)" + strings.Repeat(")", 10)

	if _, err := Parse(deep); err != nil {
		t.Fatalf("Parse() with default depth error = %v", err)
	}

	_, err := Parse(deep, WithMaxDepth(5))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("Parse() error = %v, want ErrTooDeep", err)
	}
	if !strings.Contains(err.Error(), "deeper than 5") {
		t.Errorf("Parse() error = %q", err)
	}

	tooDeep := strings.Repeat("v(1: ", DefaultMaxDepth) + "v(1)" + strings.Repeat(")", DefaultMaxDepth)
	if _, err := Parse(tooDeep); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Parse() past DefaultMaxDepth error = %v, want ErrTooDeep", err)
	}
	if _, err := Parse(tooDeep, WithMaxDepth(0)); err != nil {
		t.Errorf("Parse() with limit disabled error = %v", err)
	}
}

func TestSnippet(t *testing.T) {
	_, err := Parse("h(1,\n\t2 x)")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v", err)
	}
	want := "\t2 x)\n\t  ^"
	if got := pe.Snippet(); got != want {
		t.Errorf("Snippet() = %q, want %q", got, want)
	}
}

func TestParsePartitionNestedExample(t *testing.T) {
	instr, err := Parse("h(1, 2: v(3, 4), 5)")
	if err != nil {
		t.Fatal(err)
	}
	set, err := layout.Partition(instr, zone.Full())
	if err != nil {
		t.Fatal(err)
	}
	want := zone.NewSet(
		zone.Zone{X: 0, Y: 0, Width: 13, Height: 100},
		zone.Zone{X: 13, Y: 0, Width: 25, Height: 43},
		zone.Zone{X: 13, Y: 43, Width: 25, Height: 57},
		zone.Zone{X: 38, Y: 0, Width: 62, Height: 100},
	)
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("Partition() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseZeroSumRejectedByPartition(t *testing.T) {
	instr, err := Parse("h(0, 0)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := layout.Partition(instr, zone.Full()); !errors.Is(err, layout.ErrZeroRatioSum) {
		t.Errorf("Partition() error = %v, want ErrZeroRatioSum", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() did not panic")
		}
	}()
	MustParse("h(")
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"h(1)", "v(3,1)", "h(1, 2: v(3, 4), 5)", "h(0, 0)", "h(1,2)extra",
		"v(0.5, 1.25)", "h(1: v(1: h(1)))", "", "h(", "h(1.)",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		instr, err := Parse(in)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error type %T", in, err)
			}
			return
		}

		again, err := Parse(layout.Format(instr))
		if err != nil {
			t.Fatalf("Parse(Format(%q)) error = %v", in, err)
		}
		if diff := cmp.Diff(instr, again); diff != "" {
			t.Fatalf("Format round trip of %q mismatch:\n%s", in, diff)
		}

		set, err := layout.Partition(instr, zone.Full())
		if err != nil {
			return
		}
		var nonEmpty []zone.Zone
		for _, z := range set.Sorted() {
			if !z.Empty() {
				nonEmpty = append(nonEmpty, z)
			}
		}
		if err := zone.CheckTiling(zone.Full(), nonEmpty); err != nil {
			t.Fatalf("Partition(%q) does not tile: %v", in, err)
		}
	})
}
