package tree

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/zonegen/pkg/layout"
	"github.com/matzehuels/zonegen/pkg/zone"
)

func nested() layout.Instruction {
	return layout.H(layout.L(1), layout.N(2, layout.V(layout.L(1), layout.L(1))), layout.L(1))
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(nested(), Options{})

	if !strings.Contains(dot, "digraph layout") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if got := strings.Count(dot, "shape=ellipse"); got != 4 {
		t.Errorf("leaf nodes = %d, want 4", got)
	}
	if got := strings.Count(dot, "shape=box"); got != 2 {
		t.Errorf("split nodes = %d, want 2", got)
	}
	if !strings.Contains(dot, `n0 -> n2 [label="2"]`) {
		t.Error("ToDOT() output missing ratio edge to nested split")
	}
	if !strings.Contains(dot, `label="vertical"`) {
		t.Error("ToDOT() output missing vertical split label")
	}
	if strings.Contains(dot, "100x100") {
		t.Error("ToDOT() without root should not label zones")
	}
}

func TestToDOT_Leaf(t *testing.T) {
	dot := ToDOT(layout.Leaf{}, Options{})

	if !strings.Contains(dot, `n0 [shape=ellipse`) {
		t.Error("ToDOT() bare leaf missing node")
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() bare leaf should have no edges")
	}
}

func TestToDOT_Zones(t *testing.T) {
	root := zone.Full()
	dot := ToDOT(nested(), Options{Root: &root})

	for _, want := range []string{
		`"horizontal\n100x100+0+0"`,
		`"#1\n25x100+0+0"`,
		`"vertical\n50x100+25+0"`,
		`"#3\n50x50+25+50"`,
		`"#4\n25x100+75+0"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing label %s", want)
		}
	}
}

func TestToDOT_ZonesInvalidTree(t *testing.T) {
	root := zone.Full()
	dot := ToDOT(layout.H(layout.L(0), layout.L(0)), Options{Root: &root})

	if strings.Contains(dot, "+0+0") {
		t.Error("ToDOT() should omit zones when the tree cannot be partitioned")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 62.00 116.00" width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.HasSuffix(out, "<g/></svg>") {
		t.Error("normalizeViewBox() should keep the body")
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(nested(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}
