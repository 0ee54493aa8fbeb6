package layout

import (
	"testing"

	"github.com/matzehuels/statcard/pkg/svg"
)

func render(frags []Fragment) string {
	return svg.String(svg.Group(frags))
}

func TestStack(t *testing.T) {
	frags := []Fragment{svg.El("a"), svg.El("b"), svg.El("c")}

	got := render(Stack(frags, 25))
	want := `<g transform="translate(0, 0)"><a/></g>` +
		`<g transform="translate(0, 25)"><b/></g>` +
		`<g transform="translate(0, 50)"><c/></g>`
	if got != want {
		t.Errorf("Stack() = %s\nwant %s", got, want)
	}
}

func TestStackEmpty(t *testing.T) {
	if got := Stack(nil, 25); len(got) != 0 {
		t.Errorf("Stack(nil) returned %d fragments", len(got))
	}
}

func TestFlexRowWithSizes(t *testing.T) {
	frags := []Fragment{svg.El("a"), nil, svg.El("b"), svg.El("c")}

	got := render(Flex(frags, 10, Row, []float64{100, 50}))
	want := `<g transform="translate(0, 0)"><a/></g>` +
		`<g transform="translate(110, 0)"><b/></g>` +
		`<g transform="translate(170, 0)"><c/></g>`
	if got != want {
		t.Errorf("Flex() = %s\nwant %s", got, want)
	}
}

func TestFlexSkipsNilElements(t *testing.T) {
	var missing *svg.Element
	got := Flex([]Fragment{missing, svg.El("a")}, 25, Row, nil)
	if len(got) != 1 {
		t.Fatalf("Flex() returned %d fragments, want 1", len(got))
	}
	if s := svg.String(got[0]); s != `<g transform="translate(0, 0)"><a/></g>` {
		t.Errorf("first fragment = %s", s)
	}
}
