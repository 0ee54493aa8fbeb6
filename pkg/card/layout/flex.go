// Package layout positions card content.
//
// It provides the generic stacking primitive used for stat rows and the
// title block ([Stack], [Flex]) and the card geometry policy
// ([CardWidth], [CardHeight]).
package layout

import (
	"fmt"

	"github.com/matzehuels/statcard/pkg/svg"
)

// Fragment is a positioned piece of markup. A slice of fragments is ordered:
// slice position is stacking order.
type Fragment = svg.Node

// Direction selects the stacking axis.
type Direction int

const (
	// Row stacks fragments left to right.
	Row Direction = iota
	// Column stacks fragments top to bottom.
	Column
)

// Stack lays fragments out top to bottom. The first fragment sits at its own
// origin and each following fragment is offset by gap from the previous one.
func Stack(fragments []Fragment, gap float64) []Fragment {
	return Flex(fragments, gap, Column, nil)
}

// Flex wraps each fragment in a translated group along dir. The offset of
// fragment i is the sum over earlier fragments of (sizes[j] + gap); a
// missing size counts as zero. Nil fragments are dropped before layout.
func Flex(fragments []Fragment, gap float64, dir Direction, sizes []float64) []Fragment {
	out := make([]Fragment, 0, len(fragments))
	offset := 0.0
	i := 0
	for _, f := range fragments {
		if f == nil {
			continue
		}
		if e, ok := f.(*svg.Element); ok && e == nil {
			continue
		}
		out = append(out, svg.El("g", svg.Attr("transform", translate(dir, offset)), f))
		size := 0.0
		if i < len(sizes) {
			size = sizes[i]
		}
		offset += size + gap
		i++
	}
	return out
}

func translate(dir Direction, offset float64) string {
	if dir == Column {
		return fmt.Sprintf("translate(0, %s)", svg.FormatNum(offset))
	}
	return fmt.Sprintf("translate(%s, 0)", svg.FormatNum(offset))
}
