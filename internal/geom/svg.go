package geom

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// SVGPath renders a ring's exterior as an SVG path string:
// "M x1,y1 L x2,y2 ... Z", coordinates formatted to two decimals.
// Holes are not included; this is an exterior-only SVG export.
func SVGPath(r orb.Ring) string {
	if len(r) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	for i, p := range r {
		if i > 0 {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(p[0], 'f', 2, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p[1], 'f', 2, 64))
	}
	b.WriteString(" Z")
	return b.String()
}
