package clip

// RectClip clips an arbitrary simple polygon path to an axis-aligned
// rectangle using Sutherland-Hodgman. Because the clip window is always
// convex, this is exact regardless of the subject's convexity — which is
// exactly the shape of sheet-with-margin clipping, since sheets stay
// rectangular even after margin erosion.
func RectClip(path Path64, minX, minY, maxX, maxY int64) Path64 {
	if len(path) == 0 {
		return nil
	}
	out := path
	out = clipEdge(out, func(p Point64) bool { return p.X >= minX },
		func(a, b Point64) Point64 { return intersectVertical(a, b, minX) })
	out = clipEdge(out, func(p Point64) bool { return p.X <= maxX },
		func(a, b Point64) Point64 { return intersectVertical(a, b, maxX) })
	out = clipEdge(out, func(p Point64) bool { return p.Y >= minY },
		func(a, b Point64) Point64 { return intersectHorizontal(a, b, minY) })
	out = clipEdge(out, func(p Point64) bool { return p.Y <= maxY },
		func(a, b Point64) Point64 { return intersectHorizontal(a, b, maxY) })
	return out
}

func clipEdge(poly Path64, inside func(Point64) bool, intersect func(a, b Point64) Point64) Path64 {
	if len(poly) == 0 {
		return nil
	}
	var out Path64
	n := len(poly)
	for i := 0; i < n; i++ {
		curr := poly[i]
		prev := poly[(i-1+n)%n]
		currIn := inside(curr)
		prevIn := inside(prev)
		if currIn {
			if !prevIn {
				out = append(out, intersect(prev, curr))
			}
			out = append(out, curr)
		} else if prevIn {
			out = append(out, intersect(prev, curr))
		}
	}
	return out
}

func intersectVertical(a, b Point64, x int64) Point64 {
	if a.X == b.X {
		return Point64{x, a.Y}
	}
	t := float64(x-a.X) / float64(b.X-a.X)
	y := float64(a.Y) + t*float64(b.Y-a.Y)
	return Point64{x, int64(y)}
}

func intersectHorizontal(a, b Point64, y int64) Point64 {
	if a.Y == b.Y {
		return Point64{a.X, y}
	}
	t := float64(y-a.Y) / float64(b.Y-a.Y)
	x := float64(a.X) + t*float64(b.X-a.X)
	return Point64{int64(x), y}
}
