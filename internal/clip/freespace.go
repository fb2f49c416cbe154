package clip

// FreeSpace describes the placeable region of a sheet as a rectangular
// outer boundary with non-overlapping forbidden-zone holes cut out of
// it. Sheets stay rectangular even after margin erosion (non-rectangular
// sheets are out of scope here), so a full general boolean
// union of the sheet and every obstacle is unnecessary: each obstacle
// only ever needs to be clipped to the sheet rectangle independently.
type FreeSpace struct {
	Outer Path64
	Holes Paths64
}

// BuildFreeSpace assembles the free-space description for a rectangular
// region [minX,minY]-[maxX,maxY] given a set of forbidden-zone rings
// (already inflated by the placement spacing). Obstacles are clipped to
// the rectangle and dropped if they collapse to nothing or fall
// entirely outside it.
func BuildFreeSpace(minX, minY, maxX, maxY int64, obstacles Paths64) FreeSpace {
	outer := Path64{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
	}
	fs := FreeSpace{Outer: outer}
	for _, o := range obstacles {
		clipped := RectClip(o, minX, minY, maxX, maxY)
		if len(clipped) < 3 {
			continue
		}
		if Area64(clipped) == 0 {
			continue
		}
		fs.Holes = append(fs.Holes, clipped)
	}
	return fs
}

// PointFree reports whether pt lies inside the outer rectangle and
// outside every hole — i.e. it is free space a part could occupy.
func (fs FreeSpace) PointFree(pt Point64) bool {
	if !PointInPath64(pt, fs.Outer) {
		return false
	}
	for _, h := range fs.Holes {
		if PointInPath64(pt, h) {
			return false
		}
	}
	return true
}
