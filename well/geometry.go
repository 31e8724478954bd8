package well

// Well dimensions are fixed. Positions are measured in cells; CellSize converts
// them to pixels for hosts that draw rectangles.
const (
	CellSize   = 30
	WellWidth  = 10
	WellHeight = 20
)

// InWell reports whether p lies inside the visible well.
func InWell(p Position) bool {
	return p.X >= 0 && p.X < WellWidth && p.Y >= 0 && p.Y < WellHeight
}
