package icon

// Geometry is the circle layout for one edge length.
type Geometry struct {
	Size   int
	CX, CY int
	Outer  float64
	Inner  float64
}

// Layout centers both circles on the integer midpoint; odd sizes are biased
// one pixel towards the origin.
func Layout(size int) Geometry {
	outer := float64(size) * OuterRatio
	return Geometry{
		Size:  size,
		CX:    size / 2,
		CY:    size / 2,
		Outer: outer,
		Inner: outer * InnerRatio,
	}
}
