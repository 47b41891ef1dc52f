package graphics

// Offset represents a 2D point or vector in typographic points.
type Offset struct {
	X float64
	Y float64
}
