package graphics

// Shadow defines a shadow to draw behind text, composed from an offset, a
// blur radius, and an optional color. A zero Color means no explicit color
// was chosen; the rendering layer falls back to its own default shadow
// color.
type Shadow struct {
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5, 0 = hard shadow
	Color      Color
}

// Sigma returns the blur sigma for the rendering layer's mask filter.
// Returns 0 if BlurRadius is zero or negative.
func (s Shadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// HasColor reports whether an explicit shadow color is present.
func (s Shadow) HasColor() bool {
	return s.Color != 0
}
