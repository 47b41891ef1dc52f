package attributed

import "github.com/go-drift/attributed/pkg/graphics"

// ParagraphStyle is the single combined paragraph descriptor emitted when
// at least one paragraph-level property was set. nil fields were never set
// on the builder and keep the rendering layer's own defaults (e.g. natural
// alignment).
type ParagraphStyle struct {
	Alignment         *graphics.TextAlign
	LineBreakMode     *graphics.LineBreakMode
	MinimumLineHeight *float64
	MaximumLineHeight *float64
	LineSpacing       *float64
}

// Equal reports field-for-field equality, treating nil as distinct from
// any set value.
func (p ParagraphStyle) Equal(other ParagraphStyle) bool {
	return eqPtr(p.Alignment, other.Alignment) &&
		eqPtr(p.LineBreakMode, other.LineBreakMode) &&
		eqPtr(p.MinimumLineHeight, other.MinimumLineHeight) &&
		eqPtr(p.MaximumLineHeight, other.MaximumLineHeight) &&
		eqPtr(p.LineSpacing, other.LineSpacing)
}

// composeParagraph derives the paragraph descriptor from the
// paragraph-scoped subset of the style state. Pure function of the state;
// the descriptor owns copies of every field so the document stays
// independent of the builder.
func composeParagraph(s *styleState) ParagraphStyle {
	return ParagraphStyle{
		Alignment:         clonePtr(s.alignment),
		LineBreakMode:     clonePtr(s.lineBreakMode),
		MinimumLineHeight: clonePtr(s.minimumLineHeight),
		MaximumLineHeight: clonePtr(s.maximumLineHeight),
		LineSpacing:       clonePtr(s.lineSpacing),
	}
}
