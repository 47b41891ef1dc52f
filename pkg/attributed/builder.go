package attributed

import (
	"golang.org/x/text/language"

	"github.com/go-drift/attributed/pkg/graphics"
)

// accumulator is the shared attribute-accumulation core. Both builder
// variants compose one; neither exposes it.
type accumulator struct {
	state styleState
}

func (a *accumulator) clone() accumulator {
	return accumulator{state: a.state.clone()}
}

func (a *accumulator) equal(other *accumulator) bool {
	return a.state.equal(&other.state)
}

// TextBuilder is the single-use variant: it accumulates style for one
// string fixed at construction. Build takes no argument and may be called
// any number of times; each call materializes an independent Document from
// the state at call time.
//
// A TextBuilder is not safe for concurrent use.
type TextBuilder struct {
	text string
	acc  accumulator
}

// NewText creates a single-use builder bound to text, with every style
// property unset.
func NewText(text string) *TextBuilder {
	return &TextBuilder{text: text}
}

// Build materializes the bound text with the accumulated style.
func (b *TextBuilder) Build() *Document {
	return b.acc.materialize(b.text)
}

// Copy returns an independent builder carrying the same bound text and a
// deep copy of the current style state. Later mutation of either builder
// never affects the other.
func (b *TextBuilder) Copy() *TextBuilder {
	return &TextBuilder{text: b.text, acc: b.acc.clone()}
}

// Equal reports structural equality: the same bound text and
// field-for-field equal style state.
func (b *TextBuilder) Equal(other *TextBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.text == other.text && b.acc.equal(&other.acc)
}

// Foreground sets the text color.
func (b *TextBuilder) Foreground(c graphics.Color) *TextBuilder {
	b.acc.state.setForeground(c)
	return b
}

// Background sets the background color behind the text.
func (b *TextBuilder) Background(c graphics.Color) *TextBuilder {
	b.acc.state.setBackground(c)
	return b
}

// ShadowOffset sets the shadow offset. A shadow is only emitted once both
// offset and blur radius are set.
func (b *TextBuilder) ShadowOffset(o graphics.Offset) *TextBuilder {
	b.acc.state.setShadowOffset(o)
	return b
}

// ShadowBlur sets the shadow blur radius. A shadow is only emitted once
// both offset and blur radius are set.
func (b *TextBuilder) ShadowBlur(radius float64) *TextBuilder {
	b.acc.state.setShadowBlur(radius)
	return b
}

// ShadowColor sets the shadow color. On its own it produces no shadow.
func (b *TextBuilder) ShadowColor(c graphics.Color) *TextBuilder {
	b.acc.state.setShadowColor(c)
	return b
}

// Strikethrough sets the strikethrough line style.
func (b *TextBuilder) Strikethrough(style graphics.LineStyle) *TextBuilder {
	b.acc.state.setStrikethrough(style)
	return b
}

// StrikethroughColor sets the strikethrough line color. Without a
// strikethrough style it is stored but never emitted.
func (b *TextBuilder) StrikethroughColor(c graphics.Color) *TextBuilder {
	b.acc.state.setStrikethroughColor(c)
	return b
}

// Underline sets the underline line style.
func (b *TextBuilder) Underline(style graphics.LineStyle) *TextBuilder {
	b.acc.state.setUnderline(style)
	return b
}

// UnderlineColor sets the underline line color. Without an underline style
// it is stored but never emitted.
func (b *TextBuilder) UnderlineColor(c graphics.Color) *TextBuilder {
	b.acc.state.setUnderlineColor(c)
	return b
}

// LetterSpacing sets the spacing between characters in points.
func (b *TextBuilder) LetterSpacing(points float64) *TextBuilder {
	b.acc.state.setLetterSpacing(points)
	return b
}

// Font sets the font reference.
func (b *TextBuilder) Font(f graphics.Font) *TextBuilder {
	b.acc.state.setFont(f)
	return b
}

// BaselineOffset shifts the text relative to the baseline, in points.
func (b *TextBuilder) BaselineOffset(points float64) *TextBuilder {
	b.acc.state.setBaselineOffset(points)
	return b
}

// Uppercased transforms the text to uppercase at build time. Attribute
// ranges are computed against the transformed text.
func (b *TextBuilder) Uppercased(on bool) *TextBuilder {
	b.acc.state.setUppercased(on)
	return b
}

// CasingLocale selects the locale used by the uppercase transform.
// Without Uppercased(true) it is stored but has no effect on output.
func (b *TextBuilder) CasingLocale(tag language.Tag) *TextBuilder {
	b.acc.state.setCasingLocale(tag)
	return b
}

// Alignment sets the paragraph alignment.
func (b *TextBuilder) Alignment(a graphics.TextAlign) *TextBuilder {
	b.acc.state.setAlignment(a)
	return b
}

// LineBreakMode sets the paragraph line-break mode.
func (b *TextBuilder) LineBreakMode(m graphics.LineBreakMode) *TextBuilder {
	b.acc.state.setLineBreakMode(m)
	return b
}

// MinimumLineHeight sets the minimum paragraph line height in points.
func (b *TextBuilder) MinimumLineHeight(points float64) *TextBuilder {
	b.acc.state.setMinimumLineHeight(points)
	return b
}

// MaximumLineHeight sets the maximum paragraph line height in points.
func (b *TextBuilder) MaximumLineHeight(points float64) *TextBuilder {
	b.acc.state.setMaximumLineHeight(points)
	return b
}

// LineSpacing sets the spacing between paragraph lines in points.
func (b *TextBuilder) LineSpacing(points float64) *TextBuilder {
	b.acc.state.setLineSpacing(points)
	return b
}

// StyleBuilder is the reusable variant: it holds only style configuration
// and binds no text. Build applies the configuration to its argument, so
// one configured style can stamp arbitrarily many different strings, each
// call independent.
//
// A StyleBuilder is not safe for concurrent use.
type StyleBuilder struct {
	acc accumulator
}

// NewStyle creates a reusable builder with every style property unset.
func NewStyle() *StyleBuilder {
	return &StyleBuilder{}
}

// Build materializes text with the accumulated style.
func (b *StyleBuilder) Build(text string) *Document {
	return b.acc.materialize(text)
}

// Apply is shorthand for Build: it stamps the configuration onto text in
// one call.
func (b *StyleBuilder) Apply(text string) *Document {
	return b.Build(text)
}

// Text binds the configuration to a plain string, returning a preconfigured
// single-use builder with an independent copy of the current state.
func (b *StyleBuilder) Text(text string) *TextBuilder {
	return &TextBuilder{text: text, acc: b.acc.clone()}
}

// Copy returns an independent builder with a deep copy of the current
// style state.
func (b *StyleBuilder) Copy() *StyleBuilder {
	return &StyleBuilder{acc: b.acc.clone()}
}

// Equal reports field-for-field structural equality of the style state.
func (b *StyleBuilder) Equal(other *StyleBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.acc.equal(&other.acc)
}

// Foreground sets the text color.
func (b *StyleBuilder) Foreground(c graphics.Color) *StyleBuilder {
	b.acc.state.setForeground(c)
	return b
}

// Background sets the background color behind the text.
func (b *StyleBuilder) Background(c graphics.Color) *StyleBuilder {
	b.acc.state.setBackground(c)
	return b
}

// ShadowOffset sets the shadow offset. A shadow is only emitted once both
// offset and blur radius are set.
func (b *StyleBuilder) ShadowOffset(o graphics.Offset) *StyleBuilder {
	b.acc.state.setShadowOffset(o)
	return b
}

// ShadowBlur sets the shadow blur radius. A shadow is only emitted once
// both offset and blur radius are set.
func (b *StyleBuilder) ShadowBlur(radius float64) *StyleBuilder {
	b.acc.state.setShadowBlur(radius)
	return b
}

// ShadowColor sets the shadow color. On its own it produces no shadow.
func (b *StyleBuilder) ShadowColor(c graphics.Color) *StyleBuilder {
	b.acc.state.setShadowColor(c)
	return b
}

// Strikethrough sets the strikethrough line style.
func (b *StyleBuilder) Strikethrough(style graphics.LineStyle) *StyleBuilder {
	b.acc.state.setStrikethrough(style)
	return b
}

// StrikethroughColor sets the strikethrough line color. Without a
// strikethrough style it is stored but never emitted.
func (b *StyleBuilder) StrikethroughColor(c graphics.Color) *StyleBuilder {
	b.acc.state.setStrikethroughColor(c)
	return b
}

// Underline sets the underline line style.
func (b *StyleBuilder) Underline(style graphics.LineStyle) *StyleBuilder {
	b.acc.state.setUnderline(style)
	return b
}

// UnderlineColor sets the underline line color. Without an underline style
// it is stored but never emitted.
func (b *StyleBuilder) UnderlineColor(c graphics.Color) *StyleBuilder {
	b.acc.state.setUnderlineColor(c)
	return b
}

// LetterSpacing sets the spacing between characters in points.
func (b *StyleBuilder) LetterSpacing(points float64) *StyleBuilder {
	b.acc.state.setLetterSpacing(points)
	return b
}

// Font sets the font reference.
func (b *StyleBuilder) Font(f graphics.Font) *StyleBuilder {
	b.acc.state.setFont(f)
	return b
}

// BaselineOffset shifts the text relative to the baseline, in points.
func (b *StyleBuilder) BaselineOffset(points float64) *StyleBuilder {
	b.acc.state.setBaselineOffset(points)
	return b
}

// Uppercased transforms the text to uppercase at build time. Attribute
// ranges are computed against the transformed text.
func (b *StyleBuilder) Uppercased(on bool) *StyleBuilder {
	b.acc.state.setUppercased(on)
	return b
}

// CasingLocale selects the locale used by the uppercase transform.
// Without Uppercased(true) it is stored but has no effect on output.
func (b *StyleBuilder) CasingLocale(tag language.Tag) *StyleBuilder {
	b.acc.state.setCasingLocale(tag)
	return b
}

// Alignment sets the paragraph alignment.
func (b *StyleBuilder) Alignment(a graphics.TextAlign) *StyleBuilder {
	b.acc.state.setAlignment(a)
	return b
}

// LineBreakMode sets the paragraph line-break mode.
func (b *StyleBuilder) LineBreakMode(m graphics.LineBreakMode) *StyleBuilder {
	b.acc.state.setLineBreakMode(m)
	return b
}

// MinimumLineHeight sets the minimum paragraph line height in points.
func (b *StyleBuilder) MinimumLineHeight(points float64) *StyleBuilder {
	b.acc.state.setMinimumLineHeight(points)
	return b
}

// MaximumLineHeight sets the maximum paragraph line height in points.
func (b *StyleBuilder) MaximumLineHeight(points float64) *StyleBuilder {
	b.acc.state.setMaximumLineHeight(points)
	return b
}

// LineSpacing sets the spacing between paragraph lines in points.
func (b *StyleBuilder) LineSpacing(points float64) *StyleBuilder {
	b.acc.state.setLineSpacing(points)
	return b
}

// Compose opens a scoped configuration block over text and returns the
// finished document:
//
//	doc := attributed.Compose("warning", func(b *attributed.TextBuilder) {
//		b.Foreground(graphics.ColorRed).Uppercased(true)
//	})
func Compose(text string, configure func(*TextBuilder)) *Document {
	b := NewText(text)
	if configure != nil {
		configure(b)
	}
	return b.Build()
}
