package attributed

import (
	"golang.org/x/text/language"

	"github.com/go-drift/attributed/pkg/graphics"
)

// styleState is the typed record behind a builder: one optional field per
// supported style property. nil means unset, and an unset field
// contributes nothing to the materialized document. Each state is owned by
// exactly one builder, mutated only through its setters, and copied (never
// shared) on clone.
type styleState struct {
	// Run-level properties.
	foreground         *graphics.Color
	background         *graphics.Color
	shadowOffset       *graphics.Offset
	shadowBlur         *float64
	shadowColor        *graphics.Color
	strikethroughStyle *graphics.LineStyle
	strikethroughColor *graphics.Color
	underlineStyle     *graphics.LineStyle
	underlineColor     *graphics.Color
	letterSpacing      *float64
	font               *graphics.Font
	baselineOffset     *float64
	uppercased         bool
	casingLocale       *language.Tag

	// Paragraph-level properties.
	alignment         *graphics.TextAlign
	lineBreakMode     *graphics.LineBreakMode
	minimumLineHeight *float64
	maximumLineHeight *float64
	lineSpacing       *float64

	// paragraphTouched flips once any paragraph-level setter runs and
	// gates whether a paragraph descriptor is emitted at all.
	paragraphTouched bool
}

// Every setter stores a fresh copy of its value: last write wins and no
// pointer is ever shared with the caller or a previous document.

func (s *styleState) setForeground(c graphics.Color)            { s.foreground = &c }
func (s *styleState) setBackground(c graphics.Color)            { s.background = &c }
func (s *styleState) setShadowOffset(o graphics.Offset)         { s.shadowOffset = &o }
func (s *styleState) setShadowBlur(radius float64)              { s.shadowBlur = &radius }
func (s *styleState) setShadowColor(c graphics.Color)           { s.shadowColor = &c }
func (s *styleState) setStrikethrough(style graphics.LineStyle) { s.strikethroughStyle = &style }
func (s *styleState) setStrikethroughColor(c graphics.Color)    { s.strikethroughColor = &c }
func (s *styleState) setUnderline(style graphics.LineStyle)     { s.underlineStyle = &style }
func (s *styleState) setUnderlineColor(c graphics.Color)        { s.underlineColor = &c }
func (s *styleState) setLetterSpacing(points float64)           { s.letterSpacing = &points }
func (s *styleState) setFont(f graphics.Font)                   { s.font = &f }
func (s *styleState) setBaselineOffset(points float64)          { s.baselineOffset = &points }
func (s *styleState) setUppercased(on bool)                     { s.uppercased = on }
func (s *styleState) setCasingLocale(tag language.Tag)          { s.casingLocale = &tag }

func (s *styleState) setAlignment(a graphics.TextAlign) {
	s.alignment = &a
	s.paragraphTouched = true
}

func (s *styleState) setLineBreakMode(m graphics.LineBreakMode) {
	s.lineBreakMode = &m
	s.paragraphTouched = true
}

func (s *styleState) setMinimumLineHeight(points float64) {
	s.minimumLineHeight = &points
	s.paragraphTouched = true
}

func (s *styleState) setMaximumLineHeight(points float64) {
	s.maximumLineHeight = &points
	s.paragraphTouched = true
}

func (s *styleState) setLineSpacing(points float64) {
	s.lineSpacing = &points
	s.paragraphTouched = true
}

// clone returns a deep value copy: every pointer field is re-allocated so
// the original and the copy never share sub-objects.
func (s *styleState) clone() styleState {
	return styleState{
		foreground:         clonePtr(s.foreground),
		background:         clonePtr(s.background),
		shadowOffset:       clonePtr(s.shadowOffset),
		shadowBlur:         clonePtr(s.shadowBlur),
		shadowColor:        clonePtr(s.shadowColor),
		strikethroughStyle: clonePtr(s.strikethroughStyle),
		strikethroughColor: clonePtr(s.strikethroughColor),
		underlineStyle:     clonePtr(s.underlineStyle),
		underlineColor:     clonePtr(s.underlineColor),
		letterSpacing:      clonePtr(s.letterSpacing),
		font:               clonePtr(s.font),
		baselineOffset:     clonePtr(s.baselineOffset),
		uppercased:         s.uppercased,
		casingLocale:       clonePtr(s.casingLocale),
		alignment:          clonePtr(s.alignment),
		lineBreakMode:      clonePtr(s.lineBreakMode),
		minimumLineHeight:  clonePtr(s.minimumLineHeight),
		maximumLineHeight:  clonePtr(s.maximumLineHeight),
		lineSpacing:        clonePtr(s.lineSpacing),
		paragraphTouched:   s.paragraphTouched,
	}
}

// equal compares every field structurally, including paragraphTouched:
// two states differing only in that flag build identical documents when no
// paragraph field is set, but they are documented as unequal.
func (s *styleState) equal(other *styleState) bool {
	return eqPtr(s.foreground, other.foreground) &&
		eqPtr(s.background, other.background) &&
		eqPtr(s.shadowOffset, other.shadowOffset) &&
		eqPtr(s.shadowBlur, other.shadowBlur) &&
		eqPtr(s.shadowColor, other.shadowColor) &&
		eqPtr(s.strikethroughStyle, other.strikethroughStyle) &&
		eqPtr(s.strikethroughColor, other.strikethroughColor) &&
		eqPtr(s.underlineStyle, other.underlineStyle) &&
		eqPtr(s.underlineColor, other.underlineColor) &&
		eqPtr(s.letterSpacing, other.letterSpacing) &&
		fontPtrEqual(s.font, other.font) &&
		eqPtr(s.baselineOffset, other.baselineOffset) &&
		s.uppercased == other.uppercased &&
		eqPtr(s.casingLocale, other.casingLocale) &&
		eqPtr(s.alignment, other.alignment) &&
		eqPtr(s.lineBreakMode, other.lineBreakMode) &&
		eqPtr(s.minimumLineHeight, other.minimumLineHeight) &&
		eqPtr(s.maximumLineHeight, other.maximumLineHeight) &&
		eqPtr(s.lineSpacing, other.lineSpacing) &&
		s.paragraphTouched == other.paragraphTouched
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fontPtrEqual(a, b *graphics.Font) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
