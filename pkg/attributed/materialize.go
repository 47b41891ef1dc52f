package attributed

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-drift/attributed/pkg/graphics"
)

// materialize resolves the accumulated style state against text and
// produces an immutable Document. The accumulator state is read, never
// modified: building has no side effects on the builder.
//
// When the uppercase flag is set the text is transformed first and the
// full-range attribute span is computed against the transformed text, so
// locale-sensitive casing that changes the length (ß to SS) is reflected
// in every emitted range.
func (a *accumulator) materialize(text string) *Document {
	s := &a.state
	if s.uppercased {
		text = cases.Upper(s.locale()).String(text)
	}
	full := Range{Location: 0, Length: utf8.RuneCountInString(text)}

	var attrs []Attribute
	add := func(key AttributeKey, value any) {
		attrs = append(attrs, Attribute{Key: key, Value: value, Range: full})
	}

	if s.foreground != nil {
		add(KeyForegroundColor, *s.foreground)
	}
	if s.background != nil {
		add(KeyBackgroundColor, *s.background)
	}
	if s.font != nil {
		add(KeyFont, *s.font)
	}
	if s.letterSpacing != nil {
		add(KeyLetterSpacing, *s.letterSpacing)
	}
	if s.baselineOffset != nil {
		add(KeyBaselineOffset, *s.baselineOffset)
	}
	// A decoration color without its style is stored on the builder but
	// never emitted; a style without a color omits the color attribute.
	if s.strikethroughStyle != nil {
		add(KeyStrikethroughStyle, *s.strikethroughStyle)
		if s.strikethroughColor != nil {
			add(KeyStrikethroughColor, *s.strikethroughColor)
		}
	}
	if s.underlineStyle != nil {
		add(KeyUnderlineStyle, *s.underlineStyle)
		if s.underlineColor != nil {
			add(KeyUnderlineColor, *s.underlineColor)
		}
	}
	// Shadow requires offset and blur; color alone is insufficient and a
	// missing color leaves the rendering layer's default in effect.
	if s.shadowOffset != nil && s.shadowBlur != nil {
		shadow := graphics.Shadow{Offset: *s.shadowOffset, BlurRadius: *s.shadowBlur}
		if s.shadowColor != nil {
			shadow.Color = *s.shadowColor
		}
		add(KeyShadow, shadow)
	}
	if s.paragraphTouched {
		add(KeyParagraphStyle, composeParagraph(s))
	}
	return newDocument(text, attrs)
}

// locale returns the casing locale for the uppercase transform,
// defaulting to the language-neutral root locale.
func (s *styleState) locale() language.Tag {
	if s.casingLocale != nil {
		return *s.casingLocale
	}
	return language.Und
}
