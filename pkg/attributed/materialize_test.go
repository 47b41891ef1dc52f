package attributed

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/go-drift/attributed/pkg/graphics"
)

func TestBuild_NoPropertiesNoAttributes(t *testing.T) {
	doc := NewText("Hello").Build()
	if doc.Text() != "Hello" {
		t.Errorf("expected text %q, got %q", "Hello", doc.Text())
	}
	if got := len(doc.Attributes()); got != 0 {
		t.Errorf("expected 0 attributes, got %d", got)
	}
}

func TestBuild_UppercaseOnlyTransformsText(t *testing.T) {
	doc := NewText("hello").Uppercased(true).Build()
	if doc.Text() != "HELLO" {
		t.Errorf("expected %q, got %q", "HELLO", doc.Text())
	}
	if got := len(doc.Attributes()); got != 0 {
		t.Errorf("expected 0 attributes, got %d", got)
	}
}

func TestBuild_TwiceYieldsEqualDistinctDocuments(t *testing.T) {
	b := NewText("Hello").Foreground(graphics.ColorRed)
	first := b.Build()
	second := b.Build()
	if first == second {
		t.Fatal("expected distinct document instances")
	}
	if !first.Equal(second) {
		t.Error("expected value-equal documents from back-to-back builds")
	}
}

func TestBuild_HasNoSideEffectsOnBuilder(t *testing.T) {
	b := NewText("Hello").Foreground(graphics.ColorRed).Alignment(graphics.TextAlignCenter)
	snapshot := b.Copy()
	b.Build()
	if !b.Equal(snapshot) {
		t.Error("building mutated the builder state")
	}
}

func TestSetterOverwrite_LastWriteWins(t *testing.T) {
	twice := NewText("x").Foreground(graphics.ColorRed).Foreground(graphics.ColorBlue).Build()
	once := NewText("x").Foreground(graphics.ColorBlue).Build()
	if !twice.Equal(once) {
		t.Error("expected v1-then-v2 to build identically to v2 only")
	}
	got, ok := twice.Attribute(KeyForegroundColor)
	if !ok {
		t.Fatal("expected a foreground color attribute")
	}
	if got != graphics.ColorBlue {
		t.Errorf("expected %v, got %v", graphics.ColorBlue, got)
	}
}

func TestForegroundColor_FullRange(t *testing.T) {
	doc := NewStyle().Foreground(graphics.ColorRed).Build("Hello World")
	if doc.Text() != "Hello World" {
		t.Errorf("expected text %q, got %q", "Hello World", doc.Text())
	}
	attrs := doc.Attributes()
	if len(attrs) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(attrs))
	}
	if attrs[0].Key != KeyForegroundColor {
		t.Errorf("expected key %q, got %q", KeyForegroundColor, attrs[0].Key)
	}
	want := Range{Location: 0, Length: 11}
	if attrs[0].Range != want {
		t.Errorf("expected range %+v, got %+v", want, attrs[0].Range)
	}
}

func TestShadow_ColorAloneEmitsNothing(t *testing.T) {
	doc := NewText("x").ShadowColor(graphics.ColorBlack).Build()
	if doc.HasAttribute(KeyShadow) {
		t.Error("shadow color alone must not produce a shadow attribute")
	}
}

func TestShadow_OffsetAloneEmitsNothing(t *testing.T) {
	doc := NewText("x").ShadowOffset(graphics.Offset{X: 1, Y: 2}).Build()
	if doc.HasAttribute(KeyShadow) {
		t.Error("shadow offset alone must not produce a shadow attribute")
	}
}

func TestShadow_OffsetAndBlurWithoutColor(t *testing.T) {
	doc := NewText("x").
		ShadowOffset(graphics.Offset{X: 1, Y: 2}).
		ShadowBlur(3).
		Build()
	value, ok := doc.Attribute(KeyShadow)
	if !ok {
		t.Fatal("expected a shadow attribute once offset and blur are set")
	}
	shadow := value.(graphics.Shadow)
	if shadow.Offset != (graphics.Offset{X: 1, Y: 2}) {
		t.Errorf("unexpected shadow offset %+v", shadow.Offset)
	}
	if shadow.BlurRadius != 3 {
		t.Errorf("expected blur radius 3, got %v", shadow.BlurRadius)
	}
	if shadow.HasColor() {
		t.Errorf("expected absent shadow color, got %v", shadow.Color)
	}
}

func TestShadow_CompleteComposite(t *testing.T) {
	doc := NewText("x").
		ShadowOffset(graphics.Offset{X: 0, Y: 2}).
		ShadowBlur(4).
		ShadowColor(graphics.ColorGray).
		Build()
	value, ok := doc.Attribute(KeyShadow)
	if !ok {
		t.Fatal("expected a shadow attribute")
	}
	shadow := value.(graphics.Shadow)
	if shadow.Color != graphics.ColorGray {
		t.Errorf("expected %v, got %v", graphics.ColorGray, shadow.Color)
	}
}

func TestStrikethroughColor_WithoutStyleNotEmitted(t *testing.T) {
	doc := NewText("x").StrikethroughColor(graphics.ColorRed).Build()
	if doc.HasAttribute(KeyStrikethroughColor) {
		t.Error("strikethrough color without a style must not be emitted")
	}
	if doc.HasAttribute(KeyStrikethroughStyle) {
		t.Error("no strikethrough style attribute expected")
	}
}

func TestStrikethrough_StyleWithoutColorOmitsColor(t *testing.T) {
	doc := NewText("x").Strikethrough(graphics.LineStyleSingle).Build()
	if !doc.HasAttribute(KeyStrikethroughStyle) {
		t.Error("expected a strikethrough style attribute")
	}
	if doc.HasAttribute(KeyStrikethroughColor) {
		t.Error("style without color must omit the color attribute")
	}
}

func TestUnderline_StyleAndColor(t *testing.T) {
	doc := NewText("x").
		Underline(graphics.LineStyleDouble).
		UnderlineColor(graphics.ColorBlue).
		Build()
	style, ok := doc.Attribute(KeyUnderlineStyle)
	if !ok {
		t.Fatal("expected an underline style attribute")
	}
	if style != graphics.LineStyleDouble {
		t.Errorf("expected %v, got %v", graphics.LineStyleDouble, style)
	}
	color, ok := doc.Attribute(KeyUnderlineColor)
	if !ok {
		t.Fatal("expected an underline color attribute")
	}
	if color != graphics.ColorBlue {
		t.Errorf("expected %v, got %v", graphics.ColorBlue, color)
	}
}

func TestUnderline_UndefinedRawCodePassesThrough(t *testing.T) {
	raw := graphics.LineStyle(0x7777)
	doc := NewText("x").Underline(raw).Build()
	value, ok := doc.Attribute(KeyUnderlineStyle)
	if !ok {
		t.Fatal("expected an underline style attribute")
	}
	if value != raw {
		t.Errorf("expected raw code %v carried through, got %v", raw, value)
	}
}

func TestParagraph_UntouchedEmitsNoDescriptor(t *testing.T) {
	doc := NewText("x").Foreground(graphics.ColorRed).Build()
	if doc.HasAttribute(KeyParagraphStyle) {
		t.Error("no paragraph attribute expected when no paragraph field was set")
	}
}

func TestParagraph_SingleFieldOverridesOnlyThatField(t *testing.T) {
	doc := NewText("x").Alignment(graphics.TextAlignCenter).Build()
	value, ok := doc.Attribute(KeyParagraphStyle)
	if !ok {
		t.Fatal("expected a paragraph attribute")
	}
	p := value.(ParagraphStyle)
	if p.Alignment == nil || *p.Alignment != graphics.TextAlignCenter {
		t.Errorf("expected center alignment, got %v", p.Alignment)
	}
	if p.LineBreakMode != nil || p.MinimumLineHeight != nil ||
		p.MaximumLineHeight != nil || p.LineSpacing != nil {
		t.Errorf("expected all other paragraph fields unset, got %+v", p)
	}
}

func TestParagraph_AllFields(t *testing.T) {
	doc := NewText("x").
		Alignment(graphics.TextAlignJustify).
		LineBreakMode(graphics.LineBreakByTruncatingTail).
		MinimumLineHeight(12).
		MaximumLineHeight(24).
		LineSpacing(4).
		Build()
	value, ok := doc.Attribute(KeyParagraphStyle)
	if !ok {
		t.Fatal("expected a paragraph attribute")
	}
	p := value.(ParagraphStyle)
	if p.Alignment == nil || *p.Alignment != graphics.TextAlignJustify {
		t.Errorf("unexpected alignment %v", p.Alignment)
	}
	if p.LineBreakMode == nil || *p.LineBreakMode != graphics.LineBreakByTruncatingTail {
		t.Errorf("unexpected line break mode %v", p.LineBreakMode)
	}
	if p.MinimumLineHeight == nil || *p.MinimumLineHeight != 12 {
		t.Errorf("unexpected minimum line height %v", p.MinimumLineHeight)
	}
	if p.MaximumLineHeight == nil || *p.MaximumLineHeight != 24 {
		t.Errorf("unexpected maximum line height %v", p.MaximumLineHeight)
	}
	if p.LineSpacing == nil || *p.LineSpacing != 4 {
		t.Errorf("unexpected line spacing %v", p.LineSpacing)
	}
}

func TestUppercase_RangeUsesTransformedLength(t *testing.T) {
	// "straße" is 6 code points; the default uppercase transform expands
	// ß to SS, so the output spans 7.
	doc := NewText("straße").Uppercased(true).LetterSpacing(1.5).Build()
	if doc.Text() != "STRASSE" {
		t.Fatalf("expected %q, got %q", "STRASSE", doc.Text())
	}
	value, ok := doc.Attribute(KeyLetterSpacing)
	if !ok {
		t.Fatal("expected a letter spacing attribute")
	}
	if value != 1.5 {
		t.Errorf("expected letter spacing 1.5, got %v", value)
	}
	attrs := doc.Attributes()
	for _, attr := range attrs {
		if attr.Range.Length != 7 {
			t.Errorf("attribute %s: expected range length 7 (transformed text), got %d",
				attr.Key, attr.Range.Length)
		}
	}
}

func TestUppercase_LocaleSensitiveCasing(t *testing.T) {
	neutral := NewText("istanbul").Uppercased(true).Build()
	if neutral.Text() != "ISTANBUL" {
		t.Errorf("expected %q, got %q", "ISTANBUL", neutral.Text())
	}
	turkish := NewText("istanbul").Uppercased(true).CasingLocale(language.Turkish).Build()
	if turkish.Text() != "İSTANBUL" {
		t.Errorf("expected %q, got %q", "İSTANBUL", turkish.Text())
	}
}

func TestCasingLocale_WithoutUppercaseIsInert(t *testing.T) {
	doc := NewText("istanbul").CasingLocale(language.Turkish).Build()
	if doc.Text() != "istanbul" {
		t.Errorf("expected untransformed text, got %q", doc.Text())
	}
	if got := len(doc.Attributes()); got != 0 {
		t.Errorf("expected 0 attributes, got %d", got)
	}
}

func TestMaterialize_SetterOrderIrrelevant(t *testing.T) {
	first := NewText("order").
		Foreground(graphics.ColorRed).
		Underline(graphics.LineStyleSingle).
		LetterSpacing(2).
		Build()
	second := NewText("order").
		LetterSpacing(2).
		Underline(graphics.LineStyleSingle).
		Foreground(graphics.ColorRed).
		Build()
	if !first.Equal(second) {
		t.Error("expected documents to be equal regardless of setter order")
	}
}

func TestMaterialize_FontAndBaseline(t *testing.T) {
	f := graphics.NewFont("Inter", 14).WithWeight(graphics.FontWeightBold)
	doc := NewText("x").Font(f).BaselineOffset(-2).Build()
	value, ok := doc.Attribute(KeyFont)
	if !ok {
		t.Fatal("expected a font attribute")
	}
	if !value.(graphics.Font).Equal(f) {
		t.Errorf("expected font %v, got %v", f, value)
	}
	offset, ok := doc.Attribute(KeyBaselineOffset)
	if !ok {
		t.Fatal("expected a baseline offset attribute")
	}
	if offset != -2.0 {
		t.Errorf("expected -2, got %v", offset)
	}
}

func TestMaterialize_NegativeSpacingPassesThrough(t *testing.T) {
	doc := NewText("x").LetterSpacing(-3).Build()
	value, ok := doc.Attribute(KeyLetterSpacing)
	if !ok {
		t.Fatal("expected a letter spacing attribute")
	}
	if value != -3.0 {
		t.Errorf("expected -3 carried through unvalidated, got %v", value)
	}
}
