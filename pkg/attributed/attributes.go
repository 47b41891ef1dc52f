package attributed

// AttributeKey identifies one resolved style attribute on a Document.
type AttributeKey string

// Attribute keys emitted by materialization. Keys never conflict: each set
// style property resolves to exactly one key.
const (
	KeyForegroundColor    AttributeKey = "foregroundColor"
	KeyBackgroundColor    AttributeKey = "backgroundColor"
	KeyFont               AttributeKey = "font"
	KeyLetterSpacing      AttributeKey = "letterSpacing"
	KeyBaselineOffset     AttributeKey = "baselineOffset"
	KeyStrikethroughStyle AttributeKey = "strikethroughStyle"
	KeyStrikethroughColor AttributeKey = "strikethroughColor"
	KeyUnderlineStyle     AttributeKey = "underlineStyle"
	KeyUnderlineColor     AttributeKey = "underlineColor"
	KeyShadow             AttributeKey = "shadow"
	KeyParagraphStyle     AttributeKey = "paragraphStyle"
)

// Range addresses a contiguous span of text in Unicode code points.
type Range struct {
	Location int
	Length   int
}

// Attribute pairs a resolved style value with the text range it covers.
// Materialization always emits full-range attributes computed against the
// (possibly case-transformed) output text.
type Attribute struct {
	Key   AttributeKey
	Value any
	Range Range
}
