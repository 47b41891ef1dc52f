package attributed

import (
	"unicode/utf8"

	"github.com/go-drift/attributed/pkg/graphics"
)

// Document is the immutable output of a build: the (possibly transformed)
// text together with its resolved, non-overlapping attribute set. Every
// build call produces a fresh Document; the builder that produced it holds
// no reference to it and later builder mutation never affects it.
type Document struct {
	text  string
	attrs []Attribute
}

func newDocument(text string, attrs []Attribute) *Document {
	return &Document{text: text, attrs: attrs}
}

// Text returns the document text.
func (d *Document) Text() string {
	return d.text
}

// Length returns the text length in Unicode code points, the unit in which
// attribute ranges are expressed.
func (d *Document) Length() int {
	return utf8.RuneCountInString(d.text)
}

// Attributes returns a copy of the resolved attributes.
func (d *Document) Attributes() []Attribute {
	attrs := make([]Attribute, len(d.attrs))
	copy(attrs, d.attrs)
	return attrs
}

// Attribute returns the value stored under key, if present.
func (d *Document) Attribute(key AttributeKey) (any, bool) {
	attr, ok := d.lookup(key)
	if !ok {
		return nil, false
	}
	return attr.Value, true
}

// HasAttribute reports whether an attribute with the given key is present.
func (d *Document) HasAttribute(key AttributeKey) bool {
	_, ok := d.lookup(key)
	return ok
}

// Equal reports whether two documents carry the same text and an
// attribute-for-attribute equal attribute set. Emission order is
// irrelevant; attributes match by key.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.text != other.text || len(d.attrs) != len(other.attrs) {
		return false
	}
	for _, attr := range d.attrs {
		match, ok := other.lookup(attr.Key)
		if !ok || match.Range != attr.Range || !attributeValueEqual(attr.Value, match.Value) {
			return false
		}
	}
	return true
}

func (d *Document) lookup(key AttributeKey) (Attribute, bool) {
	for _, attr := range d.attrs {
		if attr.Key == key {
			return attr, true
		}
	}
	return Attribute{}, false
}

// attributeValueEqual compares two attribute values. The value space is
// closed (colors, numerics, style codes, fonts, shadows, paragraph
// descriptors), so everything outside the two composite cases compares
// with ==.
func attributeValueEqual(a, b any) bool {
	switch av := a.(type) {
	case ParagraphStyle:
		bv, ok := b.(ParagraphStyle)
		return ok && av.Equal(bv)
	case graphics.Font:
		bv, ok := b.(graphics.Font)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
