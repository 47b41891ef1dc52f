package graphics

import (
	"fmt"
	"strings"
)

// TextAlign controls paragraph-level horizontal alignment.
type TextAlign int

const (
	// TextAlignLeft aligns lines to the left edge of the paragraph.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns lines to the right edge of the paragraph.
	TextAlignRight
	// TextAlignCenter centers each line horizontally within the paragraph.
	TextAlignCenter
	// TextAlignJustify stretches lines so both edges are flush with the
	// paragraph bounds. The last line of a paragraph is left-aligned.
	TextAlignJustify
	// TextAlignStart aligns lines to the start edge based on text direction.
	TextAlignStart
	// TextAlignEnd aligns lines to the end edge based on text direction.
	TextAlignEnd
)

// String returns a human-readable representation of the text alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	case TextAlignJustify:
		return "justify"
	case TextAlignStart:
		return "start"
	case TextAlignEnd:
		return "end"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// LineBreakMode controls how the rendering layer wraps or truncates lines
// that overflow the paragraph bounds.
type LineBreakMode int

const (
	// LineBreakByWordWrapping wraps at word boundaries.
	LineBreakByWordWrapping LineBreakMode = iota
	// LineBreakByCharWrapping wraps at the first character that overflows.
	LineBreakByCharWrapping
	// LineBreakByClipping clips overflowing content without wrapping.
	LineBreakByClipping
	// LineBreakByTruncatingHead elides the beginning of overflowing lines.
	LineBreakByTruncatingHead
	// LineBreakByTruncatingTail elides the end of overflowing lines.
	LineBreakByTruncatingTail
	// LineBreakByTruncatingMiddle elides the middle of overflowing lines.
	LineBreakByTruncatingMiddle
)

// String returns a human-readable representation of the line-break mode.
func (m LineBreakMode) String() string {
	switch m {
	case LineBreakByWordWrapping:
		return "word_wrapping"
	case LineBreakByCharWrapping:
		return "char_wrapping"
	case LineBreakByClipping:
		return "clipping"
	case LineBreakByTruncatingHead:
		return "truncating_head"
	case LineBreakByTruncatingTail:
		return "truncating_tail"
	case LineBreakByTruncatingMiddle:
		return "truncating_middle"
	default:
		return fmt.Sprintf("LineBreakMode(%d)", int(m))
	}
}

// LineStyle is the raw style code for underline and strikethrough lines.
// The base style occupies the low byte; a dash pattern can be OR-ed into
// the next byte and LineStyleByWord restricts the line to word runs.
//
// Codes outside the defined set are carried through untouched. How the
// rendering layer draws such codes is undefined, but they are never an
// error here.
type LineStyle int

const (
	LineStyleNone   LineStyle = 0x0000
	LineStyleSingle LineStyle = 0x0001
	LineStyleThick  LineStyle = 0x0002
	LineStyleDouble LineStyle = 0x0009

	LineStylePatternDot        LineStyle = 0x0100
	LineStylePatternDash       LineStyle = 0x0200
	LineStylePatternDashDot    LineStyle = 0x0300
	LineStylePatternDashDotDot LineStyle = 0x0400

	LineStyleByWord LineStyle = 0x8000
)

// String returns a human-readable representation of the line style.
// Undefined codes format as LineStyle(0x....).
func (s LineStyle) String() string {
	if s == LineStyleNone {
		return "none"
	}
	unknown := fmt.Sprintf("LineStyle(0x%04X)", int(s))
	if s&^(0x00FF|0x0F00|LineStyleByWord) != 0 {
		return unknown
	}
	var parts []string
	switch s & 0x00FF {
	case 0:
	case LineStyleSingle:
		parts = append(parts, "single")
	case LineStyleThick:
		parts = append(parts, "thick")
	case LineStyleDouble:
		parts = append(parts, "double")
	default:
		return unknown
	}
	switch s & 0x0F00 {
	case 0:
	case LineStylePatternDot:
		parts = append(parts, "dot")
	case LineStylePatternDash:
		parts = append(parts, "dash")
	case LineStylePatternDashDot:
		parts = append(parts, "dash_dot")
	case LineStylePatternDashDotDot:
		parts = append(parts, "dash_dot_dot")
	default:
		return unknown
	}
	if s&LineStyleByWord != 0 {
		parts = append(parts, "by_word")
	}
	return strings.Join(parts, "_")
}
