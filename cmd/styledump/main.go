// Command styledump applies flag-driven style configuration to its
// argument text and prints the resulting document's attribute table.
//
// Usage:
//
//	styledump [flags] <text>...
//
// An optional styledump.yaml in the working directory adjusts the output
// format.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/go-drift/attributed/cmd/styledump/internal/config"
	"github.com/go-drift/attributed/pkg/attributed"
	"github.com/go-drift/attributed/pkg/errors"
	"github.com/go-drift/attributed/pkg/graphics"
)

var (
	fg          = flag.String("fg", "", "foreground color as hex ARGB, e.g. FFFF0000")
	bg          = flag.String("bg", "", "background color as hex ARGB")
	underline   = flag.Bool("underline", false, "single underline")
	strike      = flag.Bool("strike", false, "single strikethrough")
	spacing     = flag.Float64("spacing", 0, "letter spacing in points")
	baseline    = flag.Float64("baseline", 0, "baseline offset in points")
	upper       = flag.Bool("upper", false, "uppercase the text")
	locale      = flag.String("locale", "", "BCP 47 casing locale, e.g. tr")
	align       = flag.String("align", "", "paragraph alignment: left|right|center|justify")
	lineSpacing = flag.Float64("line-spacing", 0, "paragraph line spacing in points")
)

func main() {
	flag.Parse()
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: styledump [flags] <text>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	prefs, err := config.Resolve(".")
	if err != nil {
		errors.Report(&errors.Error{Op: "styledump.main", Kind: errors.KindConfig, Err: err})
		os.Exit(1)
	}

	style := attributed.NewStyle()

	// Only flags the caller actually passed configure the builder, so the
	// dump reflects set/unset semantics faithfully.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fg":
			style.Foreground(mustColor(*fg))
		case "bg":
			style.Background(mustColor(*bg))
		case "underline":
			if *underline {
				style.Underline(graphics.LineStyleSingle)
			}
		case "strike":
			if *strike {
				style.Strikethrough(graphics.LineStyleSingle)
			}
		case "spacing":
			style.LetterSpacing(*spacing)
		case "baseline":
			style.BaselineOffset(*baseline)
		case "upper":
			style.Uppercased(*upper)
		case "locale":
			style.CasingLocale(mustLocale(*locale))
		case "align":
			style.Alignment(mustAlign(*align))
		case "line-spacing":
			style.LineSpacing(*lineSpacing)
		}
	})

	doc := style.Build(text)
	dump(doc, prefs)
}

func dump(doc *attributed.Document, prefs *config.Resolved) {
	fmt.Printf("text: %q (%d code points)\n", doc.Text(), doc.Length())

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()
	for _, attr := range doc.Attributes() {
		value := formatValue(attr.Value, prefs)
		if prefs.ShowRanges {
			fmt.Fprintf(w, "%s\t%s\t[%d,%d)\n",
				attr.Key, value, attr.Range.Location, attr.Range.Location+attr.Range.Length)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", attr.Key, value)
		}
	}
}

func formatValue(value any, prefs *config.Resolved) string {
	if c, ok := value.(graphics.Color); ok && !prefs.HexColors {
		r, g, b, a := c.RGBAF()
		return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", r, g, b, a)
	}
	return fmt.Sprint(value)
}

func mustColor(hex string) graphics.Color {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "0x"), 16, 32)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "styledump.mustColor",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid color %q: %w", hex, err),
		})
		os.Exit(1)
	}
	return graphics.Color(v)
}

func mustLocale(tag string) language.Tag {
	parsed, err := language.Parse(tag)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "styledump.mustLocale",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid locale %q: %w", tag, err),
		})
		os.Exit(1)
	}
	return parsed
}

func mustAlign(name string) graphics.TextAlign {
	switch name {
	case "left":
		return graphics.TextAlignLeft
	case "right":
		return graphics.TextAlignRight
	case "center":
		return graphics.TextAlignCenter
	case "justify":
		return graphics.TextAlignJustify
	default:
		errors.Report(&errors.Error{
			Op:   "styledump.mustAlign",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown alignment %q", name),
		})
		os.Exit(1)
		return graphics.TextAlignLeft
	}
}
