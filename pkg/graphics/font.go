package graphics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/go-drift/attributed/pkg/errors"
)

import stderrors "errors"

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
	// defaultFaceDPI is the resolution used when resolving faces.
	defaultFaceDPI = 72
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightThin:
		return "thin"
	case FontWeightExtraLight:
		return "extra_light"
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	case FontWeightExtraBold:
		return "extra_bold"
	case FontWeightBlack:
		return "black"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// String returns a human-readable representation of the font style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// Font is an opaque font reference carried through attribute
// materialization. The builder core stores and forwards it without
// interpreting any field; resolution against real font data is the
// rendering layer's concern.
type Font struct {
	Family string
	Size   float64
	Weight FontWeight
	Style  FontStyle
	// Face is an optional resolved face, e.g. from ParseFace or a
	// FontRegistry. May be nil.
	Face font.Face
}

// NewFont creates a font reference with normal weight and style.
func NewFont(family string, size float64) Font {
	return Font{Family: family, Size: size, Weight: FontWeightNormal}
}

// WithWeight returns a copy of the font with the specified weight.
func (f Font) WithWeight(w FontWeight) Font {
	f.Weight = w
	return f
}

// WithStyle returns a copy of the font with the specified style.
func (f Font) WithStyle(s FontStyle) Font {
	f.Style = s
	return f
}

// Equal reports whether two font references are structurally equal.
// Faces compare by identity: two faces parsed separately from the same
// data are distinct.
func (f Font) Equal(other Font) bool {
	return f.Family == other.Family &&
		f.Size == other.Size &&
		f.Weight == other.Weight &&
		f.Style == other.Style &&
		f.Face == other.Face
}

// String returns a human-readable representation of the font reference.
func (f Font) String() string {
	return fmt.Sprintf("%s %.1fpt %s %s", f.Family, f.Size, f.Weight, f.Style)
}

// ParseFace parses TrueType/OpenType data into a face at the given size.
// A non-positive size falls back to the default font size.
func ParseFace(data []byte, size float64) (font.Face, error) {
	if len(data) == 0 {
		return nil, &errors.Error{
			Op:   "graphics.ParseFace",
			Kind: errors.KindFont,
			Err:  stderrors.New("empty font data"),
		}
	}
	if size <= 0 {
		size = defaultFontSize
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, &errors.Error{Op: "graphics.ParseFace", Kind: errors.KindFont, Err: err}
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     defaultFaceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &errors.Error{Op: "graphics.ParseFace", Kind: errors.KindFont, Err: err}
	}
	return face, nil
}

// FontRegistry manages font registration by family name.
type FontRegistry struct {
	mu    sync.RWMutex
	faces map[string]font.Face
}

var (
	defaultRegistry     *FontRegistry
	defaultRegistryOnce sync.Once
)

// NewFontRegistry creates an empty font registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{faces: make(map[string]font.Face)}
}

// DefaultRegistry returns a shared process-wide font registry.
func DefaultRegistry() *FontRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewFontRegistry()
	})
	return defaultRegistry
}

// Register parses TrueType/OpenType data and stores the resulting face
// under the given family name, replacing any previous registration.
func (r *FontRegistry) Register(family string, data []byte, size float64) error {
	if family == "" {
		return &errors.Error{
			Op:   "graphics.FontRegistry.Register",
			Kind: errors.KindFont,
			Err:  stderrors.New("font family required"),
		}
	}
	face, err := ParseFace(data, size)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[family] = face
	return nil
}

// Face returns the registered face for a family name.
func (r *FontRegistry) Face(family string) (font.Face, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	face, ok := r.faces[family]
	return face, ok
}

// Resolve fills in the Face of a font reference from the registry when the
// reference carries none. Fonts that already hold a face pass through
// unchanged, as do families the registry does not know.
func (r *FontRegistry) Resolve(f Font) Font {
	if f.Face != nil {
		return f
	}
	if face, ok := r.Face(f.Family); ok {
		f.Face = face
	}
	return f
}
