// Package text measures strings for label elements using
// golang.org/x/image/font faces.
package text

import (
	stderrors "errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/boxlayout/pkg/errors"
)

// Built-in face names.
const (
	FaceGoRegular = "goregular"
	FaceBasic     = "basic"
)

// Style selects a face and its size.
type Style struct {
	// Face is FaceGoRegular or FaceBasic. Empty means FaceGoRegular.
	Face string
	// Size is the font size in points. Ignored by FaceBasic.
	Size float64
	// DPI is the output resolution. Ignored by FaceBasic.
	DPI float64
}

// DefaultStyle returns 13pt Go Regular at 72 DPI, so one point is one pixel.
func DefaultStyle() Style {
	return Style{Face: FaceGoRegular, Size: 13, DPI: 72}
}

// Face is a measuring face that is safe for concurrent use.
// font.Face implementations are not, so every call takes a lock.
type Face struct {
	mu    sync.Mutex
	face  font.Face
	style Style

	lineHeight float64
	ascent     float64
	descent    float64
}

var (
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

func parseGoRegular() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// NewFace loads the face named by style.
func NewFace(style Style) (*Face, error) {
	var ff font.Face
	switch style.Face {
	case "", FaceGoRegular:
		if style.Size <= 0 {
			return nil, fmt.Errorf("font size must be positive, got %g", style.Size)
		}
		if style.DPI <= 0 {
			style.DPI = 72
		}
		parsed, err := parseGoRegular()
		if err != nil {
			return nil, fmt.Errorf("parse goregular: %w", err)
		}
		ff, err = opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    style.Size,
			DPI:     style.DPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("goregular face: %w", err)
		}
		style.Face = FaceGoRegular
	case FaceBasic:
		ff = basicfont.Face7x13
		style.Size, style.DPI = 13, 72
	default:
		return nil, stderrors.New("unknown font face " + style.Face)
	}

	m := ff.Metrics()
	return &Face{
		face:       ff,
		style:      style,
		lineHeight: toFloat(m.Height),
		ascent:     toFloat(m.Ascent),
		descent:    toFloat(m.Descent),
	}, nil
}

var (
	defaultFace     *Face
	defaultFaceOnce sync.Once
)

// DefaultFace returns the shared face for DefaultStyle. If the bundled font
// cannot be loaded the failure is reported and the basic face is used.
func DefaultFace() *Face {
	defaultFaceOnce.Do(func() {
		f, err := NewFace(DefaultStyle())
		if err != nil {
			errors.Report(&errors.LayoutError{
				Op:   "text.DefaultFace",
				Kind: errors.KindMeasure,
				Err:  err,
			})
			f, _ = NewFace(Style{Face: FaceBasic})
		}
		defaultFace = f
	})
	return defaultFace
}

// Style returns the resolved style of the face.
func (f *Face) Style() Style { return f.style }

// LineHeight returns the distance between consecutive baselines.
func (f *Face) LineHeight() float64 { return f.lineHeight }

// Ascent returns the distance from the baseline to the top of a line.
func (f *Face) Ascent() float64 { return f.ascent }

// Descent returns the distance from the baseline to the bottom of a line.
func (f *Face) Descent() float64 { return f.descent }

// Measure returns the advance width of s.
func (f *Face) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return toFloat(font.MeasureString(f.face, s))
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
