package text

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Line is one laid out line of text.
type Line struct {
	Text  string
	Width float64
}

// Layout is the result of breaking text into lines.
type Layout struct {
	Lines      []Line
	LineHeight float64
	Size       graphics.Size
}

// LayoutText breaks s into lines no wider than maxWidth, wrapping at spaces
// where possible. A maxWidth of zero, negative or infinity disables
// wrapping; explicit newlines always break.
func LayoutText(s string, face *Face, maxWidth float64) Layout {
	lines := layoutLines(s, maxWidth, face.Measure)
	width := 0.0
	for _, line := range lines {
		width = math.Max(width, line.Width)
	}
	lh := face.LineHeight()
	return Layout{
		Lines:      lines,
		LineHeight: lh,
		Size:       graphics.Size{Width: math.Ceil(width), Height: math.Ceil(lh * float64(len(lines)))},
	}
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []Line {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]Line, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, Line{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, Line{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, Line{Text: line, Width: measure(line)})
		}
	}
	return lines
}

func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			// A single rune wider than the line still takes a line.
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && !atSpace(text, lastFit) && lastBreak > start {
			cut = lastBreak
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func atSpace(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}
