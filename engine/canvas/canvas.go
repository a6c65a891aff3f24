/*
Package canvas renders text with a dot font.

Every text line is set into a band of canvas rows, glyph by glyph, and the
finished canvas is either returned as is, with dots drawn by a marker
character, or handed to the Braille encoder (small-dots output).

Layout follows a few fixed rules:

  - glyphs are separated by CharSpacing blank cells, times the scale
  - a glyph's cells are repeated scale times, horizontally and vertically
  - text lines start Height+LineSpacing rows apart, independent of the scale

The last rule means that for scale > 1 the bands of consecutive text lines
overlap. Rows are then continued to the right rather than overwritten.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canvas

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/dottify/core/dotfont"
	"github.com/npillmayer/dottify/engine/braille"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'dottify.canvas'.
func tracer() tracing.Trace {
	return tracing.Select("dottify.canvas")
}

// Layout constants, in cells.
const (
	CharSpacing = 2 // blank cells between glyphs, multiplied by the scale
	LineSpacing = 2 // rows between text lines, not scaled
)

// DotGrid is a finished canvas. Rows may be of different length; the widest
// text line is MaxLineLength cells wide. Dots are drawn as On, everything
// else is blank.
type DotGrid struct {
	Rows          []string
	MaxLineLength int
	On            rune
}

// Render sets text with font f and returns the output lines.
// For small-dots mode the dot grid is transcoded to Braille characters,
// otherwise the rows of the dot grid are returned.
//
// Render fails with a validation error (see core.EINVALID) if scale is not
// positive or f is nil. No work is done in this case.
func Render(text string, f *dotfont.Font, scale int, mode Mode) ([]string, error) {
	grid, err := RenderGrid(text, f, scale, mode)
	if err != nil {
		return nil, err
	}
	if mode.Kind() == SmallDots {
		return braille.Encode(grid.Rows, grid.MaxLineLength, grid.On), nil
	}
	return grid.Rows, nil
}

// RenderGrid sets text with font f into a dot grid, without any Braille
// transcoding. Text is split into lines at '\n' (a preceding '\r' is
// dropped). Within a line, every user-perceived character is looked up in the
// font by its first code-point.
func RenderGrid(text string, f *dotfont.Font, scale int, mode Mode) (DotGrid, error) {
	if f == nil {
		return DotGrid{}, core.ValidationError("no font given for rendering")
	}
	if scale <= 0 {
		return DotGrid{}, core.ValidationError("the scale must be greater than zero, %d is not", scale)
	}
	on := mode.Marker()
	h := f.Height()
	gap := strings.Repeat(" ", CharSpacing*scale)
	var rows []*strings.Builder
	yOffset, maxLineLength := 0, 0
	for _, line := range splitLines(text) {
		for len(rows) < yOffset+h*scale {
			rows = append(rows, &strings.Builder{})
		}
		length := 0
		for i, r := range characters(line) {
			g := f.GlyphFor(r)
			if i > 0 {
				length += len(gap)
			}
			length += g.Width() * scale
			for y := 0; y < h; y++ {
				for step := 0; step < scale; step++ {
					row := rows[yOffset+y*scale+step]
					if i > 0 {
						row.WriteString(gap)
					}
					for x := 0; x < g.Width(); x++ {
						cell := ' '
						if g.Dot(y, x) {
							cell = on
						}
						for k := 0; k < scale; k++ {
							row.WriteRune(cell)
						}
					}
				}
			}
		}
		if length > maxLineLength {
			maxLineLength = length
		}
		yOffset += h + LineSpacing
	}
	grid := DotGrid{
		Rows:          make([]string, len(rows)),
		MaxLineLength: maxLineLength,
		On:            on,
	}
	for i, row := range rows {
		grid.Rows[i] = row.String()
	}
	tracer().Debugf("rendered %d canvas rows, max. line length %d, mode %s", len(rows), maxLineLength, mode)
	return grid, nil
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

var graphemeSetup sync.Once

// characters splits a line into user-perceived characters and returns the
// leading code-point of each. Invalid UTF-8 is replaced by U+FFFD, one
// character per bad byte sequence.
func characters(line string) []rune {
	if line == "" {
		return nil
	}
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	line = norm.NFC.String(strings.ToValidUTF8(line, string(utf8.RuneError)))
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(strings.NewReader(line))
	chars := make([]rune, 0, len(line))
	for splitter.Next() {
		r, _ := utf8.DecodeRune(splitter.Bytes())
		chars = append(chars, r)
	}
	return chars
}
