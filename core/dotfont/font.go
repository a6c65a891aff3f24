package dotfont

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/dottify/core"
)

// Fallback is the character under which a glyph table stores the glyph for
// unmapped characters.
const Fallback rune = '\x00'

// Dot is the marker used when a glyph is printed in its neutral form.
const Dot rune = 'O'

// Glyph is the bitmap of a single character: rows of cells, each of which is
// either a dot or blank. Glyphs are rectangular and immutable.
type Glyph struct {
	dots [][]bool
	w    int
}

func makeGlyph(rows []string) (Glyph, error) {
	if len(rows) == 0 {
		return Glyph{}, fmt.Errorf("glyph has no rows")
	}
	g := Glyph{dots: make([][]bool, len(rows))}
	g.w = utf8.RuneCountInString(rows[0])
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != g.w {
			return Glyph{}, fmt.Errorf("row %d has width %d, expected %d", i, n, g.w)
		}
		line := make([]bool, 0, g.w)
		for _, r := range row {
			line = append(line, r != ' ')
		}
		g.dots[i] = line
	}
	return g, nil
}

// Height is the number of rows of g.
func (g Glyph) Height() int {
	return len(g.dots)
}

// Width is the number of cells per row of g.
func (g Glyph) Width() int {
	return g.w
}

// Dot is true if the cell at (row, col) is set. Positions outside the glyph
// are blank.
func (g Glyph) Dot(row, col int) bool {
	if row < 0 || row >= len(g.dots) || col < 0 || col >= g.w {
		return false
	}
	return g.dots[row][col]
}

// Rows returns a fresh copy of the glyph's rows, dots printed as 'O'.
func (g Glyph) Rows() []string {
	rows := make([]string, len(g.dots))
	var b strings.Builder
	for i, line := range g.dots {
		b.Reset()
		for _, d := range line {
			if d {
				b.WriteRune(Dot)
			} else {
				b.WriteByte(' ')
			}
		}
		rows[i] = b.String()
	}
	return rows
}

// Equal is true if g and other have the same shape and dots.
func (g Glyph) Equal(other Glyph) bool {
	if g.w != other.w || len(g.dots) != len(other.dots) {
		return false
	}
	for i := range g.dots {
		for j := range g.dots[i] {
			if g.dots[i][j] != other.dots[i][j] {
				return false
			}
		}
	}
	return true
}

func (g Glyph) String() string {
	return fmt.Sprintf("glyph(%dx%d)", g.w, len(g.dots))
}

// --- Font ------------------------------------------------------------------

// Font maps characters to glyphs. A font is constructed by LoadSpec (or one
// of its wrappers) and never changes afterwards.
type Font struct {
	glyphs   map[rune]Glyph
	fallback Glyph
	h, w     int
}

// LoadSpec creates a font from a glyph table. Entries are applied in order,
// so a character mentioned by more than one key gets the glyph of the last
// one.
//
// LoadSpec fails with a configuration error (see core.ECONFIG) if a key is
// empty, a glyph is not rectangular, glyphs differ in size, or the table
// lacks the Fallback entry. No font is returned in this case.
func LoadSpec(spec Spec) (*Font, error) {
	f := &Font{glyphs: make(map[rune]Glyph, 2*len(spec))}
	for n, entry := range spec {
		if entry.Key == "" {
			return nil, core.ConfigurationError("font table entry #%d has an empty key", n)
		}
		g, err := makeGlyph(entry.Rows)
		if err != nil {
			return nil, core.WrapError(err, core.ECONFIG, "invalid glyph for key %q", entry.Key)
		}
		if n == 0 {
			f.h, f.w = g.Height(), g.Width()
		} else if g.Height() != f.h || g.Width() != f.w {
			return nil, core.ConfigurationError("glyph for key %q is %dx%d, font glyphs are %dx%d",
				entry.Key, g.Width(), g.Height(), f.w, f.h)
		}
		for _, r := range entry.Key {
			f.glyphs[r] = g
		}
	}
	fb, ok := f.glyphs[Fallback]
	if !ok {
		return nil, core.ConfigurationError(
			"font table has no fallback glyph (key %q, must be double-quoted in the table)", string(Fallback))
	}
	f.fallback = fb
	delete(f.glyphs, Fallback)
	tracer().Debugf("loaded dot font with %d glyphs of size %dx%d", len(f.glyphs), f.w, f.h)
	return f, nil
}

// GlyphFor returns the glyph for character r, or the fallback glyph if the
// font has no entry for r.
func (f *Font) GlyphFor(r rune) Glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.fallback
}

// FallbackGlyph is the glyph used for unmapped characters.
func (f *Font) FallbackGlyph() Glyph {
	return f.fallback
}

// Has is true if r has a glyph of its own.
func (f *Font) Has(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Height is the number of rows of every glyph of f.
func (f *Font) Height() int {
	return f.h
}

// Width is the number of cells per row of every glyph of f.
func (f *Font) Width() int {
	return f.w
}

// Runes lists the mapped characters of f in ascending order. The fallback
// sentinel is not included.
func (f *Font) Runes() []rune {
	runes := make([]rune, 0, len(f.glyphs))
	for r := range f.glyphs {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Default returns a new instance of the built-in 5x7 font.
func Default() *Font {
	f, err := LoadSpec(DefaultSpec())
	if err != nil {
		panic(fmt.Sprintf("built-in dot font is broken: %v", err))
	}
	return f
}
