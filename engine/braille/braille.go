/*
Package braille transcodes grids of dots into Unicode Braille patterns.

Every Braille character (U+2800–U+28FF) shows a cell of 2×4 dots. The
encoder maps blocks of a dot grid onto such cells, which packs eight dots
into a single character on the terminal.

Bits are assigned in the standard 8-dot numbering:

	0x01 0x08
	0x02 0x10
	0x04 0x20
	0x40 0x80

A cell without any dots is emitted as U+2880 rather than the empty pattern
U+2800. Many fonts draw the empty pattern narrower than populated cells,
which breaks alignment of the output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package braille

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dottify.braille'.
func tracer() tracing.Trace {
	return tracing.Select("dottify.braille")
}

// Dimensions of a Braille cell, in dots.
const (
	CellWidth  = 2
	CellHeight = 4
)

// Base is the code-point of the empty Braille pattern.
const Base rune = 0x2800

// blankBits replaces an all-blank cell.
const blankBits = 0x80

// Blank is the character emitted for a cell without any dots.
const Blank rune = Base | blankBits

// bits holds the bit of each dot position, indexed [row][column].
var bits = [CellHeight][CellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Cell encodes a single block of dots, indexed [row][column].
func Cell(block [CellHeight][CellWidth]bool) rune {
	var b rune
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			if block[y][x] {
				b |= bits[y][x]
			}
		}
	}
	return glyph(b)
}

func glyph(b rune) rune {
	if b == 0 {
		b = blankBits
	}
	return Base | b
}

// Encode transcodes the rows of a dot grid into rows of Braille characters.
// A source cell counts as a dot if it equals on; rows may be of different
// length, missing cells are blank.
//
// The result has maxLineLength/2 columns and len(rows)/4 lines. Both are
// integer divisions, so trailing source rows or a trailing odd column which
// do not fill a complete cell are dropped.
func Encode(rows []string, maxLineLength int, on rune) []string {
	w := maxLineLength / CellWidth
	h := len(rows) / CellHeight
	if w < 0 {
		w = 0
	}
	if dropped := len(rows) % CellHeight; dropped > 0 {
		tracer().Debugf("braille: %d trailing dot rows do not fill a cell and are dropped", dropped)
	}
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
	}
	for j := 0; j < h*CellHeight; j++ {
		i := 0
		for _, r := range rows[j] {
			if r == on {
				x, y := i/CellWidth, j/CellHeight
				if x < w {
					cells[y][x] |= bits[j%CellHeight][i%CellWidth]
				}
			}
			i++
		}
	}
	out := make([]string, h)
	var sb strings.Builder
	for y, line := range cells {
		sb.Reset()
		for _, b := range line {
			sb.WriteRune(glyph(b))
		}
		out[y] = sb.String()
	}
	return out
}
