/*
Package dotfont holds bitmap fonts made of dots.

A dot font maps characters to glyphs. Every glyph is a small rectangle of
cells, each cell either a dot or blank, and all glyphs of a font share the
same height and width. A font is loaded once from a glyph table and is
immutable afterwards, so it may be shared between renderers without locking.

Glyph tables are written as a mapping from keys to rows of text:

	{
	    "aA": [ "  O  ", " O O ", "O   O", "O   O", "OOOOO", "O   O", "O   O" ],
	    ...
	    "\u0000": [ ... ]
	}

Every character of a key is mapped to the same glyph, which lets a table
declare upper- and lowercase variants in one go. Any non-space character in
a row marks a dot. The key consisting of the single character U+0000 holds
the fallback glyph, used for every character without an entry of its own.
It is mandatory. The key has to be written double-quoted ("\u0000" or, in
YAML, "\0"): single-quoted YAML strings do not process escapes, so
'\u0000' denotes a six-character key.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dotfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dottify.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("dottify.fonts")
}
