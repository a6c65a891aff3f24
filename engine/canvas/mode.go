package canvas

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/dottify/core/dotfont"
)

// Kind selects the form of output of a rendering.
type Kind int

// Kinds of output.
const (
	SmallDots Kind = iota // dot grid transcoded to Braille characters
	SolidDots             // dots drawn as bullets
	Literal               // dots drawn as a caller-supplied character
)

// Keywords for the non-literal output kinds, as accepted by ParseMode.
const (
	SmallDotsKeyword = "small-dots"
	SolidDotsKeyword = "solid-dots"
)

// SolidMarker is the on-marker of solid-dots output (U+2022 BULLET).
const SolidMarker rune = '•'

// Mode is an output mode. The zero value selects small-dots output.
type Mode struct {
	kind   Kind
	marker rune
}

// SmallDotsMode selects Braille output.
func SmallDotsMode() Mode {
	return Mode{kind: SmallDots}
}

// SolidDotsMode selects output with bullets as dots.
func SolidDotsMode() Mode {
	return Mode{kind: SolidDots}
}

// LiteralMode selects output with dots drawn as character r.
func LiteralMode(r rune) Mode {
	return Mode{kind: Literal, marker: r}
}

// ParseMode interprets a mode selector, which is either one of the keywords
// "small-dots" or "solid-dots", or a single character to draw dots with.
// Keywords are case-insensitive and may be prefixed by a colon.
// Anything else is rejected with a validation error (see core.EINVALID).
func ParseMode(s string) (Mode, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ":") {
	case SmallDotsKeyword:
		return SmallDotsMode(), nil
	case SolidDotsKeyword:
		return SolidDotsMode(), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError || size > 1 {
			return LiteralMode(r), nil
		}
	}
	return Mode{}, core.ValidationError("unsupported format %q: use %s, %s or a single character",
		s, SmallDotsKeyword, SolidDotsKeyword)
}

// Kind returns the output kind of m.
func (m Mode) Kind() Kind {
	return m.kind
}

// Marker returns the character dots are drawn with on the canvas.
// For small-dots output this is the neutral dot, which the Braille encoder
// looks for.
func (m Mode) Marker() rune {
	switch m.kind {
	case SolidDots:
		return SolidMarker
	case Literal:
		return m.marker
	}
	return dotfont.Dot
}

func (m Mode) String() string {
	switch m.kind {
	case SmallDots:
		return SmallDotsKeyword
	case SolidDots:
		return SolidDotsKeyword
	}
	return string(m.marker)
}
