package canvas

import (
	"github.com/npillmayer/dottify/core/dotfont"
)

// Params collects what a host has to supply for a rendering besides the
// text itself.
type Params struct {
	Font  *dotfont.Font // font to set text with
	Scale int           // multiplier for every cell, must be positive
	Mode  Mode          // output mode
}

// DefaultParams returns parameters for the built-in font, scale 1 and
// small-dots output.
func DefaultParams() Params {
	return Params{
		Font:  dotfont.Default(),
		Scale: 1,
		Mode:  SmallDotsMode(),
	}
}

// Render renders text with the parameters of p. See the package function
// Render for details and errors.
func (p Params) Render(text string) ([]string, error) {
	return Render(text, p.Font, p.Scale, p.Mode)
}
