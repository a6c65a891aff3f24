package dotfont

import (
	"image"
	"strings"

	"github.com/npillmayer/dottify/core"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes glyphs of a bitmap face into a dot font, one dot per
// pixel. A pixel is a dot if its coverage is at least 50%.
// The face should be monospaced, e.g. basicfont.Face7x13; for proportional
// faces every glyph is set into a cell of the widest advance. Characters the
// face has no glyph for are skipped. The fallback glyph is a framed box.
func FromFace(face font.Face, runes []rune) (*Font, error) {
	if face == nil {
		return nil, core.ConfigurationError("cannot create dot font from nil face")
	}
	m := face.Metrics()
	h := m.Height.Ceil()
	w := 0
	present := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r == Fallback {
			continue
		}
		_, _, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			tracer().Debugf("face has no glyph for %#U", r)
			continue
		}
		if a := adv.Ceil(); a > w {
			w = a
		}
		present = append(present, r)
	}
	if w == 0 || h == 0 {
		return nil, core.ConfigurationError("face yields empty glyphs (%dx%d)", w, h)
	}
	spec := make(Spec, 0, len(present)+1)
	canvas := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Opaque,
		Face: face,
	}
	for _, r := range present {
		for i := range canvas.Pix {
			canvas.Pix[i] = 0
		}
		d.Dot = fixed.P(0, m.Ascent.Ceil())
		d.DrawString(string(r))
		spec = append(spec, Entry{Key: string(r), Rows: alphaRows(canvas)})
	}
	spec = append(spec, Entry{Key: string(Fallback), Rows: boxRows(w, h)})
	return LoadSpec(spec)
}

func alphaRows(img *image.Alpha) []string {
	b := img.Bounds()
	rows := make([]string, 0, b.Dy())
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.AlphaAt(x, y).A >= 0x80 {
				sb.WriteRune(Dot)
			} else {
				sb.WriteByte(' ')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func boxRows(w, h int) []string {
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		if y == 0 || y == h-1 {
			rows[y] = strings.Repeat(string(Dot), w)
		} else if w == 1 {
			rows[y] = string(Dot)
		} else {
			rows[y] = string(Dot) + strings.Repeat(" ", w-2) + string(Dot)
		}
	}
	return rows
}
