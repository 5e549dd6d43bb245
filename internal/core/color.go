package core

import (
	"fmt"
	"math/rand/v2"
)

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form, as understood by lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Common colors used for HUD and borders.
var (
	ColorWhite = RGB{R: 255, G: 255, B: 255}
	ColorGray  = RGB{R: 128, G: 128, B: 128}
	ColorRed   = RGB{R: 220, G: 50, B: 47}
	ColorGreen = RGB{R: 133, G: 153, B: 0}
)

// ColorSource hands out display colors for newly created entities.
// Sessions take one as a collaborator so tests can pin colors.
type ColorSource interface {
	Next() RGB
}

// RandomColors picks each channel uniformly from [0, 255).
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors creates a seeded random color source.
func NewRandomColors(seed int64) *RandomColors {
	//#nosec G115 -- seed bits are reinterpreted, not narrowed
	return &RandomColors{rng: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))}
}

// Next returns the next random color.
func (r *RandomColors) Next() RGB {
	return RGB{
		R: uint8(r.rng.IntN(255)), //#nosec G115 -- IntN(255) fits in uint8
		G: uint8(r.rng.IntN(255)), //#nosec G115
		B: uint8(r.rng.IntN(255)), //#nosec G115
	}
}

// Palette cycles through a fixed list of colors.
type Palette struct {
	colors []RGB
	next   int
}

// NewPalette creates a cycling palette. An empty palette always yields white.
func NewPalette(colors ...RGB) *Palette {
	return &Palette{colors: colors}
}

// Next returns the next palette entry.
func (p *Palette) Next() RGB {
	if len(p.colors) == 0 {
		return ColorWhite
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}
