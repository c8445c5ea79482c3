package asciiart

import (
	"fmt"
	"image/color"
	"math"
)

// ColorMode selects which scalar channel of a pixel drives the character choice.
type ColorMode int

const (
	Red ColorMode = iota
	Green
	Blue
	Alpha
	Intensity
	Value
	Saturation
	Hue
	Luminance
)

var colorModeNames = [...]string{
	Red:        "r",
	Green:      "g",
	Blue:       "b",
	Alpha:      "a",
	Intensity:  "intensity",
	Value:      "value",
	Saturation: "saturation",
	Hue:        "hue",
	Luminance:  "luminance",
}

// ColorModes lists every mode in declaration order.
func ColorModes() []ColorMode {
	return []ColorMode{Red, Green, Blue, Alpha, Intensity, Value, Saturation, Hue, Luminance}
}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return colorModeNames[m]
}

func (m ColorMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(colorModeNames) {
		return nil, fmt.Errorf("unknown color mode %d", int(m))
	}
	return []byte(colorModeNames[m]), nil
}

func (m *ColorMode) UnmarshalText(text []byte) error {
	mode, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseColorMode returns the mode with the given name (r, g, b, a, intensity, value, saturation, hue, luminance).
func ParseColorMode(s string) (ColorMode, error) {
	for i, name := range colorModeNames {
		if name == s {
			return ColorMode(i), nil
		}
	}
	return 0, fmt.Errorf("invalid color mode %q", s)
}

/*
NormalizedPixel holds the straight (non-premultiplied) RGBA channels of a pixel, each rescaled from 0-255 to 0-1.
*/
type NormalizedPixel struct {
	R, G, B, A float32
}

// Normalize rescales 8-bit channels into a NormalizedPixel.
func Normalize(c color.NRGBA) NormalizedPixel {
	const max8 = float32(math.MaxUint8)

	return NormalizedPixel{
		R: float32(c.R) / max8,
		G: float32(c.G) / max8,
		B: float32(c.B) / max8,
		A: float32(c.A) / max8,
	}
}

func (p NormalizedPixel) max() float32 {
	return max(p.R, p.G, p.B)
}

func (p NormalizedPixel) min() float32 {
	return min(p.R, p.G, p.B)
}

// Intensity is the mean of the color channels.
func (p NormalizedPixel) Intensity() float32 {
	return (p.R + p.G + p.B) / 3
}

// Value is the largest color channel.
func (p NormalizedPixel) Value() float32 {
	return p.max()
}

// Saturation is (max - min) / max over the color channels, and 0 for black.
func (p NormalizedPixel) Saturation() float32 {
	hi := p.max()
	if hi == 0 {
		return 0
	}

	return (hi - p.min()) / hi
}

/*
Hue returns the hue angle divided by 360.

When red is the largest channel the modulo is taken on the chroma rather than on the whole ratio, so this branch yields
values in [-1/6, 1/6] instead of wrapping around the hue circle. Negative results land on the first gradient character.
Use HueWrapped for the conventional hue wheel.
*/
func (p NormalizedPixel) Hue() float32 {
	hi, lo := p.max(), p.min()
	chroma := hi - lo

	var hue float32
	switch {
	case chroma == 0:
		hue = 0
	case hi == p.R:
		hue = 60 * ((p.G - p.B) / remEuclid(chroma, 6))
	case hi == p.G:
		hue = 60 * ((p.B-p.R)/chroma + 2)
	default:
		hue = 60 * ((p.R-p.G)/chroma + 4)
	}

	return hue / 360
}

// HueWrapped returns the standard HSV hue in [0, 1).
func (p NormalizedPixel) HueWrapped() float32 {
	hi, lo := p.max(), p.min()
	chroma := hi - lo

	var sector float32
	switch {
	case chroma == 0:
		return 0
	case hi == p.R:
		sector = remEuclid((p.G-p.B)/chroma, 6)
	case hi == p.G:
		sector = (p.B-p.R)/chroma + 2
	default:
		sector = (p.R-p.G)/chroma + 4
	}

	hue := 60 * sector / 360
	if hue >= 1 {
		hue = 0
	}
	return hue
}

// Luminance is the midpoint of the largest and smallest color channels.
func (p NormalizedPixel) Luminance() float32 {
	return (p.max() + p.min()) / 2
}

/*
Scalar returns the unweighted channel selected by mode. Alpha weighting is applied by the renderer, see Weighted.
*/
func (p NormalizedPixel) Scalar(mode ColorMode) float32 {
	switch mode {
	case Red:
		return p.R
	case Green:
		return p.G
	case Blue:
		return p.B
	case Alpha:
		return p.A
	case Intensity:
		return p.Intensity()
	case Value:
		return p.Value()
	case Saturation:
		return p.Saturation()
	case Hue:
		return p.Hue()
	case Luminance:
		return p.Luminance()
	default:
		panic(fmt.Sprintf("unknown color mode: %d", int(mode)))
	}
}

/*
Weighted returns Scalar(mode) multiplied by the alpha channel, so transparent regions fall toward the start of the
gradient. Alpha mode is returned as is, alpha is never applied twice.
*/
func (p NormalizedPixel) Weighted(mode ColorMode) float32 {
	if mode == Alpha {
		return p.A
	}
	return p.Scalar(mode) * p.A
}

func remEuclid(x, y float32) float32 {
	r := float32(math.Mod(float64(x), float64(y)))
	if r < 0 {
		r += float32(math.Abs(float64(y)))
	}
	return r
}
