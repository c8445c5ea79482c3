package asciiart

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultGradient runs from the sparsest character (a space) to the densest.
const DefaultGradient = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

/*
Gradient is an ordered sequence of characters, from the one representing the lowest scalar to the one representing the
highest. Characters are addressed by rune position, so multi-byte characters are fine. Treat it as read-only.
*/
type Gradient []rune

// NewGradient validates s and returns its characters. Gradients shorter than 2 runes return ErrGradientTooShort.
func NewGradient(s string) (Gradient, error) {
	g := Gradient(s)
	if len(g) < 2 {
		return nil, ErrGradientTooShort
	}
	return g, nil
}

// MustGradient is like NewGradient but panics on error.
func MustGradient(s string) Gradient {
	g, err := NewGradient(s)
	if err != nil {
		panic(err)
	}
	return g
}

/*
Index returns the position selected by v, computed as round(v * (len - 1)) with ties rounded away from zero.

v is clamped to [0, 1] first. Only the literal hue formula produces values outside that range (negative ones), and
clamping sends them to the first character.
*/
func (g Gradient) Index(v float32) int {
	v = min(max(v, 0), 1)
	return int(math.Round(float64(v * float32(len(g)-1))))
}

// Char returns the character selected by v, see Index.
func (g Gradient) Char(v float32) rune {
	return g[g.Index(v)]
}

func (g Gradient) String() string {
	return string(g)
}

/*
Irregular reports the characters of g that will not occupy exactly one terminal cell on their own: wide characters and
characters that combine with their neighbour. Such gradients still render, but columns stop lining up.
*/
func (g Gradient) Irregular() []rune {
	var odd []rune
	for _, r := range g {
		s := string(r)
		if runewidth.RuneWidth(r) != 1 || uniseg.StringWidth(s) != 1 {
			odd = append(odd, r)
		}
	}
	return odd
}
