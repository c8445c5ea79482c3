package asciiart

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/gift"
	"golang.org/x/image/draw"
)

// Resampling names the filter used when scaling the image before conversion.
type Resampling int

const (
	Lanczos Resampling = iota
	CatmullRom
	Cubic
	Linear
	Box
	NearestNeighbor
)

var resamplingNames = [...]string{
	Lanczos:         "lanczos",
	CatmullRom:      "catmull-rom",
	Cubic:           "cubic",
	Linear:          "linear",
	Box:             "box",
	NearestNeighbor: "nearest",
}

func (r Resampling) String() string {
	if r < 0 || int(r) >= len(resamplingNames) {
		return fmt.Sprintf("Resampling(%d)", int(r))
	}
	return resamplingNames[r]
}

func (r Resampling) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(resamplingNames) {
		return nil, fmt.Errorf("unknown resampling %d", int(r))
	}
	return []byte(resamplingNames[r]), nil
}

func (r *Resampling) UnmarshalText(text []byte) error {
	for i, name := range resamplingNames {
		if name == string(text) {
			*r = Resampling(i)
			return nil
		}
	}
	return fmt.Errorf("invalid resampling %q", string(text))
}

func (r Resampling) giftResampling() gift.Resampling {
	switch r {
	case Cubic:
		return gift.CubicResampling
	case Linear:
		return gift.LinearResampling
	case Box:
		return gift.BoxResampling
	case NearestNeighbor:
		return gift.NearestNeighborResampling
	default:
		return gift.LanczosResampling
	}
}

// ScaledSize returns the dimensions of a w x h image multiplied by scale, floored.
func ScaledSize(w, h int, scale float64) (int, int) {
	return int(math.Floor(float64(w) * scale)), int(math.Floor(float64(h) * scale))
}

/*
Preprocess scales src by ScaleFactor, then optionally inverts its colors and finally applies a Gaussian blur of
BlurSigma. The result is always a zero-origin *image.NRGBA, with straight alpha, ready for Render.

A scaled dimension that floors to 0 yields an empty image of that size rather than an error.
*/
func (a *AsciiConverter) Preprocess(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := ScaledSize(bounds.Dx(), bounds.Dy(), a.ScaleFactor)

	if w <= 0 || h <= 0 {
		a.Logger.Debug("scaled image is empty", "width", w, "height", h)
		return image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}

	var filters []gift.Filter

	if a.Resampling == CatmullRom {
		// gift has no Catmull-Rom kernel, so scale up front with x/image.
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(scaled, scaled.Rect, src, bounds, draw.Src, nil)
		src = scaled
	} else if w != bounds.Dx() || h != bounds.Dy() {
		filters = append(filters, gift.Resize(w, h, a.Resampling.giftResampling()))
	}

	if a.Invert {
		filters = append(filters, gift.Invert())
	}

	if a.BlurSigma > 0 {
		filters = append(filters, gift.GaussianBlur(a.BlurSigma))
	}

	g := gift.New(filters...)
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	a.Logger.Debug("preprocessed image",
		"width", dst.Rect.Dx(),
		"height", dst.Rect.Dy(),
		"resampling", a.Resampling.String(),
		"invert", a.Invert,
		"blur", a.BlurSigma,
	)

	return dst
}
