package asciiart

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBlurSigma   = 0.2
	defaultScaleFactor = 1.0
)

type AsciiConverter struct {
	// Mode selects the scalar channel each pixel is reduced to. See ColorMode.
	Mode ColorMode

	// Gradient is the character ramp, lowest scalar first. It must hold at least 2 characters, use NewGradient to build one.
	Gradient Gradient

	// StandardHue switches Hue mode from the literal hue formula (see NormalizedPixel.Hue) to the wrapped hue wheel.
	StandardHue bool

	// BlurSigma is the sigma of the Gaussian blur applied after scaling. Values <= 0 disable the blur.
	BlurSigma float32

	// Invert negates the color channels before the blur. Alpha is left untouched.
	Invert bool

	// ScaleFactor multiplies both image dimensions (floored) before conversion.
	ScaleFactor float64

	// Resampling is the filter used to scale the image.
	Resampling Resampling

	// HTTPClient fetches sources that are not local files.
	HTTPClient *http.Client

	// Logger receives debug output about each pipeline stage. Never nil, defaults to discarding everything.
	Logger *slog.Logger
}

type AsciiOption func(*AsciiConverter)

/*
NewDefault initializes an AsciiConverter with default parameters.

- Mode: Intensity
- Gradient: DefaultGradient
- StandardHue: false
- BlurSigma: 0.2
- Invert: false
- ScaleFactor: 1
- Resampling: Lanczos
- HTTPClient: http.DefaultClient
- Logger: discards
*/
func NewDefault() *AsciiConverter {
	return &AsciiConverter{
		Mode:        Intensity,
		Gradient:    MustGradient(DefaultGradient),
		BlurSigma:   defaultBlurSigma,
		ScaleFactor: defaultScaleFactor,
		Resampling:  Lanczos,
		HTTPClient:  http.DefaultClient,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// New initializes an AsciiConverter with default parameters, then applies options
func New(opts ...AsciiOption) *AsciiConverter {
	ascii := NewDefault()

	for _, o := range opts {
		o(ascii)
	}

	return ascii
}

// Validate reports configuration errors: a gradient shorter than 2 characters or a non-positive scale factor.
func (a *AsciiConverter) Validate() error {
	if len(a.Gradient) < 2 {
		return ErrGradientTooShort
	}

	if !(a.ScaleFactor > 0) || a.ScaleFactor > maxScaleFactor {
		return ErrInvalidScale
	}

	return nil
}

const maxScaleFactor = 1 << 16

/*
Render converts img to text, one row per pixel row and one character per pixel column, rows separated by a single
newline with no trailing newline.

Every pixel is reduced to mode's scalar, weighted by its alpha (except in Alpha mode) and mapped through g. Render
assumes g holds at least 2 characters.
*/
func Render(img image.Image, mode ColorMode, g Gradient) string {
	return render(img, mode, g, NormalizedPixel.Weighted)
}

// RenderWith is like Render, but standardHue selects the wrapped hue wheel for Hue mode.
func RenderWith(img image.Image, mode ColorMode, g Gradient, standardHue bool) string {
	if mode == Hue && standardHue {
		return render(img, mode, g, func(p NormalizedPixel, _ ColorMode) float32 {
			return p.HueWrapped() * p.A
		})
	}
	return Render(img, mode, g)
}

func render(img image.Image, mode ColorMode, g Gradient, scalar func(NormalizedPixel, ColorMode) float32) string {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rows := make([]strings.Builder, height)
	for y := range rows {
		// Assume single byte characters, the builder grows if needed
		rows[y].Grow(width)
	}

	at := nrgbaAccessor(img)

	// Rows are independent, so the column-major walk appends each row left to right
	for x := range width {
		for y := range height {
			px := Normalize(at(bounds.Min.X+x, bounds.Min.Y+y))
			rows[y].WriteRune(g.Char(scalar(px, mode)))
		}
	}

	var ascii strings.Builder
	ascii.Grow(height * (width + 1))

	for y := range rows {
		if y > 0 {
			ascii.WriteByte('\n')
		}
		ascii.WriteString(rows[y].String())
	}

	return ascii.String()
}

// nrgbaAccessor returns a lookup of straight-alpha 8-bit pixels, skipping the color model for *image.NRGBA.
func nrgbaAccessor(img image.Image) func(x, y int) color.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt
	}

	return func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}
}

/*
Convert preprocesses img (scale, invert, blur) and renders it with the converter's mode and gradient. If you are not
interested in the pre-processing, see Render().
*/
func (a *AsciiConverter) Convert(img image.Image) string {
	prepped := a.Preprocess(img)

	start := time.Now()
	ascii := RenderWith(prepped, a.Mode, a.Gradient, a.StandardHue)

	a.Logger.Debug("rendered image",
		"mode", a.Mode.String(),
		"rows", prepped.Rect.Dy(),
		"columns", prepped.Rect.Dx(),
		"elapsed", time.Since(start),
	)

	return ascii
}

/*
ConvertReader takes an io.Reader that can read the bytes of an image. Image formats supported are png, jpeg, gif, bmp,
tiff and webp. To support other formats, import their decoder package for its side effects:

	import (
		_ "mycustomdecoder/mycustomformat"
	)

ConvertReader uses image.Decode() under the hood, so it is important to register file formats so the image module knows
how to decode the bytes.
*/
func (a *AsciiConverter) ConvertReader(r io.Reader) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	img, err := a.Decode(r)
	if err != nil {
		return "", err
	}

	return a.Convert(img), nil
}

// ConvertBytes takes a byte slice representing an image. See ConvertReader() for the supported formats.
func (a *AsciiConverter) ConvertBytes(b []byte) (string, error) {
	return a.ConvertReader(bytes.NewReader(b))
}

/*
ConvertSource converts the image at src, either a path on the filesystem or a URL. Configuration is validated before
anything is read, and nothing is rendered unless the image was acquired and decoded in full.
*/
func (a *AsciiConverter) ConvertSource(ctx context.Context, src string) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	img, err := a.Load(ctx, src)
	if err != nil {
		return "", err
	}

	return a.Convert(img), nil
}
