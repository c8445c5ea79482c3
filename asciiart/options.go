package asciiart

import (
	"log/slog"
	"net/http"
)

// WithMode specifies the color mode each pixel is reduced to. The default is Intensity.
func WithMode(mode ColorMode) AsciiOption {
	return func(a *AsciiConverter) {
		a.Mode = mode
	}
}

/*
WithGradient specifies the character ramp, lowest scalar first. Build it with NewGradient() so short gradients are
rejected up front, otherwise Validate() will report them before any conversion happens.
*/
func WithGradient(g Gradient) AsciiOption {
	return func(a *AsciiConverter) {
		a.Gradient = g
	}
}

/*
WithStandardHue makes Hue mode use the conventional hue wheel (see NormalizedPixel.HueWrapped) instead of the literal
formula, which never wraps and sends greenish-magenta reds to the first character.
*/
func WithStandardHue(standard bool) AsciiOption {
	return func(a *AsciiConverter) {
		a.StandardHue = standard
	}
}

// WithBlur specifies the Gaussian blur sigma. Use 0 to disable blurring.
func WithBlur(sigma float32) AsciiOption {
	return func(a *AsciiConverter) {
		a.BlurSigma = sigma
	}
}

// WithInvert enables/disables color inversion.
func WithInvert(invert bool) AsciiOption {
	return func(a *AsciiConverter) {
		a.Invert = invert
	}
}

/*
WithScale specifies the size multiplier applied to both image dimensions. Each pixel of the scaled image becomes one
character, so terminals with 1:2 cells usually want the width stretched separately beforehand.
*/
func WithScale(scale float64) AsciiOption {
	return func(a *AsciiConverter) {
		a.ScaleFactor = scale
	}
}

// WithResampling specifies the filter used for scaling.
func WithResampling(r Resampling) AsciiOption {
	return func(a *AsciiConverter) {
		a.Resampling = r
	}
}

// WithHTTPClient specifies the client used to fetch remote images.
func WithHTTPClient(c *http.Client) AsciiOption {
	return func(a *AsciiConverter) {
		if c != nil {
			a.HTTPClient = c
		}
	}
}

// WithLogger specifies where pipeline debug logs go. A nil logger discards them.
func WithLogger(l *slog.Logger) AsciiOption {
	return func(a *AsciiConverter) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		a.Logger = l
	}
}
