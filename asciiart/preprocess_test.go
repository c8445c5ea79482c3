package asciiart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h         int
		scale        float64
		wantW, wantH int
	}{
		{w: 10, h: 7, scale: 0.5, wantW: 5, wantH: 3},
		{w: 100, h: 50, scale: 1.25, wantW: 125, wantH: 62},
		{w: 3, h: 3, scale: 0.1, wantW: 0, wantH: 0},
		{w: 640, h: 480, scale: 1, wantW: 640, wantH: 480},
	}

	for _, test := range tests {
		w, h := ScaledSize(test.w, test.h, test.scale)
		assert.Equal(t, test.wantW, w, "%dx%d * %v", test.w, test.h, test.scale)
		assert.Equal(t, test.wantH, h, "%dx%d * %v", test.w, test.h, test.scale)
	}
}

func assertColorNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()

	assert.InDelta(t, want.R, got.R, 1, "red")
	assert.InDelta(t, want.G, got.G, 1, "green")
	assert.InDelta(t, want.B, got.B, 1, "blue")
	assert.InDelta(t, want.A, got.A, 1, "alpha")
}

func TestPreprocessResize(t *testing.T) {
	teal := color.NRGBA{R: 0, G: 128, B: 128, A: 255}

	for _, r := range []Resampling{Lanczos, CatmullRom, Cubic, Linear, Box, NearestNeighbor} {
		t.Run(r.String(), func(t *testing.T) {
			a := New(WithScale(0.5), WithBlur(0), WithResampling(r))

			dst := a.Preprocess(uniform(8, 6, teal))

			require.Equal(t, 4, dst.Rect.Dx())
			require.Equal(t, 3, dst.Rect.Dy())
			assert.Equal(t, 0, dst.Rect.Min.X)
			assert.Equal(t, 0, dst.Rect.Min.Y)
			assertColorNear(t, teal, dst.NRGBAAt(1, 1))
		})
	}
}

func TestPreprocessEmpty(t *testing.T) {
	dst := New(WithScale(0.1)).Preprocess(uniform(4, 12, white))

	assert.Equal(t, 0, dst.Rect.Dx())
	assert.Equal(t, 1, dst.Rect.Dy())
	assert.Equal(t, "", Render(dst, Intensity, MustGradient("ab")))
}

func TestPreprocessInvert(t *testing.T) {
	a := New(WithBlur(0), WithInvert(true))

	dst := a.Preprocess(uniform(1, 1, color.NRGBA{R: 0, G: 255, B: 10, A: 200}))

	assertColorNear(t, color.NRGBA{R: 255, G: 0, B: 245, A: 200}, dst.NRGBAAt(0, 0))
}

func TestPreprocessBlur(t *testing.T) {
	gray := color.NRGBA{R: 90, G: 90, B: 90, A: 255}

	// a uniform image is unchanged by blurring
	dst := New(WithBlur(2)).Preprocess(uniform(5, 5, gray))
	assertColorNear(t, gray, dst.NRGBAAt(2, 2))

	// an edge is softened
	edge := newTestImage(6, 1, func(x, _ int) color.NRGBA {
		if x < 3 {
			return black
		}
		return white
	})
	dst = New(WithBlur(1)).Preprocess(edge)
	assert.Greater(t, dst.NRGBAAt(2, 0).R, uint8(0))
	assert.Less(t, dst.NRGBAAt(3, 0).R, uint8(255))
}

func TestResamplingText(t *testing.T) {
	for _, r := range []Resampling{Lanczos, CatmullRom, Cubic, Linear, Box, NearestNeighbor} {
		text, err := r.MarshalText()
		require.NoError(t, err)

		var parsed Resampling
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, r, parsed)
	}

	var r Resampling
	assert.Error(t, r.UnmarshalText([]byte("bicubic-ish")))
}
