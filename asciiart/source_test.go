package asciiart

import (
	"context"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter() *AsciiConverter {
	return New(
		WithGradient(MustGradient("ab")),
		WithBlur(0),
	)
}

func checkerPNG(t *testing.T) []byte {
	return encodePNG(t, newTestImage(2, 2, func(x, y int) color.NRGBA {
		if (x+y)%2 == 0 {
			return white
		}
		return black
	}))
}

func TestConvertSourceLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, os.WriteFile(path, checkerPNG(t), 0o644))

	res, err := newTestConverter().ConvertSource(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ba\nab", res)
}

func TestConvertSourceRemote(t *testing.T) {
	body := checkerPNG(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/checker.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(body)
		case "/garbage":
			w.Write([]byte("<html>not an image</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := newTestConverter()
	a.HTTPClient = srv.Client()

	res, err := a.ConvertSource(context.Background(), srv.URL+"/checker.png")
	require.NoError(t, err)
	assert.Equal(t, "ba\nab", res)

	_, err = a.ConvertSource(context.Background(), srv.URL+"/missing.png")
	assert.ErrorIs(t, err, ErrAcquire)
	assert.Contains(t, err.Error(), "failed downloading file from")

	_, err = a.ConvertSource(context.Background(), srv.URL+"/garbage")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestConvertSourceUnreachable(t *testing.T) {
	_, err := newTestConverter().ConvertSource(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, ErrAcquire)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err = newTestConverter().ConvertSource(ctx, srv.URL)
	assert.ErrorIs(t, err, ErrAcquire)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertSourceValidatesFirst(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	a := newTestConverter()
	a.Gradient = Gradient("a")

	_, err := a.ConvertSource(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrGradientTooShort)
	assert.False(t, requested)
}
