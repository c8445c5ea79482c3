package asciiart

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
Acquire returns the raw bytes of src. If src can be stat'ed on the filesystem it is read from there, otherwise
src is fetched over HTTP with the converter's client. Failures wrap ErrAcquire.

As with any fetch, a non-2xx response is treated as a failed download.
*/
func (a *AsciiConverter) Acquire(ctx context.Context, src string) ([]byte, error) {
	if _, err := os.Stat(src); err == nil {
		a.Logger.Debug("reading local image", "path", src)

		b, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: couldn't open file at '%s': %w", ErrAcquire, src, err)
		}
		return b, nil
	}

	a.Logger.Debug("fetching remote image", "url", src)

	b, err := a.fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: failed downloading file from '%s': %w", ErrAcquire, src, err)
	}
	return b, nil
}

func (a *AsciiConverter) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return io.ReadAll(res.Body)
}

/*
Decode decodes an image in any registered format. This package registers png, jpeg, gif, bmp, tiff and webp; import
additional decoders for other formats. Failures wrap ErrDecode.
*/
func (a *AsciiConverter) Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	a.Logger.Debug("decoded image",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
	)

	return img, nil
}

// Load acquires and decodes src. See Acquire and Decode.
func (a *AsciiConverter) Load(ctx context.Context, src string) (image.Image, error) {
	b, err := a.Acquire(ctx, src)
	if err != nil {
		return nil, err
	}

	return a.Decode(bytes.NewReader(b))
}
