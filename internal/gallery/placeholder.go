package gallery

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	// Decoders register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// PlaceholderWidth is the width of the generated thumbnails. The browser stretches them
// to the full image size, which is what makes them look blurred.
const PlaceholderWidth = 10

// cream is the site background colour, used when an image cannot be decoded (or is SVG).
var cream = color.NRGBA{R: 0xF5, G: 0xE4, B: 0xB9, A: 0xFF}

// Placeholder decodes an image and returns a tiny PNG of it as a data URL.
func Placeholder(r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return "", fmt.Errorf("decode image: empty bounds %v", b)
	}
	h := b.Dy() * PlaceholderWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, PlaceholderWidth, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return encodeDataURL(dst)
}

// SolidPlaceholder is a 1x1 cream PNG.
func SolidPlaceholder() string {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, cream)
	url, err := encodeDataURL(img)
	if err != nil {
		// png.Encode cannot fail on an in-memory 1x1 image.
		panic(err)
	}
	return url
}

func encodeDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode placeholder: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
