package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxSide = 1600
	DefaultQuality = 80
)

var ErrEmptyImage = errors.New("empty_image")

// WebPEncoder decodes png, jpeg or webp uploads, shrinks them to fit
// MaxSide and re-encodes them as lossy WebP.
type WebPEncoder struct {
	MaxSide int
	Quality float32
}

func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{MaxSide: DefaultMaxSide, Quality: DefaultQuality}
}

func (e *WebPEncoder) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img := Fit(src, e.MaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: e.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *WebPEncoder) ContentType() string { return "image/webp" }

func (e *WebPEncoder) Extension() string { return ".webp" }

// Fit scales src down so its longest side is at most maxSide, keeping the
// aspect ratio. Smaller images are returned untouched.
func Fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	nw, nh := maxSide, maxSide
	if w >= h {
		nh = max(1, h*maxSide/w)
	} else {
		nw = max(1, w*maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
