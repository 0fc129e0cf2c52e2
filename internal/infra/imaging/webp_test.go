package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFit(t *testing.T) {
	cases := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{name: "landscape", w: 3200, h: 1600, max: 1600, wantW: 1600, wantH: 800},
		{name: "portrait", w: 1000, h: 4000, max: 1600, wantW: 400, wantH: 1600},
		{name: "already small", w: 800, h: 600, max: 1600, wantW: 800, wantH: 600},
		{name: "no limit", w: 5000, h: 10, max: 0, wantW: 5000, wantH: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Fit(image.NewRGBA(image.Rect(0, 0, tc.w, tc.h)), tc.max).Bounds()
			if got.Dx() != tc.wantW || got.Dy() != tc.wantH {
				t.Fatalf("expected %dx%d, got %dx%d", tc.wantW, tc.wantH, got.Dx(), got.Dy())
			}
		})
	}
}

func TestEncodeProducesWebP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 12), B: 90, A: 255})
		}
	}
	var in bytes.Buffer
	if err := png.Encode(&in, src); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	out, err := NewWebPEncoder().Encode(in.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) < 12 || string(out[:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Fatalf("output is not a webp container")
	}
}

func TestEncodeRejectsGarbage(t *testing.T) {
	enc := NewWebPEncoder()
	if _, err := enc.Encode(nil); err == nil {
		t.Fatal("expected an error for empty input")
	}
	if _, err := enc.Encode([]byte("definitely not an image")); err == nil {
		t.Fatal("expected an error for garbage input")
	}
}
