package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func makeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestRecompressJPEG(t *testing.T) {
	data := makeJPEG(t, 40, 30)

	out, contentType, err := Recompress(data, "image/jpeg")
	if err != nil {
		t.Fatalf("recompress failed: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %s", contentType)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid jpeg: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("unexpected output dimensions: %v", img.Bounds())
	}
}

func TestRecompressPNG(t *testing.T) {
	data := makePNG(t, 16, 16)

	out, contentType, err := Recompress(data, "image/png")
	if err != nil {
		t.Fatalf("recompress failed: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("expected image/png, got %s", contentType)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("output is not a valid png: %v", err)
	}
}

func TestRecompressPassthrough(t *testing.T) {
	data := []byte("RIFF....WEBPVP8 ")

	out, contentType, err := Recompress(data, "image/webp")
	if err != nil {
		t.Fatalf("recompress failed: %v", err)
	}
	if contentType != "image/webp" {
		t.Fatalf("expected image/webp, got %s", contentType)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("expected passthrough to keep bytes untouched")
	}
}

func TestRecompressCorruptInput(t *testing.T) {
	if _, _, err := Recompress([]byte("not an image"), "image/jpeg"); err == nil {
		t.Fatalf("expected error for corrupt jpeg")
	}
}

func TestFitJPEGDownscales(t *testing.T) {
	data := makePNG(t, 2400, 1200)

	out, err := FitJPEG(data, 1200, 85)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid jpeg: %v", err)
	}
	if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 600 {
		t.Fatalf("expected 1200x600, got %v", img.Bounds())
	}
}

func TestFitJPEGNeverUpscales(t *testing.T) {
	data := makeJPEG(t, 300, 200)

	out, err := FitJPEG(data, 1200, 85)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid jpeg: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 200 {
		t.Fatalf("expected original 300x200, got %v", img.Bounds())
	}
}

func TestFitJPEGPortrait(t *testing.T) {
	data := makePNG(t, 600, 2400)

	out, err := FitJPEG(data, 1200, 85)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a valid jpeg: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 1200 {
		t.Fatalf("expected 300x1200, got %v", img.Bounds())
	}
}
