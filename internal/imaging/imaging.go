package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

const (
	// RecompressQuality is the JPEG quality for single uploads.
	RecompressQuality = 80
	// AdditionalMaxDim is the bounding box for additional artwork images.
	AdditionalMaxDim = 1200
	// AdditionalQuality is the JPEG quality for additional artwork images.
	AdditionalQuality = 85
)

// Recompress re-encodes JPEG and PNG inputs at a reduced quality to save
// storage and bandwidth. Other content types pass through untouched. It
// returns the (possibly rewritten) bytes and content type.
func Recompress(data []byte, contentType string) ([]byte, string, error) {
	switch contentType {
	case "image/jpeg":
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("decode jpeg: %w", err)
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: RecompressQuality}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	case "image/png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("decode png: %w", err)
		}
		var buf bytes.Buffer
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		if err := encoder.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		return data, contentType, nil
	}
}

// FitJPEG decodes any registered image format, scales it down to fit within
// maxDim x maxDim preserving aspect ratio (never upscaling), and re-encodes
// it as JPEG at the given quality.
func FitJPEG(data []byte, maxDim, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxDim || height > maxDim {
		targetW, targetH := fitWithin(width, height, maxDim)
		scaled := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func fitWithin(width, height, maxDim int) (int, int) {
	if width >= height {
		target := maxDim * height / width
		if target < 1 {
			target = 1
		}
		return maxDim, target
	}
	target := maxDim * width / height
	if target < 1 {
		target = 1
	}
	return target, maxDim
}
