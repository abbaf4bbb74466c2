// Package imaging normalizes uploaded evidence photos: bounded size, JPEG output.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"strings"

	// Registered decoders for accepted upload formats
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned when the payload is not a decodable image.
var ErrDecode = errors.New("imaging: cannot decode image")

// Result describes the encoded output.
type Result struct {
	SourceFormat string
	Width        int
	Height       int
}

// Compress decodes data, scales it so that neither side exceeds maxDimension
// (keeping aspect ratio, never upscaling), flattens transparency onto white
// and re-encodes it as JPEG at the given quality.
func Compress(data []byte, maxDimension, quality int) ([]byte, Result, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	newWidth, newHeight := FitWithin(bounds.Dx(), bounds.Dy(), maxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, Result{}, fmt.Errorf("imaging: encode: %w", err)
	}

	return buf.Bytes(), Result{SourceFormat: format, Width: newWidth, Height: newHeight}, nil
}

// FitWithin returns width x height scaled down so the longer side is at most
// maxDimension. Non-positive maxDimension leaves the size unchanged.
func FitWithin(width, height, maxDimension int) (int, int) {
	if maxDimension <= 0 || (width <= maxDimension && height <= maxDimension) {
		return width, height
	}
	if width >= height {
		h := int(float64(height) * float64(maxDimension) / float64(width))
		return maxDimension, max(h, 1)
	}
	w := int(float64(width) * float64(maxDimension) / float64(height))
	return max(w, 1), maxDimension
}

// SanitizeFilename keeps ASCII letters, digits, '_' and '-' of the base name.
// Supabase storage rejects non-ASCII object keys.
func SanitizeFilename(filename string) string {
	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	base = strings.ReplaceAll(base, " ", "_")

	var result strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}
	if result.Len() == 0 {
		return "file"
	}
	return result.String()
}
