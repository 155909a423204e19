// package common contains common types that are used throughout this engine.
// They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
// Produced either procedurally or by DecodeTexture from encoded image bytes.
type TextureStagingData struct {
	// Pixels is the raw pixel data in RGBA format, 4 bytes per pixel, row-major order.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// DecodeTexture decodes encoded PNG or JPEG bytes into RGBA staging data.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - data: the encoded image bytes
//
// Returns:
//   - TextureStagingData: the decoded RGBA pixel data with dimensions
//   - error: error if decoding fails
func DecodeTexture(data []byte) (TextureStagingData, error) {
	if len(data) == 0 {
		return TextureStagingData{}, fmt.Errorf("texture data is empty")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}

// SolidTexture builds a 1x1 RGBA staging texture of the given color.
// Used as a fallback diffuse texture for materials without image data.
//
// Parameters:
//   - r, g, b, a: the color channels
//
// Returns:
//   - TextureStagingData: a single-pixel texture
func SolidTexture(r, g, b, a uint8) TextureStagingData {
	return TextureStagingData{
		Pixels: []byte{r, g, b, a},
		Width:  1,
		Height: 1,
	}
}
