package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload; do not access directly.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

// LoadTexture reads an image file from disk and returns a CPU-side Texture.
// PNG, JPEG, BMP, TIFF and WebP are supported; pixels are converted to RGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return textureFromImage(path, img), nil
}

// DecodeTexture decodes an in-memory image (e.g. from a glTF buffer view).
func DecodeTexture(name string, data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", name, err)
	}
	return textureFromImage(name, img), nil
}

func textureFromImage(name string, img image.Image) *Texture {
	bounds := img.Bounds()

	// Convert to RGBA8
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// NewCheckerTexture creates a size x size checkerboard of the two colors,
// 8 blocks per side. Useful as a visible stand-in when an image fails to load.
func NewCheckerTexture(name string, size int, c1, c2 color.RGBA) *Texture {
	pixels := make([]byte, size*size*4)
	blockSize := size / 8
	if blockSize < 1 {
		blockSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := (y*size + x) * 4
			c := c1
			if ((x/blockSize)+(y/blockSize))%2 != 0 {
				c = c2
			}
			pixels[idx] = c.R
			pixels[idx+1] = c.G
			pixels[idx+2] = c.B
			pixels[idx+3] = c.A
		}
	}

	return &Texture{
		Name:   name,
		Width:  size,
		Height: size,
		Pixels: pixels,
	}
}
