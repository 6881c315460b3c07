package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSolidTexture(t *testing.T) {
	tex := NewSolidTexture("red", 255, 0, 0, 255)

	if tex.Width != 1 || tex.Height != 1 {
		t.Errorf("expected 1x1, got %dx%d", tex.Width, tex.Height)
	}
	want := []byte{255, 0, 0, 255}
	if !bytes.Equal(tex.Pixels, want) {
		t.Errorf("expected pixels %v, got %v", want, tex.Pixels)
	}
}

func TestNewCheckerTexture(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	tex := NewCheckerTexture("checker", 16, white, black)

	if tex.Width != 16 || tex.Height != 16 {
		t.Errorf("expected 16x16, got %dx%d", tex.Width, tex.Height)
	}
	if len(tex.Pixels) != 16*16*4 {
		t.Fatalf("expected %d bytes, got %d", 16*16*4, len(tex.Pixels))
	}

	// 16px / 8 blocks = 2px blocks: (0,0) white, (2,0) black, (2,2) white
	at := func(x, y int) byte { return tex.Pixels[(y*16+x)*4] }
	if at(0, 0) != 255 {
		t.Errorf("expected white at (0,0), got %d", at(0, 0))
	}
	if at(2, 0) != 0 {
		t.Errorf("expected black at (2,0), got %d", at(2, 0))
	}
	if at(2, 2) != 255 {
		t.Errorf("expected white at (2,2), got %d", at(2, 2))
	}
	if at(0, 2) != 0 {
		t.Errorf("expected black at (0,2), got %d", at(0, 2))
	}
}

func TestLoadTexture(t *testing.T) {
	// Write a small PNG and load it back through the decode path.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp png: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	f.Close()

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", tex.Width, tex.Height)
	}
	if len(tex.Pixels) != 2*2*4 {
		t.Fatalf("expected 16 bytes, got %d", len(tex.Pixels))
	}
	// top-left pixel is red
	if tex.Pixels[0] != 255 || tex.Pixels[1] != 0 || tex.Pixels[2] != 0 || tex.Pixels[3] != 255 {
		t.Errorf("expected red at (0,0), got %v", tex.Pixels[0:4])
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeTextureGarbage(t *testing.T) {
	if _, err := DecodeTexture("garbage", []byte("not an image")); err == nil {
		t.Error("expected error for undecodable bytes")
	}
}

func TestDecodeTexture(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	tex, err := DecodeTexture("mem", buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeTexture: %v", err)
	}
	if tex.Width != 3 || tex.Height != 1 {
		t.Errorf("expected 3x1, got %dx%d", tex.Width, tex.Height)
	}
}
