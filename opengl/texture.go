package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"texquad/scene"
)

// UploadTexture uploads a scene.Texture to the GPU with the given sampler
// configuration and sets its GLID field. Mipmaps are generated for the full
// chain so the mipmapped minification filters work without re-upload.
// Call this from the main goroutine (OpenGL context must be current).
func UploadTexture(tex *scene.Texture, cfg SamplerConfig) error {
	if tex == nil {
		return fmt.Errorf("nil texture")
	}
	if len(tex.Pixels) == 0 {
		return fmt.Errorf("texture %q has no pixel data", tex.Name)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("texture %q: %w", tex.Name, err)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	cfg.apply()

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(tex.Width),
		int32(tex.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.GLID = id
	return nil
}

// SetSampler re-applies wrap/filter parameters on an already uploaded
// texture, so the demo can switch policies at runtime.
func SetSampler(tex *scene.Texture, cfg SamplerConfig) error {
	if tex == nil || tex.GLID == 0 {
		return fmt.Errorf("texture not uploaded")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("texture %q: %w", tex.Name, err)
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
	cfg.apply()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// DeleteTexture frees a previously uploaded GPU texture and zeroes its GLID.
func DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.GLID)
	tex.GLID = 0
}
