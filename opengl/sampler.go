package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"texquad/core"
)

// WrapMode selects what a sampler produces for texture coordinates
// outside [0,1].
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder // uses SamplerConfig.BorderColor
)

func (w WrapMode) String() string {
	switch w {
	case WrapRepeat:
		return "repeat"
	case WrapMirroredRepeat:
		return "mirrored-repeat"
	case WrapClampToEdge:
		return "clamp-to-edge"
	case WrapClampToBorder:
		return "clamp-to-border"
	}
	return fmt.Sprintf("WrapMode(%d)", int(w))
}

func (w WrapMode) glEnum() int32 {
	switch w {
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	default:
		return gl.REPEAT
	}
}

// Filter selects how a texture coordinate resolves to a texel. The four
// mipmap variants are valid only for minification.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterNearestMipmapNearest
	FilterLinearMipmapNearest
	FilterNearestMipmapLinear
	FilterLinearMipmapLinear
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	case FilterNearestMipmapNearest:
		return "nearest-mipmap-nearest"
	case FilterLinearMipmapNearest:
		return "linear-mipmap-nearest"
	case FilterNearestMipmapLinear:
		return "nearest-mipmap-linear"
	case FilterLinearMipmapLinear:
		return "linear-mipmap-linear"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Mipmapped reports whether the filter blends across mipmap levels.
func (f Filter) Mipmapped() bool {
	return f >= FilterNearestMipmapNearest && f <= FilterLinearMipmapLinear
}

func (f Filter) glEnum() int32 {
	switch f {
	case FilterNearest:
		return gl.NEAREST
	case FilterNearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case FilterLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case FilterNearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

// SamplerConfig describes the wrap and filter state applied to a texture
// object before upload. Wrap is configured independently per axis, filtering
// independently for minification and magnification.
type SamplerConfig struct {
	WrapS       WrapMode
	WrapT       WrapMode
	MinFilter   Filter
	MagFilter   Filter
	BorderColor core.Color // sampled outside [0,1] under WrapClampToBorder
}

// DefaultSamplerConfig matches the demo's startup state: repeat wrapping and
// trilinear minification.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		WrapS:       WrapRepeat,
		WrapT:       WrapRepeat,
		MinFilter:   FilterLinearMipmapLinear,
		MagFilter:   FilterLinear,
		BorderColor: core.ColorBlack,
	}
}

// Validate rejects configurations the driver would refuse with INVALID_ENUM.
// Magnification never uses mipmaps, so the mipmap filters are min-only.
func (c SamplerConfig) Validate() error {
	for _, w := range []WrapMode{c.WrapS, c.WrapT} {
		if w < WrapRepeat || w > WrapClampToBorder {
			return fmt.Errorf("invalid wrap mode %d", int(w))
		}
	}
	if c.MinFilter < FilterNearest || c.MinFilter > FilterLinearMipmapLinear {
		return fmt.Errorf("invalid min filter %d", int(c.MinFilter))
	}
	if c.MagFilter != FilterNearest && c.MagFilter != FilterLinear {
		return fmt.Errorf("mag filter %s: mipmap filters are minification-only", c.MagFilter)
	}
	return nil
}

// apply sets the wrap/filter parameters on the currently bound TEXTURE_2D.
func (c SamplerConfig) apply() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, c.WrapS.glEnum())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, c.WrapT.glEnum())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, c.MinFilter.glEnum())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, c.MagFilter.glEnum())

	if c.WrapS == WrapClampToBorder || c.WrapT == WrapClampToBorder {
		border := [4]float32{c.BorderColor.R, c.BorderColor.G, c.BorderColor.B, c.BorderColor.A}
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])
	}
}
