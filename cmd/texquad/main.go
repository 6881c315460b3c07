package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"texquad/core"
	"texquad/opengl"
	"texquad/scene"
)

const (
	imagePath  = "assets/container.jpg"
	meshPath   = "assets/quad.glb" // optional geometry override
	vertShader = "assets/shaders/texture.vert"
	fragShader = "assets/shaders/texture.frag"
)

var clearColor = core.Color{R: 0.2, G: 0.3, B: 0.3, A: 1}

func main() {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		os.Exit(1)
	}

	renderer, err := opengl.NewRenderer(vertShader, fragShader)
	if err != nil {
		fmt.Printf("Failed to initialize renderer: %v\n", err)
		window.Destroy()
		os.Exit(1)
	}

	// Keep the viewport matched to the drawable size; it differs from the
	// window size on high-DPI displays.
	window.SetFramebufferSizeCallback(func(width, height int) {
		renderer.SetViewport(width, height)
	})
	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer.SetViewport(fbWidth, fbHeight)

	// Geometry: the built-in quad, or the first primitive of a glTF asset
	// dropped next to the image.
	mesh := scene.CreateQuad()
	if _, err := os.Stat(meshPath); err == nil {
		if m, err := scene.LoadMeshGLTF(meshPath); err == nil {
			fmt.Printf("Loaded mesh %q from %s\n", m.Name, meshPath)
			mesh = m
		} else {
			fmt.Printf("Failed to load mesh from %s: %v\n", meshPath, err)
		}
	}

	// Texture: the decoded image, or a magenta checkerboard when the image
	// is missing or undecodable.
	tex, err := scene.LoadTexture(imagePath)
	if err != nil {
		fmt.Printf("Failed to load texture: %v\n", err)
		tex = scene.NewCheckerTexture("fallback", 64,
			color.RGBA{R: 255, B: 255, A: 255}, color.RGBA{A: 255})
	}

	sampler := opengl.DefaultSamplerConfig()
	sampler.BorderColor = core.ColorYellow
	if err := opengl.UploadTexture(tex, sampler); err != nil {
		fmt.Printf("Failed to upload texture: %v\n", err)
	}

	fmt.Println("Controls:")
	fmt.Println("  1-4 - wrap: repeat / mirrored-repeat / clamp-to-edge / clamp-to-border")
	fmt.Println("  F   - toggle magnification filter (nearest/linear)")
	fmt.Println("  M   - cycle minification filter")
	fmt.Println("  ESC - exit")

	wrapKeys := []struct {
		key  int
		mode opengl.WrapMode
	}{
		{core.Key1, opengl.WrapRepeat},
		{core.Key2, opengl.WrapMirroredRepeat},
		{core.Key3, opengl.WrapClampToEdge},
		{core.Key4, opengl.WrapClampToBorder},
	}
	wrapKeyWasDown := make([]bool, len(wrapKeys))
	var magKeyWasDown, minKeyWasDown bool

	frameCount := 0
	lastTime := time.Now()

	for !window.ShouldClose() {
		// Input
		if window.IsKeyPressed(core.KeyEscape) {
			window.RequestClose()
		}

		for i, wk := range wrapKeys {
			down := window.IsKeyPressed(wk.key)
			if down && !wrapKeyWasDown[i] && sampler.WrapS != wk.mode {
				sampler.WrapS = wk.mode
				sampler.WrapT = wk.mode
				applySampler(tex, sampler)
			}
			wrapKeyWasDown[i] = down
		}

		magDown := window.IsKeyPressed(core.KeyF)
		if magDown && !magKeyWasDown {
			if sampler.MagFilter == opengl.FilterLinear {
				sampler.MagFilter = opengl.FilterNearest
			} else {
				sampler.MagFilter = opengl.FilterLinear
			}
			applySampler(tex, sampler)
		}
		magKeyWasDown = magDown

		minDown := window.IsKeyPressed(core.KeyM)
		if minDown && !minKeyWasDown {
			sampler.MinFilter++
			if sampler.MinFilter > opengl.FilterLinearMipmapLinear {
				sampler.MinFilter = opengl.FilterNearest
			}
			applySampler(tex, sampler)
		}
		minKeyWasDown = minDown

		// Render
		renderer.BeginFrame(clearColor)
		renderer.DrawMesh(mesh, tex, float32(window.Time()))

		window.SwapBuffers()
		window.PollEvents()

		// Update the title with FPS once per second
		frameCount++
		now := time.Now()
		if now.Sub(lastTime).Seconds() >= 1.0 {
			window.SetTitle(fmt.Sprintf("Texture Mapping | FPS: %d | wrap=%s min=%s mag=%s",
				frameCount, sampler.WrapS, sampler.MinFilter, sampler.MagFilter))
			frameCount = 0
			lastTime = now
		}
	}

	opengl.DeleteTexture(tex)
	renderer.Destroy()
	window.Destroy()
	fmt.Println("Exiting...")
}

func applySampler(tex *scene.Texture, cfg opengl.SamplerConfig) {
	if err := opengl.SetSampler(tex, cfg); err != nil {
		fmt.Printf("Failed to set sampler: %v\n", err)
		return
	}
	fmt.Printf("[Sampler] wrap=%s/%s min=%s mag=%s\n",
		cfg.WrapS, cfg.WrapT, cfg.MinFilter, cfg.MagFilter)
}
