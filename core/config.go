package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Window   WindowConfiguration
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// WindowConfiguration describes the main application window
type WindowConfiguration struct {
	Title  string
	Width  int32
	Height int32
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// RendererConfiguration is used to configure the renderer.
// ScreenWidth and ScreenHeight are the single source of truth for the
// window, the depth-stencil buffer and the viewport.
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// Debug enables the Direct3D debug layer on device creation
	Debug bool

	// ClearColor is the RGBA color the render target is cleared to
	// every frame
	ClearColor [4]float32
}

// CornflowerBlue is the fixed clear color of the empty frame loop.
var CornflowerBlue = [4]float32{0.392156899, 0.584313750, 0.929411829, 1.0}

// DefaultConfiguration returns the built-in settings: a 640x480 windowed
// bootstrap with the debug layer on and an uncapped frame loop.
func DefaultConfiguration() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Title:  "Rotating Cube",
			Width:  640,
			Height: 480,
		},
		Time: TimeConfiguration{
			FramesPerSecond: 0,
		},
		Renderer: RendererConfiguration{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Debug:        true,
			ClearColor:   CornflowerBlue,
		},
	}
}

// ConfigurationFromEnv builds the configuration from the defaults with
// environment overrides applied. Unset variables leave the defaults
// untouched, so an empty environment is fully equivalent to
// DefaultConfiguration.
func ConfigurationFromEnv() Configuration {
	cfg := DefaultConfiguration()

	cfg.Window.Title = envy.Get("CUBED_WINDOW_TITLE", cfg.Window.Title)
	if w, err := strconv.ParseUint(envy.Get("CUBED_SCREEN_WIDTH", ""), 10, 31); err == nil {
		cfg.Window.Width = int32(w)
		cfg.Renderer.ScreenWidth = uint32(w)
	}
	if h, err := strconv.ParseUint(envy.Get("CUBED_SCREEN_HEIGHT", ""), 10, 31); err == nil {
		cfg.Window.Height = int32(h)
		cfg.Renderer.ScreenHeight = uint32(h)
	}
	if fps, err := strconv.Atoi(envy.Get("CUBED_FPS", "")); err == nil && fps >= 0 {
		cfg.Time.FramesPerSecond = fps
	}
	if dbg, err := strconv.ParseBool(envy.Get("CUBED_DEBUG", "")); err == nil {
		cfg.Renderer.Debug = dbg
	}
	return cfg
}
