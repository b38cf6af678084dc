package core_test

import (
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/devblok/cubed/core"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := core.DefaultConfiguration()

	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("expected a 640x480 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Renderer.ScreenWidth != uint32(cfg.Window.Width) || cfg.Renderer.ScreenHeight != uint32(cfg.Window.Height) {
		t.Error("renderer size must follow the window size")
	}
	if !cfg.Renderer.Debug {
		t.Error("the debug layer is on by default")
	}
	if cfg.Time.FramesPerSecond != 0 {
		t.Errorf("the frame loop is uncapped by default, got %d fps", cfg.Time.FramesPerSecond)
	}
	if cfg.Renderer.ClearColor != core.CornflowerBlue {
		t.Error("the clear color defaults to cornflower blue")
	}
}

func TestConfigurationFromEnvDefaultsMatch(t *testing.T) {
	envy.Temp(func() {
		if got, want := core.ConfigurationFromEnv(), core.DefaultConfiguration(); got != want {
			t.Errorf("empty environment must reproduce the defaults, got %+v", got)
		}
	})
}

func TestConfigurationFromEnvOverrides(t *testing.T) {
	envy.Temp(func() {
		envy.Set("CUBED_WINDOW_TITLE", "Spinning Cube")
		envy.Set("CUBED_SCREEN_WIDTH", "800")
		envy.Set("CUBED_SCREEN_HEIGHT", "600")
		envy.Set("CUBED_FPS", "60")
		envy.Set("CUBED_DEBUG", "false")

		cfg := core.ConfigurationFromEnv()

		if cfg.Window.Title != "Spinning Cube" {
			t.Errorf("unexpected title %q", cfg.Window.Title)
		}
		if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
			t.Errorf("expected an 800x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
		}
		if cfg.Renderer.ScreenWidth != 800 || cfg.Renderer.ScreenHeight != 600 {
			t.Error("renderer size must follow the window override")
		}
		if cfg.Time.FramesPerSecond != 60 {
			t.Errorf("expected a 60 fps cap, got %d", cfg.Time.FramesPerSecond)
		}
		if cfg.Renderer.Debug {
			t.Error("debug layer should be off")
		}
	})
}

func TestConfigurationFromEnvIgnoresMalformedValues(t *testing.T) {
	envy.Temp(func() {
		envy.Set("CUBED_SCREEN_WIDTH", "not-a-number")
		envy.Set("CUBED_FPS", "-5")

		cfg := core.ConfigurationFromEnv()

		if cfg.Window.Width != 640 {
			t.Errorf("malformed width must keep the default, got %d", cfg.Window.Width)
		}
		if cfg.Time.FramesPerSecond != 0 {
			t.Errorf("negative fps must keep the default, got %d", cfg.Time.FramesPerSecond)
		}
	})
}
