package main

import (
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/cubed/core"
)

func init() {
	// SDL and Direct3D calls stay on the main OS thread.
	runtime.LockOSThread()
}

func newWindow(cfg core.WindowConfiguration) (*sdl.Window, error) {
	return sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		cfg.Width,
		cfg.Height,
		0)
}

// windowHandle extracts the native Win32 handle Direct3D binds the swap
// chain to.
func windowHandle(window *sdl.Window) (uintptr, error) {
	info, err := window.GetWMInfo()
	if err != nil {
		return 0, err
	}
	return uintptr(info.GetWindowsInfo().Window), nil
}

type sdlEventSource struct{}

// PollEvent implements core.EventSource. At most one pending event is
// taken off the queue, without blocking.
func (sdlEventSource) PollEvent() core.Event {
	event := sdl.PollEvent()
	if event == nil {
		return nil
	}
	if _, ok := event.(*sdl.QuitEvent); ok {
		return core.QuitEvent{}
	}
	return event
}

func main() {
	configuration := core.ConfigurationFromEnv()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Error("unable to initialize SDL: ", err)
		os.Exit(1)
	}
	defer sdl.Quit()
	log.Info("SDL initialized")

	log.Info("initializing main window")
	window, err := newWindow(configuration.Window)
	if err != nil {
		log.Error("unable to create main application window: ", err)
		os.Exit(1)
	}
	defer window.Destroy()
	log.Info("main application window created")

	handle, err := windowHandle(window)
	if err != nil {
		log.Error("unable to retrieve native window handle: ", err)
		os.Exit(1)
	}

	renderer, err := core.NewDirect3DRenderer(handle, configuration.Renderer)
	if err != nil {
		log.Error("unable to create renderer: ", err)
		os.Exit(1)
	}

	log.Info("initializing Direct3D")
	if err := renderer.Initialise(); err != nil {
		log.Error("an error occurred initializing Direct3D: ", err)
		os.Exit(1)
	}
	defer renderer.Destroy()

	time := core.NewTime(configuration.Time)
	loop := core.NewLoop(sdlEventSource{}, renderer)
	loop.Run(time)

	log.Info("event loop exited")
}
