// Package core wires the window, the Direct3D device and the frame loop
// together. The concrete renderer lives behind the Renderer interface so
// the loop and the initialisation sequencing stay testable off-hardware.
package core

// Renderer describes the rendering machinery. It's created with internal
// values set only, it needs to be initialised with Initialise() before use.
type Renderer interface {
	// Initialise sets up the device, the swap chain, the output views
	// and the viewport, in that order. Any native failure aborts the
	// sequence and is returned as a *d3d11.CallError.
	Initialise() error

	// DrawFrame clears the output views and presents the back buffer.
	// Native failures inside a running frame are not checked.
	DrawFrame()

	// Destroy releases internal members
	Destroy()
}

// Event is a single occurrence polled from the platform event queue.
type Event interface{}

// QuitEvent signals that the window was asked to close.
type QuitEvent struct{}

// EventSource hands out pending platform events without blocking.
type EventSource interface {
	// PollEvent returns the next pending event, or nil when the queue
	// is empty.
	PollEvent() Event
}
