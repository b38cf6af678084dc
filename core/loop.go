package core

// LoopState is the frame loop's state. There are two: the loop is
// running, or it has observed a quit event.
type LoopState int

// Frame loop states. The only transition is StateRunning -> StateQuit.
const (
	StateRunning LoopState = iota
	StateQuit
)

// NewLoop creates a frame loop over the given event source and renderer.
// The renderer must be initialised before the loop runs.
func NewLoop(events EventSource, renderer Renderer) *Loop {
	return &Loop{
		events:   events,
		renderer: renderer,
		state:    StateRunning,
	}
}

// Loop is the empty frame loop: poll one event, clear, present.
type Loop struct {
	events   EventSource
	renderer Renderer
	state    LoopState
}

// State returns the loop's current state.
func (l *Loop) State() LoopState {
	return l.state
}

// Iterate runs a single frame: polls at most one pending event, then
// draws. A quit event transitions to StateQuit before any drawing, so a
// first-iteration quit performs zero clear/present cycles. Every other
// event, and an empty queue, leaves the loop running.
func (l *Loop) Iterate() LoopState {
	if l.state == StateQuit {
		return l.state
	}

	if _, quit := l.events.PollEvent().(QuitEvent); quit {
		l.state = StateQuit
		return l.state
	}

	l.renderer.DrawFrame()
	return l.state
}

// Run iterates until a quit event is observed, paced by the time
// service's ticker.
func (l *Loop) Run(time Time) {
	for l.state == StateRunning {
		<-time.FpsTicker().C
		l.Iterate()
	}
}
