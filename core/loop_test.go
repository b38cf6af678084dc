package core_test

import (
	"testing"

	"github.com/devblok/cubed/core"
)

type scriptedEvents struct {
	pending []core.Event
}

func (s *scriptedEvents) PollEvent() core.Event {
	if len(s.pending) == 0 {
		return nil
	}
	event := s.pending[0]
	s.pending = s.pending[1:]
	return event
}

type countingRenderer struct {
	frames int
}

func (r *countingRenderer) Initialise() error { return nil }
func (r *countingRenderer) DrawFrame()        { r.frames++ }
func (r *countingRenderer) Destroy()          {}

func TestLoopQuitsBeforeFirstFrame(t *testing.T) {
	renderer := &countingRenderer{}
	loop := core.NewLoop(&scriptedEvents{pending: []core.Event{core.QuitEvent{}}}, renderer)

	if state := loop.Iterate(); state != core.StateQuit {
		t.Errorf("expected StateQuit, got %v", state)
	}
	if renderer.frames != 0 {
		t.Errorf("expected zero clear/present cycles before quit, got %d", renderer.frames)
	}
}

func TestLoopKeepsRunningOnEmptyQueue(t *testing.T) {
	renderer := &countingRenderer{}
	loop := core.NewLoop(&scriptedEvents{}, renderer)

	for i := 0; i < 3; i++ {
		if state := loop.Iterate(); state != core.StateRunning {
			t.Fatalf("iteration %d: expected StateRunning, got %v", i, state)
		}
	}
	if renderer.frames != 3 {
		t.Errorf("expected 3 frames, got %d", renderer.frames)
	}
}

func TestLoopIgnoresNonQuitEvents(t *testing.T) {
	renderer := &countingRenderer{}
	events := &scriptedEvents{pending: []core.Event{
		"keydown",
		"mousemotion",
		core.QuitEvent{},
	}}
	loop := core.NewLoop(events, renderer)

	if state := loop.Iterate(); state != core.StateRunning {
		t.Errorf("non-quit event should keep the loop running, got %v", state)
	}
	if state := loop.Iterate(); state != core.StateRunning {
		t.Errorf("non-quit event should keep the loop running, got %v", state)
	}
	if state := loop.Iterate(); state != core.StateQuit {
		t.Errorf("quit event should stop the loop, got %v", state)
	}
	if renderer.frames != 2 {
		t.Errorf("expected 2 frames before quit, got %d", renderer.frames)
	}
}

func TestLoopStaysQuit(t *testing.T) {
	renderer := &countingRenderer{}
	loop := core.NewLoop(&scriptedEvents{pending: []core.Event{core.QuitEvent{}}}, renderer)

	loop.Iterate()
	if state := loop.Iterate(); state != core.StateQuit {
		t.Errorf("expected loop to stay in StateQuit, got %v", state)
	}
	if renderer.frames != 0 {
		t.Errorf("expected no frames after quit, got %d", renderer.frames)
	}
}

func TestLoopRunReturnsOnQuit(t *testing.T) {
	renderer := &countingRenderer{}
	events := &scriptedEvents{pending: []core.Event{nil, core.QuitEvent{}}}
	loop := core.NewLoop(events, renderer)

	time := core.NewTime(core.TimeConfiguration{FramesPerSecond: 0})
	loop.Run(time)

	if state := loop.State(); state != core.StateQuit {
		t.Errorf("expected StateQuit after Run, got %v", state)
	}
}
