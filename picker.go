package main

import (
	"errors"
	"image"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultWindow = 21
	historyLimit  = 10

	// Live captures are throttled to bound load on the capture primitive;
	// ticks arrive faster than this.
	minCaptureGap = 50 * time.Millisecond
)

// Mode is the picker's sampling mode.
type Mode int

const (
	// Live re-samples under the cursor on every (throttled) tick.
	Live Mode = iota
	// Frozen holds one sample until it is released or replaced.
	Frozen
)

// Input is everything the picker reads from the outside world on one tick.
type Input struct {
	Cursor   image.Point // virtual-desktop coordinates
	Freeze   bool        // rising edge of the capture action
	Unfreeze bool        // release action, level-triggered
}

// Picker owns the live/frozen state machine, the current and frozen
// samples, the color history, and the capture throttle. It is driven
// synchronously from a single tick loop; transitions never block, and
// nothing outside the Picker mutates its state.
type Picker struct {
	backend Backend
	window  int
	gap     time.Duration

	mode        Mode
	current     *Sample
	frozen      *Sample
	history     []RGB
	lastCapture time.Time
}

// NewPicker returns a live picker with no sample yet. window is the odd
// edge length of the preview grid.
func NewPicker(b Backend, window int) *Picker {
	return &Picker{backend: b, window: window, gap: minCaptureGap}
}

// Tick advances the state machine by one input poll. A tick fully
// resolves its capture, success or failure, before returning; every
// failure path keeps the previous sample so the UI never flashes empty
// on a transient error.
func (p *Picker) Tick(now time.Time, in Input) {
	if in.Freeze {
		p.freeze(now, in.Cursor)
		return
	}
	if in.Unfreeze && p.mode == Frozen {
		// Discard the frozen sample; live sampling resumes next tick.
		p.frozen = nil
		p.mode = Live
		return
	}
	if p.mode != Live || now.Sub(p.lastCapture) < p.gap {
		return
	}
	p.lastCapture = now
	s, err := pick(p.backend, in.Cursor, p.window)
	if err != nil {
		if !errors.Is(err, ErrOffscreen) {
			log.WithError(err).Warn("live capture failed")
		}
		return
	}
	p.current = &s
}

func (p *Picker) freeze(now time.Time, cursor image.Point) {
	if p.mode == Frozen {
		// A capture request while already frozen re-samples at the
		// cursor's current position and re-freezes, rather than being
		// a no-op. The old sample stands if the new capture fails.
		p.lastCapture = now
		if s, err := pick(p.backend, cursor, p.window); err == nil {
			p.frozen = &s
		} else if !errors.Is(err, ErrOffscreen) {
			log.WithError(err).Warn("re-freeze capture failed")
		}
	} else {
		p.mode = Frozen
		p.frozen = p.current
	}
	if p.frozen != nil {
		p.remember(p.frozen.Color)
	}
}

// remember appends c to the color history, suppressing consecutive exact
// duplicates and dropping the oldest entry past the cap.
func (p *Picker) remember(c RGB) {
	if n := len(p.history); n > 0 && p.history[n-1] == c {
		return
	}
	p.history = append(p.history, c)
	if len(p.history) > historyLimit {
		p.history = p.history[1:]
	}
}

// SeedHistory preloads the color history from persisted state, trimming
// to the cap.
func (p *Picker) SeedHistory(colors []RGB) {
	if len(colors) > historyLimit {
		colors = colors[len(colors)-historyLimit:]
	}
	p.history = append(p.history[:0], colors...)
}

// SelectHistory freezes onto a bare color picked from the history list.
// The synthetic sample has no preview grid and no meaningful position.
func (p *Picker) SelectHistory(c RGB) {
	p.mode = Frozen
	p.frozen = &Sample{Color: c}
}

// Mode reports whether the picker is live or frozen.
func (p *Picker) Mode() Mode { return p.mode }

// Sample returns the sample the UI should show: the frozen one while
// frozen, otherwise the latest live one. Nil before the first successful
// capture.
func (p *Picker) Sample() *Sample {
	if p.mode == Frozen && p.frozen != nil {
		return p.frozen
	}
	return p.current
}

// History returns the picked-color history, oldest first.
func (p *Picker) History() []RGB { return p.history }
