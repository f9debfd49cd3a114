// Package frameclock caps the render rate and measures frames per second.
package frameclock

import "time"

// Decision is the outcome of a Tick.
type Decision int

const (
	// Skip means the frame budget has not elapsed yet; poll again.
	Skip Decision = iota
	// Render means a frame should be drawn now.
	Render
)

func (d Decision) String() string {
	switch d {
	case Skip:
		return "skip"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// TimeSource returns monotonic time in seconds.
type TimeSource func() float64

// MonotonicSource returns a TimeSource counting seconds from now.
func MonotonicSource() TimeSource {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}

// fpsWindow is the length of an FPS sampling window in seconds.
const fpsWindow = 1.0

// Clock decides whether a frame should be rendered and counts rendered frames.
//
// Tick samples the time source and compares it with the time of the last
// buffer swap, which MarkSwap records separately, so a slow frame does not
// shift the next frame's deadline.
type Clock struct {
	source    TimeSource
	targetFPS int
	sleep     func(time.Duration)

	frames        int
	fps           int
	lastFPSSample float64
	lastFrame     float64
	now           float64
}

// New creates a clock capped at targetFPS. A target of zero or less
// disables the cap.
func New(source TimeSource, targetFPS int) *Clock {
	return &Clock{
		source:    source,
		targetFPS: targetFPS,
		sleep:     time.Sleep,
		fps:       targetFPS,
	}
}

// SetSleep replaces the function Wait sleeps with.
func (c *Clock) SetSleep(sleep func(time.Duration)) {
	c.sleep = sleep
}

// Tick samples the time source and decides whether to render.
func (c *Clock) Tick() Decision {
	c.now = c.source()

	if c.now-c.lastFPSSample > fpsWindow {
		c.fps = c.frames
		c.frames = 0
		c.lastFPSSample = c.now
	}

	if c.targetFPS > 0 && c.now-c.lastFrame <= c.frameBudget() {
		return Skip
	}

	c.frames++
	return Render
}

// MarkSwap records the time the rendered frame was presented.
func (c *Clock) MarkSwap() {
	c.lastFrame = c.source()
}

// Wait sleeps until the current frame budget is used up. It only shortens
// the busy loop; Tick still makes the decision.
func (c *Clock) Wait() {
	if c.targetFPS <= 0 {
		return
	}
	remaining := c.lastFrame + c.frameBudget() - c.now
	if remaining > 0 {
		c.sleep(time.Duration(remaining * float64(time.Second)))
	}
}

// FPS returns the frame count of the last completed sampling window.
func (c *Clock) FPS() int {
	return c.fps
}

// Now returns the time sampled by the last Tick.
func (c *Clock) Now() float64 {
	return c.now
}

// TargetFPS returns the configured cap.
func (c *Clock) TargetFPS() int {
	return c.targetFPS
}

func (c *Clock) frameBudget() float64 {
	return 1.0 / float64(c.targetFPS)
}
