// Package input collects per-frame window events.
package input

// Key identifies a keyboard key the render loop reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Events is the summary of one event poll.
type Events struct {
	Quit   bool // close requested by the window system
	Escape bool // escape key pressed
}

// Collector folds raw window events into an Events value.
type Collector struct {
	events Events
}

// New creates a new collector.
func New() *Collector {
	return &Collector{}
}

// Reset clears events from the previous poll.
func (c *Collector) Reset() {
	c.events = Events{}
}

// Quit records a close request.
func (c *Collector) Quit() {
	c.events.Quit = true
}

// KeyDown records a key press.
func (c *Collector) KeyDown(k Key) {
	if k == KeyEscape {
		c.events.Escape = true
	}
}

// Events returns what was collected since the last Reset.
func (c *Collector) Events() Events {
	return c.events
}

// QuitRequested reports whether these events should end the loop.
func (e Events) QuitRequested() bool {
	return e.Quit || e.Escape
}
