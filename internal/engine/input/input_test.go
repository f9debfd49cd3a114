package input

import "testing"

func TestCollector(t *testing.T) {
	tests := []struct {
		name     string
		feed     func(c *Collector)
		want     Events
		wantQuit bool
	}{
		{
			name: "nothing",
			feed: func(c *Collector) {},
			want: Events{},
		},
		{
			name:     "close request",
			feed:     func(c *Collector) { c.Quit() },
			want:     Events{Quit: true},
			wantQuit: true,
		},
		{
			name:     "escape",
			feed:     func(c *Collector) { c.KeyDown(KeyEscape) },
			want:     Events{Escape: true},
			wantQuit: true,
		},
		{
			name: "other key",
			feed: func(c *Collector) { c.KeyDown(KeyUnknown) },
			want: Events{},
		},
		{
			name: "escape after other keys",
			feed: func(c *Collector) {
				c.KeyDown(KeyUnknown)
				c.KeyDown(KeyEscape)
				c.KeyDown(KeyUnknown)
			},
			want:     Events{Escape: true},
			wantQuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.feed(c)
			got := c.Events()
			if got != tt.want {
				t.Errorf("Events() = %+v, want %+v", got, tt.want)
			}
			if got.QuitRequested() != tt.wantQuit {
				t.Errorf("QuitRequested() = %v, want %v", got.QuitRequested(), tt.wantQuit)
			}
		})
	}
}

func TestCollectorReset(t *testing.T) {
	c := New()
	c.Quit()
	c.KeyDown(KeyEscape)
	c.Reset()
	if got := c.Events(); got != (Events{}) {
		t.Errorf("after Reset got %+v", got)
	}
}
