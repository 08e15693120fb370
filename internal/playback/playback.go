// Package playback tracks the visible slide while a slideshow is presented.
package playback

// Controller is a cyclic index over a fixed number of slides.
type Controller struct {
	n       int
	current int
}

// New returns a controller over n slides starting at the first one. With no
// slides every move is a no-op.
func New(n int) *Controller {
	if n < 0 {
		n = 0
	}
	return &Controller{n: n}
}

// Current is the zero-based index of the visible slide.
func (c *Controller) Current() int { return c.current }

// Len is the number of slides.
func (c *Controller) Len() int { return c.n }

// Next advances one slide, wrapping from the last to the first.
func (c *Controller) Next() int {
	if c.n > 0 {
		c.current = (c.current + 1) % c.n
	}
	return c.current
}

// Previous steps back one slide, wrapping from the first to the last.
func (c *Controller) Previous() int {
	if c.n > 0 {
		c.current = (c.current - 1 + c.n) % c.n
	}
	return c.current
}

// HandleKey maps directional keys to moves. It reports whether the key was
// a navigation key.
func (c *Controller) HandleKey(key string) bool {
	switch key {
	case "right", "ArrowRight":
		c.Next()
	case "left", "ArrowLeft":
		c.Previous()
	default:
		return false
	}
	return true
}
