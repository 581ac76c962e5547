package invoice

import "math"

// DefaultLogoSize is the slider position a cleared logo returns to.
const DefaultLogoSize = 140

// logoAspect derives the second dimension from the one the slider
// controls.
const logoAspect = 0.57

// Logo tracks the uploaded image blob and its placement: one slider
// dimension plus a 2D offset in display pixels. The fields live and die
// as a group; an absent image means the placement is back at defaults.
type Logo struct {
	Data    string
	Size    float64
	OffsetX float64
	OffsetY float64
}

// NewLogo returns the cleared state: no image, default size, zero offset.
func NewLogo() Logo {
	return Logo{Size: DefaultLogoSize}
}

// Present reports whether an image has been applied.
func (l Logo) Present() bool {
	return l.Data != ""
}

// Height is the derived dimension for the current size.
func (l Logo) Height() float64 {
	return math.Round(l.Size * logoAspect)
}

// SetPosition moves the logo. No bounds are enforced; dragging it off
// the canvas is accepted and restored verbatim.
func (l *Logo) SetPosition(x, y float64) {
	l.OffsetX = x
	l.OffsetY = y
}

// SetSize sets the slider dimension, unclamped.
func (l *Logo) SetSize(size float64) {
	l.Size = size
}

// Clear removes the image and resets placement to the defaults.
func (l *Logo) Clear() {
	*l = NewLogo()
}
