package render

// DrawRect is one filled rectangle in arena coordinates.
type DrawRect struct {
	X, Y          float64
	Width, Height float64
	Color         ColorTag
}

// TextOverlay is a HUD or banner string. When Centered is set, X is ignored and the
// host centers the text horizontally.
type TextOverlay struct {
	Text     string
	X, Y     float64
	Color    ColorTag
	Size     float64
	Centered bool
}

// Frame is the read-only snapshot handed to a presentation host after each tick.
// Rects are in draw order.
type Frame struct {
	Width, Height float64
	Rects         []DrawRect
	Texts         []TextOverlay
}
