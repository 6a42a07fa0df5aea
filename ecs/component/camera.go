package component

// Camera maps world units to screen pixels. The camera looks at its
// transform, which sits at the centre of the viewport.
type Camera struct {
	PixelsPerUnit  float64
	ViewportWidth  float64
	ViewportHeight float64
	Zoom           float64
}

var CameraComponent = NewComponent[Camera]()
