package tilemap

import (
	"errors"
	"fmt"
)

var ErrNoViewport = errors.New("tilemap: viewport unavailable")

// DefaultWallThickness is the half-thickness of boundary walls in world units.
const DefaultWallThickness = 1.0

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// UnitSize is the size of one grid cell in world units.
type UnitSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Side names which edge of the play area a boundary closes.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideTop   Side = "top"
)

// Collider is a static box in world units: centre and half-extents.
type Collider struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	HalfW    float64 `yaml:"half_w"`
	HalfH    float64 `yaml:"half_h"`
	Friction float64 `yaml:"friction"`
}

// NewCollider is the one place static colliders are made, for map spans and
// boundaries alike. Static geometry never has friction.
func NewCollider(x, y, halfW, halfH float64) Collider {
	return Collider{X: x, Y: y, HalfW: halfW, HalfH: halfH, Friction: 0}
}

// Size returns the full width and height.
func (c Collider) Size() (float64, float64) {
	return c.HalfW * 2, c.HalfH * 2
}

// Sprite is the visual rectangle drawn over a collider.
type Sprite struct {
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Visible bool    `yaml:"visible"`
}

// Placement is one static body ready to be spawned.
type Placement struct {
	Span     *Span    `yaml:"span,omitempty"`
	Side     Side     `yaml:"side,omitempty"`
	Collider Collider `yaml:"collider"`
	Sprite   Sprite   `yaml:"sprite"`
}

func newPlacement(c Collider, visible bool) Placement {
	w, h := c.Size()
	return Placement{Collider: c, Sprite: Sprite{W: w, H: h, Visible: visible}}
}

// Layout is everything the assembler emits for one grid.
type Layout struct {
	Unit       UnitSize    `yaml:"unit"`
	Tiles      []Placement `yaml:"tiles"`
	Boundaries []Placement `yaml:"boundaries"`
}

// All returns tiles followed by boundaries.
func (l Layout) All() []Placement {
	out := make([]Placement, 0, len(l.Tiles)+len(l.Boundaries))
	out = append(out, l.Tiles...)
	return append(out, l.Boundaries...)
}

// Assembler converts grids into world-space placements for a fixed viewport
// and physics scale.
type Assembler struct {
	viewport Viewport
	scale    float64
	wall     float64
}

// NewAssembler checks the startup preconditions. A missing viewport cannot be
// recovered from; callers treat the error as fatal.
func NewAssembler(viewport Viewport, scale float64) (*Assembler, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrNoViewport, viewport.Width, viewport.Height)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("tilemap: physics scale must be positive, got %g", scale)
	}
	return &Assembler{viewport: viewport, scale: scale, wall: DefaultWallThickness}, nil
}

// WithWallThickness returns a copy using t as the boundary half-thickness.
func (a *Assembler) WithWallThickness(t float64) *Assembler {
	next := *a
	if t > 0 {
		next.wall = t
	}
	return &next
}

// HalfExtents returns half the viewport in world units.
func (a *Assembler) HalfExtents() (float64, float64) {
	return a.viewport.Width / a.scale / 2, a.viewport.Height / a.scale / 2
}

// UnitSize returns the cell size for grid in world units.
func (a *Assembler) UnitSize(g Grid) UnitSize {
	return UnitSize{
		W: a.viewport.Width / a.scale / float64(g.Cols()),
		H: a.viewport.Height / a.scale / float64(g.Rows()),
	}
}

// Assemble emits one placement per span of every row plus the boundary walls.
func (a *Assembler) Assemble(g Grid) Layout {
	unit := a.UnitSize(g)
	layout := Layout{Unit: unit, Boundaries: a.Boundaries()}

	rows, cols := g.Rows(), g.Cols()
	for r, row := range g {
		for span := range Spans(row, r) {
			left, _ := CellBounds(span.Start+1, cols, unit.W)
			_, right := CellBounds(span.End(), cols, unit.W)
			top, bottom := CellBounds(r+1, rows, unit.H)

			// rows count downward, world y grows upward
			c := NewCollider((left+right)/2, -(top+bottom)/2, float64(span.Len)*unit.W/2, unit.H/2)
			p := newPlacement(c, true)
			s := span
			p.Span = &s
			layout.Tiles = append(layout.Tiles, p)
		}
	}
	return layout
}

// Boundaries closes the left, right and top edges of the viewport. The
// bottom stays open so the player can fall out of the world.
func (a *Assembler) Boundaries() []Placement {
	halfW, halfH := a.HalfExtents()
	t := a.wall
	x := halfW + t

	left := newPlacement(NewCollider(-x, 0, t, halfH), false)
	left.Side = SideLeft
	right := newPlacement(NewCollider(x, 0, t, halfH), false)
	right.Side = SideRight
	top := newPlacement(NewCollider(0, halfH+t, halfW+2*t, t), false)
	top.Side = SideTop

	return []Placement{left, right, top}
}
