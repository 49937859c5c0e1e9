package sweep

import "fmt"

// Vec2 is a world-space vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Bounds2 is an axis-aligned rectangle anchored at its bottom-left
// corner, used to hit-test pointer input against the board.
type Bounds2 struct {
	Position Vec2
	Size     Vec2
}

// Contains reports whether p lies within the rectangle. The bottom and
// left edges are inclusive, the top and right edges exclusive.
func (b Bounds2) Contains(p Vec2) bool {
	return b.Position.X <= p.X &&
		p.X < b.Position.X+b.Size.X &&
		b.Position.Y <= p.Y &&
		p.Y < b.Position.Y+b.Size.Y
}
