package sweep

// TileSizing decides the world-space size of one tile given the
// available display area and the grid dimensions.
type TileSizing interface {
	Resolve(availWidth, availHeight float64, cols, rows int) float64
}

// FixedTileSize always resolves to its own value.
type FixedTileSize float64

func (s FixedTileSize) Resolve(availWidth, availHeight float64, cols, rows int) float64 {
	return float64(s)
}

// AdaptiveTileSize fits the grid into the available area, clamping the
// result between Min and Max.
type AdaptiveTileSize struct {
	Min, Max float64
}

func (s AdaptiveTileSize) Resolve(availWidth, availHeight float64, cols, rows int) float64 {
	maxWidth := availWidth / float64(cols)
	maxHeight := availHeight / float64(rows)
	size := min(maxWidth, maxHeight)
	return min(max(size, s.Min), s.Max)
}

// Placement decides the world-space anchor (bottom-left corner) of the
// board given its total size.
type Placement interface {
	Anchor(boardSize Vec2) Vec2
}

// Centered places the board around the world origin, shifted by Offset.
type Centered struct {
	Offset Vec2
}

func (p Centered) Anchor(boardSize Vec2) Vec2 {
	return Vec2{X: -boardSize.X / 2, Y: -boardSize.Y / 2}.Add(p.Offset)
}

// Custom places the board's bottom-left corner at an explicit position.
type Custom Vec2

func (p Custom) Anchor(boardSize Vec2) Vec2 {
	return Vec2(p)
}

// BoardOptions carries everything the configuration collaborator
// supplies before generation.
type BoardOptions struct {
	Width, Height int
	BombCount     int
	TileSize      TileSizing
	Position      Placement
	TilePadding   float64
	SafeStart     bool
}

// DefaultOptions is a beginner board: 9x9 with 10 bombs.
func DefaultOptions() BoardOptions {
	return BoardOptions{
		Width:     9,
		Height:    9,
		BombCount: 10,
		TileSize:  AdaptiveTileSize{Min: 10, Max: 50},
		Position:  Centered{},
	}
}
