package main

import (
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type newGameDTO struct {
	Width     int  `schema:"width,required"`
	Height    int  `schema:"height,required"`
	BombCount int  `schema:"bomb_count,required"`
	SafeStart bool `schema:"safe_start"`

	TileSize    float64 `schema:"tile_size"`
	MinTileSize float64 `schema:"min_tile_size"`
	MaxTileSize float64 `schema:"max_tile_size"`
	TilePadding float64 `schema:"tile_padding"`
	OffsetX     float64 `schema:"offset_x"`
	OffsetY     float64 `schema:"offset_y"`

	DisplayWidth  float64 `schema:"display_width"`
	DisplayHeight float64 `schema:"display_height"`
}

func decodeNewGame(src map[string][]string) (newGameDTO, error) {
	var dto newGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (dto newGameDTO) boardOptions() sweep.BoardOptions {
	opts := sweep.DefaultOptions()
	opts.Width = dto.Width
	opts.Height = dto.Height
	opts.BombCount = dto.BombCount
	opts.SafeStart = dto.SafeStart
	opts.TilePadding = dto.TilePadding
	opts.Position = sweep.Centered{Offset: sweep.Vec2{X: dto.OffsetX, Y: dto.OffsetY}}
	if dto.TileSize > 0 {
		opts.TileSize = sweep.FixedTileSize(dto.TileSize)
	} else if dto.MinTileSize > 0 && dto.MaxTileSize >= dto.MinTileSize {
		opts.TileSize = sweep.AdaptiveTileSize{Min: dto.MinTileSize, Max: dto.MaxTileSize}
	}
	return opts
}

func (dto newGameDTO) displayArea() (width float64, height float64) {
	width, height = dto.DisplayWidth, dto.DisplayHeight
	if width <= 0 {
		width = defaultDisplayWidth
	}
	if height <= 0 {
		height = defaultDisplayHeight
	}
	return
}

type pointDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func decodePoint(src map[string][]string) (pointDTO, error) {
	var p pointDTO
	err := decoder.Decode(&p, src)
	return p, err
}

type boundsView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type gameSessionView struct {
	SessionId    string     `json:"session_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	BombCount    int        `json:"bomb_count"`
	Grid         []string   `json:"grid"`
	CoveredCount int        `json:"covered_count"`
	Pending      int        `json:"pending"`
	Exploded     bool       `json:"exploded"`
	TileSize     float64    `json:"tile_size"`
	Bounds       boundsView `json:"bounds"`
	CreatedAt    int64      `json:"created_at"`
}

// snapshot renders the player-visible state: covered tiles are masked
// with '-', revealed ones show their content. The session mutex must
// be held.
func (s *gameSession) snapshot() gameSessionView {
	tileMap := s.board.TileMap()

	grid := make([]string, 0, tileMap.Height())
	for y, row := range tileMap.Rows() {
		var b strings.Builder
		for x, tile := range row {
			if _, covered := s.board.Resolve(sweep.Coordinates{X: x, Y: y}); covered {
				b.WriteString("-")
			} else {
				b.WriteString(tile.String())
			}
		}
		grid = append(grid, b.String())
	}

	bounds := s.board.Bounds()
	return gameSessionView{
		SessionId:    strconv.Itoa(s.id),
		Width:        tileMap.Width(),
		Height:       tileMap.Height(),
		BombCount:    tileMap.BombCount(),
		Grid:         grid,
		CoveredCount: s.board.CoveredCount(),
		Pending:      s.engine.PendingCount(),
		Exploded:     s.engine.Exploded(),
		TileSize:     s.board.TileSize(),
		Bounds: boundsView{
			X:      bounds.Position.X,
			Y:      bounds.Position.Y,
			Width:  bounds.Size.X,
			Height: bounds.Size.Y,
		},
		CreatedAt: s.createdAt.UnixMilli(),
	}
}

type revealView struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Entity    uint64 `json:"entity"`
	Tile      string `json:"tile"`
	Bomb      bool   `json:"bomb"`
	Neighbors int    `json:"neighbors"`
}

type coordinatesView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type tickReportView struct {
	Revealed  []revealView      `json:"revealed"`
	Exploded  []coordinatesView `json:"exploded,omitempty"`
	Scheduled int               `json:"scheduled"`
}

func newTickReportView(report sweep.TickReport[uint64]) tickReportView {
	view := tickReportView{
		Revealed:  make([]revealView, 0, len(report.Revealed)),
		Scheduled: report.Scheduled,
	}
	for _, reveal := range report.Revealed {
		view.Revealed = append(view.Revealed, revealView{
			X:         reveal.Coordinates.X,
			Y:         reveal.Coordinates.Y,
			Entity:    reveal.Handle,
			Tile:      reveal.Tile.String(),
			Bomb:      reveal.Tile.IsBomb(),
			Neighbors: reveal.Tile.NeighborCount(),
		})
	}
	for _, c := range report.Exploded {
		view.Exploded = append(view.Exploded, coordinatesView{X: c.X, Y: c.Y})
	}
	return view
}
