// Package breakout implements a single-screen block breaker: a paddle deflects
// a ball into a fixed grid of scoring blocks.
package breakout

import (
	"math"
	"slices"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Playfield dimensions and entity sizes, in world units.
const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0

	PaddleWidth  = 100.0
	PaddleHeight = 20.0
	PaddleSpeed  = 600.0 // units per second

	BallSize  = 20.0
	BallSpeed = 300.0 // units per second on each axis

	BlockWidth   = 75.0
	BlockHeight  = 25.0
	BlockSpacing = 5.0
)

// Vertical placement of block rows.
const (
	gridTop     = 50.0
	rowSpacing  = 5.0
	strokeWidth = 2.0
)

// Row describes one row of blocks: its color and the points each block is worth.
type Row struct {
	Color  core.Color
	Points int
}

// defaultRows is the fixed top-to-bottom row palette.
var defaultRows = []Row{
	{Color: core.ColorRed, Points: 20},
	{Color: core.ColorOrange, Points: 10},
	{Color: core.ColorYellow, Points: 5},
	{Color: core.ColorGreen, Points: 5},
	{Color: core.ColorBlue, Points: 10},
	{Color: core.ColorIndigo, Points: 20},
}

// Block is a destructible target. X and Y are the top-left corner.
type Block struct {
	X, Y   float64
	W, H   float64
	Color  core.Color
	Points int
}

// Bounds returns the block's rectangle.
func (b Block) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Grid holds the inputs of the layout generator.
type Grid struct {
	ScreenWidth float64
	BlockWidth  float64
	BlockHeight float64
	Spacing     float64
	Rows        []Row
}

// DefaultRows returns a copy of the row palette used by DefaultGrid.
func DefaultRows() []Row {
	return slices.Clone(defaultRows)
}

// DefaultGrid returns the grid every round starts from. Each call returns
// its own Rows slice.
func DefaultGrid() Grid {
	return Grid{
		ScreenWidth: ScreenWidth,
		BlockWidth:  BlockWidth,
		BlockHeight: BlockHeight,
		Spacing:     BlockSpacing,
		Rows:        DefaultRows(),
	}
}

// Columns returns how many blocks fit across the screen.
func (g Grid) Columns() int {
	pitch := g.BlockWidth + g.Spacing
	if pitch <= 0 {
		return 0
	}
	return int(math.Floor(g.ScreenWidth / pitch))
}

// RowY returns the top edge of row i.
func (g Grid) RowY(i int) float64 {
	return float64(i)*(g.BlockHeight+rowSpacing) + gridTop
}

// ColumnX returns the left edge of column c.
func (g Grid) ColumnX(c int) float64 {
	return float64(c) * (g.BlockWidth + g.Spacing)
}

// GenerateGrid builds one block per (row, column) cell, row by row.
// The result depends only on g.
func GenerateGrid(g Grid) []Block {
	cols := g.Columns()
	blocks := make([]Block, 0, len(g.Rows)*cols)

	for i, row := range g.Rows {
		y := g.RowY(i)
		for c := 0; c < cols; c++ {
			blocks = append(blocks, Block{
				X:      g.ColumnX(c),
				Y:      y,
				W:      g.BlockWidth,
				H:      g.BlockHeight,
				Color:  row.Color,
				Points: row.Points,
			})
		}
	}

	return blocks
}

// Layout returns the default block grid.
func Layout() []Block {
	return GenerateGrid(DefaultGrid())
}
