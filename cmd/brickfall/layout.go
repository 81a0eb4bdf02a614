package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
)

var flagFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the block grid",
	Long: `Prints every block of a fresh round: position, color and points.

Formats:
  table - aligned columns (default)
  yaml  - one YAML document listing all blocks

Examples:
  brickfall layout
  brickfall layout --format yaml`,
	Run: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagFormat, "format", "table", "Output format: table, yaml")
}

// blockRow is the printable form of one block.
type blockRow struct {
	Row    int     `yaml:"row"`
	Column int     `yaml:"column"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Color  string  `yaml:"color"`
	Points int     `yaml:"points"`
}

// layoutRows numbers the default grid by row and column.
func layoutRows() []blockRow {
	grid := breakout.DefaultGrid()
	cols := grid.Columns()
	blocks := breakout.GenerateGrid(grid)

	rows := make([]blockRow, 0, len(blocks))
	for i, b := range blocks {
		rows = append(rows, blockRow{
			Row:    i / cols,
			Column: i % cols,
			X:      b.X,
			Y:      b.Y,
			Color:  b.Color.String(),
			Points: b.Points,
		})
	}
	return rows
}

func runLayout(_ *cobra.Command, _ []string) {
	var err error
	switch flagFormat {
	case "table":
		err = writeLayoutTable(os.Stdout, layoutRows())
	case "yaml":
		err = writeLayoutYAML(os.Stdout, layoutRows())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeLayoutTable(w io.Writer, rows []blockRow) error {
	maxColorLen := len("Color")
	total := 0
	for _, r := range rows {
		maxColorLen = max(maxColorLen, len(r.Color))
		total += r.Points
	}

	if _, err := fmt.Fprintf(w, "  %3s  %3s  %5s  %5s  %-*s  %s\n", "Row", "Col", "X", "Y", maxColorLen, "Color", "Points"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %3s  %3s  %5s  %5s  %-*s  %s\n", "---", "---", "-", "-", maxColorLen, "-----", "------"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "  %3d  %3d  %5.0f  %5.0f  %-*s  %d\n", r.Row, r.Column, r.X, r.Y, maxColorLen, r.Color, r.Points); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d blocks, %d points total.\n", len(rows), total)
	return err
}

func writeLayoutYAML(w io.Writer, rows []blockRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]blockRow{"blocks": rows}); err != nil {
		return err
	}
	return enc.Close()
}
