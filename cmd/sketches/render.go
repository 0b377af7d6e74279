package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/sketches/agms"
	"github.com/katalvlaran/sketches/dyadic"
)

// maxRenderedWidth caps counter-grid printing; wider grids are summarized
// instead of wrapped into unreadable lines.
const maxRenderedWidth = 32

// newTable returns a writer with the house style shared by all commands.
func newTable(out io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)

	return tbl
}

// estimate is one rendered query result.
type estimate struct {
	stream string
	item   string
	value  int64
}

// renderEstimates prints per-item estimates grouped by stream.
func renderEstimates(out io.Writer, estimates []estimate) {
	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"Stream", "Item", "Estimate"})
	for _, e := range estimates {
		tbl.AppendRow(table.Row{e.stream, e.item, e.value})
	}
	tbl.Render()
}

// renderGrid prints the counter grid of a sketch, or a one-line summary
// when the grid is too wide to read in a terminal.
func renderGrid(out io.Writer, name string, sk *agms.Sketch) {
	grid := sk.Grid()
	if sk.Width() > maxRenderedWidth {
		fmt.Fprintf(out, "%s: %dx%d grid (too wide to print)\n", name, sk.Depth(), sk.Width())

		return
	}

	tbl := newTable(out)
	header := make(table.Row, 0, sk.Width()+1)
	header = append(header, "row")
	for c := 0; c < sk.Width(); c++ {
		header = append(header, strconv.Itoa(c))
	}
	tbl.AppendHeader(header)
	for r, row := range grid {
		cells := make(table.Row, 0, sk.Width()+1)
		cells = append(cells, r)
		for _, v := range row {
			cells = append(cells, v)
		}
		tbl.AppendRow(cells)
	}
	fmt.Fprintf(out, "%s:\n", name)
	tbl.Render()
}

// renderCover prints a dyadic decomposition with per-interval sizes.
func renderCover(out io.Writer, cover []dyadic.Interval) {
	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"Lo", "Hi", "Size"})
	for _, iv := range cover {
		tbl.AppendRow(table.Row{iv.Lo, iv.Hi, iv.Hi - iv.Lo + 1})
	}
	tbl.AppendFooter(table.Row{"", "intervals", len(cover)})
	tbl.Render()
}
