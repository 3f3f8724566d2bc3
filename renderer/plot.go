package renderer

import (
	"fmt"
	"image/color"
	"io"

	"github.com/eladshoshani/Investments"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	lumpSumColor = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff} // orange
	dcaColor     = color.RGBA{B: 0xff, A: 0xff}                   // blue
)

// SweepPNG writes the sweep report as a PNG chart grid, one panel per
// investment horizon, plotting both strategies' total return (%) against the
// historical entry year.
func SweepPNG(w io.Writer, r *investments.SweepReport) error {
	const cols = 2
	rows := (len(r.Horizons) + cols - 1) / cols
	if rows == 0 {
		return fmt.Errorf("no horizon to plot")
	}

	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
	}
	for i, h := range r.Horizons {
		p, err := horizonPlot(h)
		if err != nil {
			return err
		}
		plots[i/cols][i%cols] = p
	}

	img := vgimg.New(14*vg.Inch, vg.Length(5*rows)*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}

// horizonPlot builds one panel of the grid.
func horizonPlot(h investments.HorizonReport) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d Year Investment Period", h.Years)
	p.X.Label.Text = "Entry Year"
	p.Y.Label.Text = "Total Return (%)"
	p.Add(plotter.NewGrid())

	lump, err := returnsLine(h, h.LumpSum, lumpSumColor)
	if err != nil {
		return nil, err
	}
	dca, err := returnsLine(h, h.DCA, dcaColor)
	if err != nil {
		return nil, err
	}
	p.Add(lump, dca)
	p.Legend.Add(legendLabel(h.LumpSum), lump)
	p.Legend.Add(legendLabel(h.DCA), dca)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

func legendLabel(s investments.StrategyReturns) string {
	return fmt.Sprintf("%s (mean %s, std %s)",
		s.Strategy,
		investments.AsPercent(s.Stats.Mean),
		investments.AsPercent(s.Stats.Std))
}

func returnsLine(h investments.HorizonReport, s investments.StrategyReturns, c color.Color) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(s.Returns))
	for i, r := range s.Returns {
		entry := h.Entries[i]
		xys[i].X = float64(entry.Year()) + float64(entry.Month()-1)/12
		xys[i].Y = 100 * r
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = c
	return line, nil
}
