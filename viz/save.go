package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Save writes a single plot to path, picking the image format from the
// path's extension (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, width, height vg.Length, path string) error {
	return p.Save(width, height, path)
}

// SaveAligned stacks plots vertically into one image, one plot per
// row, all rows sharing the x layout. Used for line-broken logos.
func SaveAligned(plots []*plot.Plot, width, height vg.Length, path string) error {
	if len(plots) == 1 {
		return Save(plots[0], width, height, path)
	}

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("no image format extension on %s", path)
	}
	img, err := draw.NewFormattedCanvas(width, height*vg.Length(len(plots)), format)
	if err != nil {
		return err
	}

	rows := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: 1,
		PadX: vg.Points(5),
		PadY: vg.Points(5),
	}
	canvases := plot.Align(rows, tiles, draw.New(img))
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
