package viz

import (
	"strconv"

	"github.com/TuftsBCB/seq"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sesterhe/RosettaSilentToolbox/design"
)

// freqGrid adapts a frequency matrix to the heatmap grid interface.
// Rows are drawn top-down in alphabet order.
type freqGrid struct {
	f *design.Frequencies
}

func (g freqGrid) Dims() (c, r int) {
	return g.f.Positions(), len(g.f.Alphabet)
}

func (g freqGrid) Z(c, r int) float64 {
	return g.f.M.At(len(g.f.Alphabet)-1-r, c)
}

func (g freqGrid) X(c int) float64 { return float64(c + 1) }
func (g freqGrid) Y(r int) float64 { return float64(r) }

// Heatmap draws the per-position residue frequency distribution,
// residue types on the y axis and 1-based positions on the x axis.
// When ref is non-empty, the reference residue of each position is
// marked with a ring.
func Heatmap(f *design.Frequencies, ref seq.Sequence) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "sequence frequency"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "residue type"

	h := plotter.NewHeatMap(freqGrid{f}, palette.Heat(12, 1))
	p.Add(h)

	p.Y.Tick.Marker = residueTicks(f.Alphabet)
	p.X.Tick.Marker = positionTicks(f.Positions())

	if ref.Len() > 0 {
		marks := make(plotter.XYs, 0, ref.Len())
		for i := 0; i < ref.Len() && i < f.Positions(); i++ {
			row := rowOf(f.Alphabet, byte(ref.Residues[i]))
			if row < 0 {
				continue
			}
			marks = append(marks, plotter.XY{
				X: float64(i + 1),
				Y: float64(len(f.Alphabet) - 1 - row),
			})
		}
		s, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  identityColor,
			Radius: vg.Points(4),
			Shape:  draw.RingGlyph{},
		}
		p.Add(s)
	}
	return p, nil
}

func rowOf(alphabet string, aa byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == aa {
			return i
		}
	}
	return -1
}

// residueTicks labels integer y values with the alphabet, bottom row
// holding the last alphabet entry to match the grid orientation.
func residueTicks(alphabet string) plot.TickerFunc {
	return func(min, max float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, len(alphabet))
		for i := 0; i < len(alphabet); i++ {
			ticks = append(ticks, plot.Tick{
				Value: float64(i),
				Label: string(alphabet[len(alphabet)-1-i]),
			})
		}
		return ticks
	}
}

// positionTicks labels every tenth position, plus the first.
func positionTicks(n int) plot.TickerFunc {
	return func(min, max float64) []plot.Tick {
		var ticks []plot.Tick
		for pos := 1; pos <= n; pos++ {
			t := plot.Tick{Value: float64(pos)}
			if pos == 1 || pos%10 == 0 {
				t.Label = strconv.Itoa(pos)
			}
			ticks = append(ticks, t)
		}
		return ticks
	}
}
