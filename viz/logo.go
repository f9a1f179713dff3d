package viz

import (
	"strconv"

	"github.com/TuftsBCB/seq"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sesterhe/RosettaSilentToolbox/design"
)

// LogoOptions tune logo rendering.
type LogoOptions struct {
	// LineBreak splits the logo into rows of this many positions.
	// Zero or negative keeps everything on one row.
	LineBreak int

	// Reference, when non-empty, is shown above each column as the
	// original residue of that position.
	Reference seq.Sequence
}

// logoPlotter draws one row of a sequence logo: per column, the
// observed residues stacked bottom-up in ascending frequency, each
// letter scaled to its frequency.
type logoPlotter struct {
	f     *design.Frequencies
	start int // 0-based first position of this row
	n     int // positions in this row
	width int // positions per full row, for aligned ragged rows
}

func (l *logoPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for col := 0; col < l.n; col++ {
		x := trX(float64(col) + 0.5)
		y := 0.0
		for _, rf := range l.f.Column(l.start + col) {
			height := trY(y+rf.Freq) - trY(y)
			if height <= 0 {
				y += rf.Freq
				continue
			}
			sty := text.Style{
				Color:   ResidueColor(rf.Residue),
				Font:    font.From(plot.DefaultFont, height),
				XAlign:  text.XCenter,
				YAlign:  text.YBottom,
				Handler: plot.DefaultTextHandler,
			}
			c.FillText(sty, vg.Point{X: x, Y: trY(y)}, string(rf.Residue))
			y += rf.Freq
		}
	}
}

// DataRange keeps every row the width of a full row so that stacked
// rows stay column-aligned even when the last one is ragged.
func (l *logoPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(l.width), 0, 1
}

// Logo builds one plot per logo row. With no line break the slice has
// a single element; callers combine multi-row logos with SaveAligned.
func Logo(f *design.Frequencies, opts LogoOptions) []*plot.Plot {
	width := f.Positions()
	if opts.LineBreak > 0 && opts.LineBreak < width {
		width = opts.LineBreak
	}

	var plots []*plot.Plot
	for start := 0; start < f.Positions(); start += width {
		n := f.Positions() - start
		if n > width {
			n = width
		}

		p := plot.New()
		p.Y.Min, p.Y.Max = 0, 1
		p.X.Label.Text = "position"
		p.Y.Label.Text = "frequency"
		p.X.Tick.Marker = logoTicks(start, n, opts.Reference)
		p.Add(&logoPlotter{f: f, start: start, n: n, width: width})
		plots = append(plots, p)
	}
	return plots
}

// logoTicks labels each column center with its 1-based position and,
// when a reference is given, the reference residue under it.
func logoTicks(start, n int, ref seq.Sequence) plot.TickerFunc {
	return func(min, max float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, n)
		for col := 0; col < n; col++ {
			pos := start + col
			label := strconv.Itoa(pos + 1)
			if pos < ref.Len() {
				label += "\n" + string(rune(ref.Residues[pos]))
			}
			ticks = append(ticks, plot.Tick{
				Value: float64(col) + 0.5,
				Label: label,
			})
		}
		return ticks
	}
}
