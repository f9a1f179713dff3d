package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sesterhe/RosettaSilentToolbox/design"
)

// Network draws a transition graph with nodes at (order, residue rank)
// and every transition as a straight segment, the way the sequence
// frequency graph of a design population is usually inspected.
func Network(t *design.TransitionGraph) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "sequence transitions"
	p.X.Label.Text = "position"
	p.Y.Tick.Marker = residueTicks(design.Alphabet)
	p.X.Min = float64(t.Source.Order) - 1
	p.X.Max = float64(t.Sink.Order) + 1

	for _, tr := range t.Transitions() {
		line, err := plotter.NewLine(plotter.XYs{
			{X: float64(tr.From.Order), Y: rankY(tr.From)},
			{X: float64(tr.To.Order), Y: rankY(tr.To)},
		})
		if err != nil {
			return nil, err
		}
		p.Add(line)
	}

	nodes := t.Nodes()
	xys := make(plotter.XYs, len(nodes))
	for i, n := range nodes {
		xys[i] = plotter.XY{X: float64(n.Order), Y: rankY(n)}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  identityColor,
		Radius: vg.Points(3),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(s)
	return p, nil
}

// rankY flips ranks so that the first alphabet residue draws on top,
// matching the tick labels from residueTicks.
func rankY(n *design.StateNode) float64 {
	return float64(len(design.Alphabet) - 1 - n.Rank())
}
