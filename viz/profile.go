package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/sesterhe/RosettaSilentToolbox/design"
)

// Profile draws the per-position identity and similarity of a design
// population against its reference: the similarity fraction as an
// orange filled area with the identity fraction filled green on top.
func Profile(scores []design.PositionScore) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "positional sequence similarity"
	p.X.Label.Text = "position"
	p.Y.Min, p.Y.Max = 0, 1
	p.X.Min, p.X.Max = 0, float64(len(scores)-1)

	positive := make(plotter.XYs, len(scores))
	identity := make(plotter.XYs, len(scores))
	for i, s := range scores {
		positive[i] = plotter.XY{X: float64(i), Y: s.Positive}
		identity[i] = plotter.XY{X: float64(i), Y: s.Identity}
	}

	pos, err := plotter.NewLine(positive)
	if err != nil {
		return nil, err
	}
	pos.Color = similarityColor
	pos.FillColor = similarityColor

	id, err := plotter.NewLine(identity)
	if err != nil {
		return nil, err
	}
	id.Color = identityColor
	id.FillColor = identityColor

	// Similarity first so identity paints over it.
	p.Add(pos, id)
	p.Legend.Add("positive", pos)
	p.Legend.Add("identity", id)
	return p, nil
}
