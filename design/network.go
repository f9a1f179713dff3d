package design

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// A StateNode is one observed (position, residue) state of the
// population, plus the artificial source ("0X") and sink ("-1X")
// states framing the sequence.
type StateNode struct {
	id int64

	// Label is "<position><residue>", e.g. "3W". Source and sink use
	// the pseudo-residue X at orders 0 and length+1.
	Label string

	// Order is the node's x coordinate when drawn: 0 for the source,
	// 1..n for sequence positions, n+1 for the sink.
	Order int

	// Residue is the residue type, or 'X' for source and sink.
	Residue byte
}

func (n *StateNode) ID() int64     { return n.id }
func (n *StateNode) DOTID() string { return n.Label }

// Rank is the node's y coordinate when drawn: the residue's index in
// Alphabet, or the middle of the alphabet for source and sink.
func (n *StateNode) Rank() int {
	if i := strings.IndexByte(Alphabet, n.Residue); i >= 0 {
		return i
	}
	return len(Alphabet) / 2
}

func (n *StateNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "order", Value: fmt.Sprint(n.Order)},
		{Key: "type", Value: string(n.Residue)},
	}
}

// A Transition is a weighted edge of the network: the number of decoys
// stepping from one state to the next.
type Transition struct {
	From, To *StateNode
	Count    float64
}

// A TransitionGraph is the per-position frequency network of a
// population: every observed residue state is a node and every
// consecutive-position transition an edge weighted by how many decoys
// make it.
type TransitionGraph struct {
	Source *StateNode
	Sink   *StateNode

	g     *simple.WeightedDirectedGraph
	nodes map[string]*StateNode
}

// Network builds the transition graph of the population. All
// sequences must share one length.
func Network(s *Set) (*TransitionGraph, error) {
	n, err := s.length()
	if err != nil {
		return nil, err
	}

	t := &TransitionGraph{
		g:     simple.NewWeightedDirectedGraph(0, 0),
		nodes: make(map[string]*StateNode),
	}
	t.Source = t.node("0X", 0, 'X')
	t.Sink = t.node("-1X", n+1, 'X')

	for _, sq := range s.Sequences {
		prev := t.Source
		for pos := 0; pos < n; pos++ {
			r := byte(sq.Residues[pos])
			node := t.node(fmt.Sprintf("%d%c", pos+1, r), pos+1, r)
			t.addTransition(prev, node)
			prev = node
		}
		t.addTransition(prev, t.Sink)
	}
	return t, nil
}

func (t *TransitionGraph) node(label string, order int, residue byte) *StateNode {
	if n, ok := t.nodes[label]; ok {
		return n
	}
	n := &StateNode{
		id:      int64(len(t.nodes)),
		Label:   label,
		Order:   order,
		Residue: residue,
	}
	t.nodes[label] = n
	t.g.AddNode(n)
	return n
}

func (t *TransitionGraph) addTransition(from, to *StateNode) {
	w := 1.0
	if e := t.g.WeightedEdge(from.ID(), to.ID()); e != nil {
		w += e.Weight()
	}
	t.g.SetWeightedEdge(t.g.NewWeightedEdge(from, to, w))
}

// Nodes returns every state node, source and sink included, in no
// particular order.
func (t *TransitionGraph) Nodes() []*StateNode {
	nodes := make([]*StateNode, 0, len(t.nodes))
	for _, n := range t.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Transitions returns every weighted edge of the network.
func (t *TransitionGraph) Transitions() []Transition {
	var ts []Transition
	it := t.g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		ts = append(ts, Transition{
			From:  e.From().(*StateNode),
			To:    e.To().(*StateNode),
			Count: e.Weight(),
		})
	}
	return ts
}

// Edge returns the transition count between two state labels, or 0
// when no decoy makes that step.
func (t *TransitionGraph) Edge(from, to string) float64 {
	u, okU := t.nodes[from]
	v, okV := t.nodes[to]
	if !okU || !okV {
		return 0
	}
	if e := t.g.WeightedEdge(u.ID(), v.ID()); e != nil {
		return e.Weight()
	}
	return 0
}

// Graph exposes the backing directed graph.
func (t *TransitionGraph) Graph() graph.Directed { return t.g }

// DOT renders the network in Graphviz DOT form, node attributes
// carrying the drawing order and residue type.
func (t *TransitionGraph) DOT() ([]byte, error) {
	return dot.Marshal(t.g, "transitions", "", "  ")
}
