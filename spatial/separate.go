package spatial

import "math"

// DefaultPadding is the visual padding, in world units, added around
// a circle's bounding square when deciding which quadtree regions are
// worth visiting.
const DefaultPadding = 16

// Option configures a Separator.
type Option func(*config)

type config struct {
	padding float64
}

// WithPadding overrides the pruning padding around the reference
// circle. Larger values visit more of the tree.
func WithPadding(p float64) Option {
	return func(c *config) {
		c.padding = p
	}
}

// Separator pushes circles apart from one reference circle during a
// single quadtree traversal pass. Create one per circle per pass; the
// padded bounding square used for pruning is captured at creation and
// does not track later center mutations.
type Separator struct {
	node           *Circle
	x0, y0, x1, y1 float64
}

// NewSeparator creates a separator around node. The pruning square is
// the node's bounding square padded by DefaultPadding unless
// overridden with WithPadding.
func NewSeparator(node *Circle, opts ...Option) *Separator {
	cfg := config{padding: DefaultPadding}
	for _, o := range opts {
		o(&cfg)
	}
	r := node.Radius + cfg.padding
	return &Separator{
		node: node,
		x0:   node.X - r,
		y0:   node.Y - r,
		x1:   node.X + r,
		y1:   node.Y + r,
	}
}

// Visit is a quadtree VisitFunc. For every circle at the node other
// than the reference circle itself (pointer identity, a circle is
// never separated from itself), it measures the center distance l
// against the radius sum r and, when l < r, shifts both centers apart
// symmetrically along the separating axis, each by half the overlap:
// the correction factor is (l-r)/l * 0.5. Both circles are mutated in
// place.
//
// Coincident centers (l == 0) have no separating axis; they are
// pushed apart along the +X axis by the full radius sum, still split
// evenly, rather than propagating NaN into positions.
//
// The return value is the pruning decision: true when the node's
// region lies entirely outside the reference circle's padded bounding
// square.
//
// This is a one-shot positional correction, not a physics step;
// invoke it once per pass across repeated passes and overlaps
// converge toward zero.
func (s *Separator) Visit(n *Node, x0, y0, x1, y1 float64) bool {
	for _, other := range n.Circles() {
		if other == s.node {
			continue
		}
		dx := s.node.X - other.X
		dy := s.node.Y - other.Y
		l := math.Hypot(dx, dy)
		r := s.node.Radius + other.Radius
		if l >= r {
			continue
		}
		if l == 0 {
			half := r / 2
			s.node.X += half
			other.X -= half
			continue
		}
		k := (l - r) / l * 0.5
		sx := dx * k
		sy := dy * k
		s.node.X -= sx
		s.node.Y -= sy
		other.X += sx
		other.Y += sy
	}
	return x0 > s.x1 || x1 < s.x0 || y0 > s.y1 || y1 < s.y0
}
