package spatial

import "github.com/gogpu/geom"

// maxDepth bounds subdivision so that clustered centers cannot split
// forever.
const maxDepth = 24

// Node is a region of a Quadtree. Leaf nodes carry the circles whose
// centers fall in the region; internal nodes carry up to four
// children.
type Node struct {
	leaf     bool
	circles  []*Circle
	children [4]*Node
}

// Leaf reports whether the node is a leaf.
func (n *Node) Leaf() bool {
	return n.leaf
}

// Circles returns the circles stored at the node. Internal nodes
// return nil.
func (n *Node) Circles() []*Circle {
	return n.circles
}

// VisitFunc is called once per visited node with the node's region
// extents. Returning true prunes the node's subtree from the
// traversal.
type VisitFunc func(n *Node, x0, y0, x1, y1 float64) bool

// Quadtree is a point quadtree over circle centers. Build one per
// traversal pass; inserts are cheap and the tree holds only pointers.
//
// Centers are expected to lie inside the bounds given to NewQuadtree.
// Centers outside still land in an edge quadrant, but region extents
// reported to VisitFunc will not cover them, so pruning may skip
// them.
type Quadtree struct {
	root           *Node
	x0, y0, x1, y1 float64
	size           int
}

// NewQuadtree creates an empty quadtree covering bounds.
func NewQuadtree(bounds geom.Rect) *Quadtree {
	return &Quadtree{
		x0: bounds.Left,
		y0: bounds.Top,
		x1: bounds.MaxX(),
		y1: bounds.MaxY(),
	}
}

// Len returns the number of inserted circles.
func (q *Quadtree) Len() int {
	return q.size
}

// Insert adds a circle to the tree, keyed on its current center.
func (q *Quadtree) Insert(c *Circle) {
	q.root = insert(q.root, c, q.x0, q.y0, q.x1, q.y1, 0)
	q.size++
}

func insert(n *Node, c *Circle, x0, y0, x1, y1 float64, depth int) *Node {
	if n == nil {
		return &Node{leaf: true, circles: []*Circle{c}}
	}
	if n.leaf {
		// Coincident centers and exhausted depth share a leaf so
		// subdivision terminates.
		p := n.circles[0]
		if depth >= maxDepth || (p.X == c.X && p.Y == c.Y) {
			n.circles = append(n.circles, c)
			return n
		}
		old := n.circles
		n.leaf = false
		n.circles = nil
		for _, o := range old {
			insertChild(n, o, x0, y0, x1, y1, depth)
		}
	}
	insertChild(n, c, x0, y0, x1, y1, depth)
	return n
}

func insertChild(n *Node, c *Circle, x0, y0, x1, y1 float64, depth int) {
	xm := (x0 + x1) / 2
	ym := (y0 + y1) / 2
	i := 0
	cx0, cy0, cx1, cy1 := x0, y0, xm, ym
	if c.X >= xm {
		i |= 1
		cx0, cx1 = xm, x1
	}
	if c.Y >= ym {
		i |= 2
		cy0, cy1 = ym, y1
	}
	n.children[i] = insert(n.children[i], c, cx0, cy0, cx1, cy1, depth+1)
}

// Visit walks the tree in pre-order, calling fn for every node with
// the node's region extents. A true return prunes the subtree.
func (q *Quadtree) Visit(fn VisitFunc) {
	visit(q.root, q.x0, q.y0, q.x1, q.y1, fn)
}

func visit(n *Node, x0, y0, x1, y1 float64, fn VisitFunc) {
	if n == nil || fn(n, x0, y0, x1, y1) {
		return
	}
	xm := (x0 + x1) / 2
	ym := (y0 + y1) / 2
	visit(n.children[0], x0, y0, xm, ym, fn)
	visit(n.children[1], xm, y0, x1, ym, fn)
	visit(n.children[2], x0, ym, xm, y1, fn)
	visit(n.children[3], xm, ym, x1, y1, fn)
}
