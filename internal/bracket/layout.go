package bracket

import "github.com/trentd187/pingpong-league/internal/models"

// Geometry controls how abstract depth/breadth positions map to SVG pixels.
type Geometry struct {
	ColumnWidth float64 // Horizontal distance between rounds
	RowHeight   float64 // Vertical distance between adjacent leaves
	NodeWidth   float64
	NodeHeight  float64
	Margin      float64
}

// DefaultGeometry matches the stylesheet's match box size.
var DefaultGeometry = Geometry{
	ColumnWidth: 200,
	RowHeight:   100,
	NodeWidth:   150,
	NodeHeight:  60,
	Margin:      20,
}

// Node is one positioned match.
type Node struct {
	ID       string       `json:"id"`
	ParentID string       `json:"parentId,omitempty"`
	Depth    int          `json:"depth"`   // Edges from the root; the final is 0
	Breadth  float64      `json:"breadth"` // Leaf slots from the top; internal nodes sit between their children
	X        float64      `json:"x"`       // Pixel centre, root rightmost
	Y        float64      `json:"y"`
	Match    models.Match `json:"match"`
	Children []*Node      `json:"-"`
}

// Link connects a child match to the match its winner advances to.
type Link struct {
	Source string  `json:"source"` // Parent (later match)
	Target string  `json:"target"` // Child (earlier match)
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
}

// Tree is a laid-out bracket.
type Tree struct {
	Root         *Node   `json:"-"`
	RootID       string  `json:"rootId"`
	RootInferred bool    `json:"rootInferred"`
	Nodes        []*Node `json:"nodes"` // Reachable matches in input order
	Links        []Link  `json:"links"`
	MaxDepth     int     `json:"maxDepth"`
	Leaves       int     `json:"leaves"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
}

// BuildTree normalizes the rounds and lays the resulting tree out with DefaultGeometry.
//
// On a data-quality problem the error is an *Anomaly. For KindOrphanedNodes the tree of
// matches that do reach the root is returned as well, so callers can still draw it and
// mention what was left out. For every other kind the tree is nil.
func BuildTree(rounds []models.Round) (*Tree, error) {
	g, err := Normalize(EdgesFromRounds(rounds))
	if err != nil {
		return nil, err
	}

	matches := make(map[string]models.Match, len(g.Order))
	for _, r := range rounds {
		for _, m := range r.Matches {
			matches[m.ID] = m
		}
	}
	return Layout(g, matches, DefaultGeometry)
}

// Layout positions every match reachable from g.RootID.
// Children are ordered by input position so siblings keep their round order on every render.
func Layout(g *Graph, matches map[string]models.Match, geo Geometry) (*Tree, error) {
	nodes := make(map[string]*Node, len(g.Order))
	for _, id := range g.Order {
		nodes[id] = &Node{ID: id, ParentID: g.Parent[id], Match: matches[id]}
	}
	for _, id := range g.Order {
		n := nodes[id]
		if n.ParentID == "" {
			continue
		}
		// Dangling parents are simply not attached; the node ends up orphaned.
		if parent, ok := nodes[n.ParentID]; ok && parent != n {
			parent.Children = append(parent.Children, n)
		}
	}

	root := nodes[g.RootID]
	t := &Tree{Root: root, RootID: g.RootID, RootInferred: g.RootInferred}

	visited := make(map[string]bool, len(nodes))
	var leaf float64
	var place func(n *Node, depth int)
	place = func(n *Node, depth int) {
		visited[n.ID] = true
		n.Depth = depth
		if depth > t.MaxDepth {
			t.MaxDepth = depth
		}

		var placed []*Node
		for _, c := range n.Children {
			if visited[c.ID] {
				continue
			}
			place(c, depth+1)
			placed = append(placed, c)
		}
		n.Children = placed

		if len(placed) == 0 {
			n.Breadth = leaf
			leaf++
			return
		}
		n.Breadth = (placed[0].Breadth + placed[len(placed)-1].Breadth) / 2
	}
	place(root, 0)
	t.Leaves = int(leaf)

	var orphans []string
	for _, id := range g.Order {
		if visited[id] {
			t.Nodes = append(t.Nodes, nodes[id])
		} else {
			orphans = append(orphans, id)
		}
	}

	t.Project(geo)

	if len(orphans) > 0 {
		return t, &Anomaly{Kind: KindOrphanedNodes, MatchIDs: orphans}
	}
	return t, nil
}

// Project recomputes pixel coordinates and links for geo.
// The root is drawn rightmost and first-round matches leftmost.
func (t *Tree) Project(geo Geometry) {
	left := geo.Margin + geo.NodeWidth/2
	top := geo.Margin + geo.NodeHeight/2
	for _, n := range t.Nodes {
		n.X = left + float64(t.MaxDepth-n.Depth)*geo.ColumnWidth
		n.Y = top + n.Breadth*geo.RowHeight
	}

	t.Links = make([]Link, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		for _, c := range n.Children {
			t.Links = append(t.Links, Link{
				Source: n.ID,
				Target: c.ID,
				X1:     n.X - geo.NodeWidth/2,
				Y1:     n.Y,
				X2:     c.X + geo.NodeWidth/2,
				Y2:     c.Y,
			})
		}
	}

	rows := t.Leaves - 1
	if rows < 0 {
		rows = 0
	}
	t.Width = 2*geo.Margin + geo.NodeWidth + float64(t.MaxDepth)*geo.ColumnWidth
	t.Height = 2*geo.Margin + geo.NodeHeight + float64(rows)*geo.RowHeight
}

// Node returns the positioned match with the given id, or nil.
func (t *Tree) Node(id string) *Node {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
