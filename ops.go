package hashlife

// Empty returns the canonical all-dead node at the given level. It is
// computed once per level and cached for O(1) retrieval on subsequent
// calls.
func Empty(level uint8) *Node {
	return defaultPool.emptyNode(level)
}

// Leaf returns one of the two canonical level-0 nodes.
func Leaf(alive bool) *Node {
	return defaultPool.leaf(alive)
}

// Create returns the canonical level-`level` node built from the four given
// children. It fails with *InvariantError if any child is not at level
// `level-1`.
func Create(level uint8, nw, ne, sw, se *Node) (*Node, error) {
	if level == 0 {
		return nil, &InvariantError{Op: "Create", Detail: "level 0 nodes have no children; use Leaf"}
	}
	want := level - 1
	if nw.level != want || ne.level != want || sw.level != want || se.level != want {
		return nil, &InvariantError{Op: "Create", Detail: "child level mismatch"}
	}
	return defaultPool.intern(level, nw, ne, sw, se), nil
}

// mustCreate is Create without the error return, for call sites that have
// already established the child-level contract by construction (internal
// composition helpers).
func mustCreate(level uint8, nw, ne, sw, se *Node) *Node {
	n, err := Create(level, nw, ne, sw, se)
	if err != nil {
		panic(err)
	}
	return n
}

// GetCell reports whether the cell at node-local coordinates (x, y) is
// alive. Coordinates outside [0, 2^level) return false.
func (n *Node) GetCell(x, y int64) bool {
	if n.IsLeaf() && (x != 0 || y != 0) {
		return false
	}
	for {
		if n.IsLeaf() {
			return n.alive
		}
		side := int64(1) << (n.level - 1)
		if x < 0 || y < 0 || x >= side<<1 || y >= side<<1 {
			return false
		}
		if x < side {
			if y < side {
				n, x, y = n.nw, x, y
			} else {
				n, x, y = n.sw, x, y-side
			}
		} else {
			if y < side {
				n, x, y = n.ne, x-side, y
			} else {
				n, x, y = n.se, x-side, y-side
			}
		}
	}
}

// SetCell returns a node identical to n except that the cell at node-local
// coordinates (x, y) is set to alive. It fails with *BoundsError if (x, y)
// is outside [0, 2^level). Setting a cell to its current value returns n
// itself (same canonical identity).
func (n *Node) SetCell(x, y int64, alive bool) (*Node, error) {
	side := int64(1) << n.level
	if x < 0 || y < 0 || x >= side || y >= side {
		return nil, &BoundsError{Level: n.level, X: x, Y: y}
	}
	return n.setCell(x, y, alive), nil
}

func (n *Node) setCell(x, y int64, alive bool) *Node {
	if n.IsLeaf() {
		return Leaf(alive)
	}
	half := int64(1) << (n.level - 1)
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se
	if x < half {
		if y < half {
			nw = nw.setCell(x, y, alive)
		} else {
			sw = sw.setCell(x, y-half, alive)
		}
	} else {
		if y < half {
			ne = ne.setCell(x-half, y, alive)
		} else {
			se = se.setCell(x-half, y-half, alive)
		}
	}
	if nw == n.nw && ne == n.ne && sw == n.sw && se == n.se {
		return n
	}
	return mustCreate(n.level, nw, ne, sw, se)
}

// Expand returns a node one level higher whose geometric center is exactly
// n: each of n's children is placed in the far corner of an otherwise-empty
// level-n.Level quadrant. For any in-range (x, y) at n's level,
// Expand(n).GetCell(x+2^(level-1), y+2^(level-1)) == n.GetCell(x, y).
func (n *Node) Expand() *Node {
	if n.IsLeaf() {
		// A level-0 node has no children to redistribute; it simply
		// becomes the SE leaf of the new level-1 node, the degenerate
		// analogue of placing n.se in the new SE quadrant's NW corner.
		dead := Leaf(false)
		return mustCreate(1, dead, dead, dead, n)
	}
	e := Empty(n.level - 1)
	nw := mustCreate(n.level, e, e, e, n.nw)
	ne := mustCreate(n.level, e, e, n.ne, e)
	sw := mustCreate(n.level, e, n.sw, e, e)
	se := mustCreate(n.level, n.se, e, e, e)
	return mustCreate(n.level+1, nw, ne, sw, se)
}

// centeredHorizontal returns the level-k node straddling the seam between
// two side-by-side level-k nodes W (west) and E (east).
func centeredHorizontal(w, e *Node) *Node {
	return mustCreate(w.level, w.ne, e.nw, w.se, e.sw)
}

// centeredVertical returns the level-k node straddling the seam between two
// stacked level-k nodes N (north) and S (south).
func centeredVertical(n, s *Node) *Node {
	return mustCreate(n.level, n.sw, n.se, s.nw, s.ne)
}

// centeredSubnode returns the exact center of a 2x2 grid of level-k
// neighbors, as a level-k node built from their inner level-(k-1) corners.
func centeredSubnode(nw, ne, sw, se *Node) *Node {
	return mustCreate(nw.level, nw.se, ne.sw, sw.ne, se.nw)
}
