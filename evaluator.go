package hashlife

import "sync"

// memoTable is the evaluator's per-run memoization cache, keyed by the
// canonical identity of the node being stepped. It is kept separate from
// the interner's node table because Step's memo key (a node ID) and the
// interner's key (structural child ids) serve different purposes, even
// though both ultimately key off the same canonical identities.
type memoTable struct {
	mu   sync.RWMutex
	memo map[uint64]*Node
}

var defaultMemo = &memoTable{memo: make(map[uint64]*Node)}

func (t *memoTable) get(id uint64) (*Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.memo[id]
	return n, ok
}

func (t *memoTable) put(id uint64, result *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.memo[id] = result
}

func (t *memoTable) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.memo = make(map[uint64]*Node)
}

func (t *memoTable) size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.memo)
}

// Step advances the centered 2^(level-1) x 2^(level-1) region of n forward
// by exactly 2^(level-2) generations, returning a node at level-1. Results
// are memoized by n's canonical ID, so repeated calls with the same node
// (by identity) are O(1) after the first.
//
// Step fails with *InvariantError if n.Level() < 2.
func Step(n *Node) (*Node, error) {
	if n.level < 2 {
		return nil, &InvariantError{Op: "Step", Detail: "level must be >= 2"}
	}
	return step(n), nil
}

func step(n *Node) *Node {
	if result, ok := defaultMemo.get(n.id); ok {
		if m := defaultPool.metrics; m != nil {
			m.recordStep(true)
		}
		return result
	}

	var result *Node
	if n.level == 2 {
		result = baseCaseStep(n)
	} else {
		result = stepRecursive(n)
	}

	defaultMemo.put(n.id, result)
	if m := defaultPool.metrics; m != nil {
		m.recordStep(false)
	}
	return result
}

// stepRecursive implements the two-pass macrocell recursion: the nine
// overlapping level-(k-1) sub-nodes are each stepped once (advancing
// 2^(k-3) generations), regrouped into four level-(k-1) intermediates, and
// those four are stepped again (another 2^(k-3) generations), for a total
// advance of 2^(k-2) generations.
func stepRecursive(n *Node) *Node {
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se

	n00, n01, n02 := nw, centeredHorizontal(nw, ne), ne
	n10, n11, n12 := centeredVertical(nw, sw), centeredSubnode(nw, ne, sw, se), centeredVertical(ne, se)
	n20, n21, n22 := sw, centeredHorizontal(sw, se), se

	r00, r01, r02 := step(n00), step(n01), step(n02)
	r10, r11, r12 := step(n10), step(n11), step(n12)
	r20, r21, r22 := step(n20), step(n21), step(n22)

	level := n.level - 1
	a := mustCreate(level, r00, r01, r10, r11)
	b := mustCreate(level, r01, r02, r11, r12)
	c := mustCreate(level, r10, r11, r20, r21)
	d := mustCreate(level, r11, r12, r21, r22)

	return mustCreate(level, step(a), step(b), step(c), step(d))
}

// baseCaseStep evolves a 4x4 (level-2) node one generation forward, using
// the classic bitmask Moore-neighbor trick: extract all sixteen cells into
// a 16-bit mask (row-major, top-left first) and apply Conway's B3/S23 rule
// to each of the four inner cells via popcount-on-a-masked-window.
func baseCaseStep(n *Node) *Node {
	var bits uint16
	for y := int64(0); y < 4; y++ {
		for x := int64(0); x < 4; x++ {
			var bit uint16
			if n.GetCell(x, y) {
				bit = 1
			}
			bits = (bits << 1) | bit
		}
	}
	nw := oneGeneration(bits >> 5)
	ne := oneGeneration(bits >> 4)
	sw := oneGeneration(bits >> 1)
	se := oneGeneration(bits)
	return mustCreate(1, nw, ne, sw, se)
}

// oneGeneration applies Conway's rule to the cell at bit 5 of mask, given a
// window of the surrounding 4x4 neighborhood packed into mask's low 16
// bits. Bit 5 of the (possibly shifted) mask is always the cell whose next
// state is being computed; bits set in 0x757 are its eight Moore
// neighbors.
func oneGeneration(mask uint16) *Node {
	if mask == 0 {
		return Leaf(false)
	}
	self := (mask >> 5) & 1
	neighbors := mask & 0x757
	count := 0
	for neighbors != 0 {
		count++
		neighbors &= neighbors - 1
	}
	alive := count == 3 || (count == 2 && self != 0)
	return Leaf(alive)
}

// Advance evolves the centered 2^(level-1) x 2^(level-1) region of n
// forward by exactly `steps` generations (0 <= steps <= 2^(level-2)),
// returning a node at level-1. Unlike Step, Advance is not limited to the
// full 2^(level-2)-generation macro-step: it supports the smaller jumps
// (including a single generation) that smooth animation needs.
//
// Advance fails with *InvariantError if n.Level() < 2.
func Advance(n *Node, steps uint64) (*Node, error) {
	if n.level < 2 {
		return nil, &InvariantError{Op: "Advance", Detail: "level must be >= 2"}
	}
	if m := defaultPool.metrics; m != nil {
		m.recordAdvance()
	}
	return advance(n, steps), nil
}

func advance(n *Node, steps uint64) *Node {
	pow := uint64(1) << (n.level - 2)

	switch {
	case steps == 0:
		return centeredSubnode(n.nw, n.ne, n.sw, n.se)
	case steps == pow:
		return step(n)
	case n.level == 2:
		return baseCaseStep(n)
	default:
		return advanceRecursive(n, steps)
	}
}

// advanceRecursive implements the sub-macrostep case. When steps fits in
// half a macro-step (steps <= 2^(k-3)), the nine overlapping sub-nodes are
// each advanced by the same step count, then the inner corners of each
// adjacent quartet are combined directly (no second advance pass). When
// steps is larger, the nine are first stepped by 2^(k-3) generations and
// regrouped into four intermediates as in stepRecursive, and those four
// are advanced by the remaining steps-2^(k-3) generations.
func advanceRecursive(n *Node, steps uint64) *Node {
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se

	n00, n01, n02 := nw, centeredHorizontal(nw, ne), ne
	n10, n11, n12 := centeredVertical(nw, sw), centeredSubnode(nw, ne, sw, se), centeredVertical(ne, se)
	n20, n21, n22 := sw, centeredHorizontal(sw, se), se

	if half := uint64(1) << (n.level - 3); steps > half {
		r00, r01, r02 := step(n00), step(n01), step(n02)
		r10, r11, r12 := step(n10), step(n11), step(n12)
		r20, r21, r22 := step(n20), step(n21), step(n22)

		level := n.level - 1
		a := mustCreate(level, r00, r01, r10, r11)
		b := mustCreate(level, r01, r02, r11, r12)
		c := mustCreate(level, r10, r11, r20, r21)
		d := mustCreate(level, r11, r12, r21, r22)

		rest := steps - half
		return mustCreate(level, advance(a, rest), advance(b, rest), advance(c, rest), advance(d, rest))
	}

	r00, r01, r02 := advance(n00, steps), advance(n01, steps), advance(n02, steps)
	r10, r11, r12 := advance(n10, steps), advance(n11, steps), advance(n12, steps)
	r20, r21, r22 := advance(n20, steps), advance(n21, steps), advance(n22, steps)

	level := n.level - 2
	nwChild := mustCreate(level, r00.se, r01.sw, r10.ne, r11.nw)
	neChild := mustCreate(level, r01.se, r02.sw, r11.ne, r12.nw)
	swChild := mustCreate(level, r10.se, r11.sw, r20.ne, r21.nw)
	seChild := mustCreate(level, r11.se, r12.sw, r21.ne, r22.nw)

	return mustCreate(level+1, nwChild, neChild, swChild, seChild)
}
