package hashlife

import (
	"math"
	"sync"
)

// pool is the process-wide node interner: a map keyed on canonical child
// ids (a stable, structural key), guarded by a mutex, handing out a
// monotonic, stable ID per node.
type pool struct {
	mu              sync.RWMutex
	byKey           map[nodeKey]*Node
	empty           []*Node // empty[level] is the cached all-dead node at that level
	deadLeaf        *Node
	liveLeaf        *Node
	nextID          uint64
	metrics         *Metrics
}

var defaultPool = newPool()

func newPool() *pool {
	p := &pool{
		byKey: make(map[nodeKey]*Node),
	}
	p.deadLeaf = newLeafNode(p, false)
	p.liveLeaf = newLeafNode(p, true)
	p.empty = []*Node{p.deadLeaf}
	return p
}

func newLeafNode(p *pool, alive bool) *Node {
	pop := uint64(0)
	if alive {
		pop = 1
	}
	n := &Node{level: 0, alive: alive, population: pop, id: p.allocID()}
	return n
}

func (p *pool) allocID() uint64 {
	if p.nextID == math.MaxUint64 {
		panic(newCapacityError("node id space exhausted"))
	}
	id := p.nextID
	p.nextID++
	return id
}

// AttachMetrics installs m as the destination for interner/cache
// instrumentation on the default pool. Passing nil detaches metrics.
func AttachMetrics(m *Metrics) {
	defaultPool.mu.Lock()
	defer defaultPool.mu.Unlock()
	defaultPool.metrics = m
}

// leaf returns the canonical level-0 node for the given state.
func (p *pool) leaf(alive bool) *Node {
	if alive {
		return p.liveLeaf
	}
	return p.deadLeaf
}

// intern returns the canonical node for the given level and children,
// creating it if this exact structure hasn't been seen before. Callers must
// have already validated the child-level contract.
func (p *pool) intern(level uint8, nw, ne, sw, se *Node) *Node {
	key := childKey(level, nw, ne, sw, se)

	p.mu.RLock()
	if n, ok := p.byKey[key]; ok {
		p.mu.RUnlock()
		p.recordLookup(true)
		return n
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if n, ok := p.byKey[key]; ok {
		p.recordLookup(true)
		return n
	}
	n := &Node{
		level:      level,
		nw:         nw,
		ne:         ne,
		sw:         sw,
		se:         se,
		population: nw.population + ne.population + sw.population + se.population,
		id:         p.allocID(),
	}
	p.byKey[key] = n
	p.recordLookupLocked(false)
	return n
}

func (p *pool) recordLookup(hit bool) {
	if p.metrics == nil {
		return
	}
	p.metrics.recordLookup(hit)
}

func (p *pool) recordLookupLocked(hit bool) {
	if p.metrics == nil {
		return
	}
	p.metrics.recordLookup(hit)
	p.metrics.setPoolSize(len(p.byKey) + 2)
}

// emptyNode returns the canonical all-dead node at level, growing the
// cached table and recursively building missing levels as needed.
func (p *pool) emptyNode(level uint8) *Node {
	p.mu.RLock()
	if int(level) < len(p.empty) {
		n := p.empty[level]
		p.mu.RUnlock()
		return n
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	for int(level) >= len(p.empty) {
		child := p.empty[len(p.empty)-1]
		lvl := uint8(len(p.empty))
		key := childKey(lvl, child, child, child, child)
		n, ok := p.byKey[key]
		if !ok {
			n = &Node{
				level:      lvl,
				nw:         child,
				ne:         child,
				sw:         child,
				se:         child,
				population: 0,
				id:         p.allocID(),
			}
			p.byKey[key] = n
		}
		p.empty = append(p.empty, n)
	}
	return p.empty[level]
}

// size returns the number of distinct level>=1 nodes currently interned,
// plus the two level-0 singletons.
func (p *pool) size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byKey) + 2
}
