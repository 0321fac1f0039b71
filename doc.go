/*Package hashlife implements an infinite-canvas Conway's Game of Life engine
using Bill Gosper's hashlife algorithm. The universe is a quadtree divided
into four sub-quadrants:

	NW|NE
	-----
	SW|SE

A node at level l covers a 2^l x 2^l square of cells; level 0 is a single
cell. Nodes are canonical: two nodes with the same level and the same four
children (or, at level 0, the same alive value) are always the same
instance, identified by a stable ID. All apparent mutation (SetCell, Expand)
returns a new canonical node; existing nodes and the subtrees reachable from
them are never changed in place.

Step memoizes its results by node ID, so recomputing the future of a
previously seen configuration is an O(1) lookup. Advance keeps no memo of
its own; it reuses Step's memo wherever it delegates to Step. ClearCache and
CollectGarbage let a caller bound the memory held by the interner and memo
table over a long-running simulation.
*/
package hashlife
