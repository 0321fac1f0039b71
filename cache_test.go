package hashlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectGarbageRetainsReachableNodes(t *testing.T) {
	root := setAll(t, Empty(3), [][2]int64{{1, 1}, {2, 2}})
	rootID := root.ID()

	CollectGarbage([]*Node{root})

	// root and its children must still resolve through the pool to the same
	// canonical structure (re-creating it returns the identical node)
	rebuilt := setAll(t, Empty(3), [][2]int64{{1, 1}, {2, 2}})
	assert.Equal(t, rootID, rebuilt.ID())
	assert.Same(t, root.NW(), rebuilt.NW())
}

func TestCollectGarbageKeepsEmptyLevelsReachable(t *testing.T) {
	e5 := Empty(5)
	CollectGarbage(nil)
	assert.Same(t, e5, Empty(5), "cached empty-level nodes must survive a GC with no roots")
}

func TestCollectGarbagePrunesStepMemo(t *testing.T) {
	root := setAll(t, Empty(2), [][2]int64{{1, 1}, {2, 1}, {1, 2}, {2, 2}})
	result, err := Step(root)
	require.NoError(t, err)
	_, ok := defaultMemo.get(root.id)
	require.True(t, ok)

	CollectGarbage([]*Node{result}) // root itself is not kept alive

	_, ok = defaultMemo.get(root.id)
	assert.False(t, ok, "a memo entry keyed on an unreachable node must be swept")
}

func TestCollectGarbageWithRootKeptAliveStillEmptiesMemo(t *testing.T) {
	root := setAll(t, Empty(2), [][2]int64{{1, 1}, {2, 1}, {1, 2}, {2, 2}})
	_, err := Step(root)
	require.NoError(t, err)
	require.NotEqual(t, 0, defaultMemo.size())

	CollectGarbage([]*Node{root}) // root itself kept alive, unlike the case above

	assert.Equal(t, 0, defaultMemo.size(), "the memo table must be empty even when the memoized call's input node is kept alive")
}

func TestClearCacheResetsMemo(t *testing.T) {
	root := setAll(t, Empty(2), [][2]int64{{1, 1}, {2, 1}, {1, 2}, {2, 2}})
	_, err := Step(root)
	require.NoError(t, err)

	sizeBefore := defaultPool.size()
	ClearCache()
	assert.Less(t, defaultPool.size(), sizeBefore+1)
	assert.Equal(t, 0, defaultMemo.size())

	// the pool still works afterwards
	rebuilt := setAll(t, Empty(2), [][2]int64{{1, 1}, {2, 1}, {1, 2}, {2, 2}})
	assert.Equal(t, uint64(4), rebuilt.Population())
}
