package rlepattern

import (
	"strings"
	"testing"

	"github.com/MuzammilCk/hashlife"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gliderRLE = `#N Glider
#C The smallest, most common spaceship
x = 3, y = 3, rule = B3/S23
bob$2bo$3o!
`

func TestParseGlider(t *testing.T) {
	p, err := Parse(strings.NewReader(gliderRLE))
	require.NoError(t, err)

	assert.Equal(t, int64(3), p.Width)
	assert.Equal(t, int64(3), p.Height)
	assert.Equal(t, "B3/S23", p.Rule)
	assert.ElementsMatch(t, []CellLocation{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, p.Cells)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("bo$2o!\n"))
	require.Error(t, err)
}

func TestParseRejectsUnterminatedBody(t *testing.T) {
	_, err := Parse(strings.NewReader("x = 2, y = 2\nbo$2o"))
	require.Error(t, err)
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	rle := "#comment one\n\n#comment two\nx = 1, y = 1\no!\n"
	p, err := Parse(strings.NewReader(rle))
	require.NoError(t, err)
	assert.Equal(t, []CellLocation{{X: 0, Y: 0}}, p.Cells)
}

func TestNextLocationCursor(t *testing.T) {
	p, err := Parse(strings.NewReader(gliderRLE))
	require.NoError(t, err)

	var got []CellLocation
	for p.MoreLocations() {
		got = append(got, p.NextLocation())
	}
	assert.Len(t, got, 5)
	assert.False(t, p.MoreLocations())

	w, h := p.MinimumBounds()
	assert.Equal(t, int64(3), w)
	assert.Equal(t, int64(3), h)
}

func TestLoadSeedsCanvas(t *testing.T) {
	p, err := Parse(strings.NewReader(gliderRLE))
	require.NoError(t, err)

	canvas := hashlife.Empty(6) // 64x64
	root, err := p.Load(canvas, 10, 10)
	require.NoError(t, err)

	assert.Equal(t, uint64(5), root.Population())
	assert.True(t, root.GetCell(11, 10))
	assert.True(t, root.GetCell(12, 11))
	assert.True(t, root.GetCell(10, 12))
	assert.True(t, root.GetCell(11, 12))
	assert.True(t, root.GetCell(12, 12))
	assert.False(t, root.GetCell(10, 10))
}

func TestLoadGrowsCanvasWhenNeeded(t *testing.T) {
	p, err := Parse(strings.NewReader(gliderRLE))
	require.NoError(t, err)

	canvas := hashlife.Empty(1) // 2x2, far too small
	root, err := p.Load(canvas, 0, 0)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, int64(1)<<root.Level(), int64(3))
	assert.Equal(t, uint64(5), root.Population())
}
