// Package rlepattern loads Game of Life patterns written in the standard
// RLE format (as used by Golly and most pattern catalogs) and seeds them
// onto a hashlife canvas. It is an external collaborator: it only calls
// the hashlife package's public API (SetCell, Expand) and never reaches
// into canonical node internals.
package rlepattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MuzammilCk/hashlife"
)

// CellLocation identifies a live cell's offset within a pattern's bounding
// box, with (0, 0) at the pattern's top-left corner.
type CellLocation struct {
	X, Y int64
}

// Pattern is a parsed RLE pattern: its declared bounding box plus the list
// of cells that are alive within it.
type Pattern struct {
	Width, Height int64
	Rule          string
	Cells         []CellLocation

	i int
}

// NextLocation returns the next live cell location, in the same
// cursor-based style as a LocationProvider. Callers must check
// MoreLocations before calling.
func (p *Pattern) NextLocation() CellLocation {
	loc := p.Cells[p.i]
	p.i++
	return loc
}

// MoreLocations reports whether NextLocation has more cells to give.
func (p *Pattern) MoreLocations() bool {
	return p.i < len(p.Cells)
}

// MinimumBounds reports the pattern's declared width and height.
func (p *Pattern) MinimumBounds() (width, height int64) {
	return p.Width, p.Height
}

// Parse reads an RLE-encoded pattern from r. It supports the header line
// ("x = <w>, y = <h>[, rule = <rule>]"), the run-length-encoded body using
// 'b' (dead), 'o' (alive), '$' (end of row) tokens, and the terminating
// '!'. Comment lines beginning with '#' are skipped.
func Parse(r io.Reader) (*Pattern, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	p := &Pattern{}
	headerSeen := false
	var body strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSeen {
			if err := parseHeader(line, p); err != nil {
				return nil, err
			}
			headerSeen = true
			continue
		}
		body.WriteString(line)
		if strings.Contains(line, "!") {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rlepattern: reading pattern: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("rlepattern: missing header line")
	}

	cells, err := parseBody(body.String())
	if err != nil {
		return nil, err
	}
	p.Cells = cells
	return p, nil
}

func parseHeader(line string, p *Pattern) error {
	fields := strings.Split(line, ",")
	for _, f := range fields {
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		switch key {
		case "x":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("rlepattern: bad width %q: %w", val, err)
			}
			p.Width = n
		case "y":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("rlepattern: bad height %q: %w", val, err)
			}
			p.Height = n
		case "rule":
			p.Rule = val
		}
	}
	if p.Width == 0 || p.Height == 0 {
		return fmt.Errorf("rlepattern: header missing x/y dimensions")
	}
	return nil
}

func parseBody(body string) ([]CellLocation, error) {
	var cells []CellLocation
	var x, y int64
	var count int64

	flush := func() int64 {
		if count == 0 {
			return 1
		}
		n := count
		count = 0
		return n
	}

	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
			count = count*10 + int64(r-'0')
		case r == 'b':
			x += flush()
		case r == 'o':
			n := flush()
			for i := int64(0); i < n; i++ {
				cells = append(cells, CellLocation{X: x, Y: y})
				x++
			}
		case r == '$':
			y += flush()
			x = 0
		case r == '!':
			return cells, nil
		default:
			return nil, fmt.Errorf("rlepattern: unexpected token %q in pattern body", r)
		}
	}
	return nil, fmt.Errorf("rlepattern: pattern body missing terminating '!'")
}

// Load seeds p's live cells onto canvas at the given origin, expanding the
// canvas with Expand as needed to make every cell fit, and returns the
// resulting root. canvas may be hashlife.Empty(level) for any level; Load
// grows it automatically.
func (p *Pattern) Load(canvas *hashlife.Node, originX, originY int64) (*hashlife.Node, error) {
	root := canvas
	needed := maxInt64(originX+p.Width, originY+p.Height)
	for int64(1)<<root.Level() < needed {
		root = root.Expand()
	}

	for _, c := range p.Cells {
		var err error
		root, err = root.SetCell(originX+c.X, originY+c.Y, true)
		if err != nil {
			return nil, fmt.Errorf("rlepattern: placing cell (%d,%d): %w", c.X, c.Y, err)
		}
	}
	return root, nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
