package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MuzammilCk/hashlife"
	"github.com/MuzammilCk/hashlife/rlepattern"
)

// loadCanvas seeds an empty level-8 canvas (256x256, ample room for the
// built-in patterns and small RLE files) with the configured pattern and
// returns the resulting root.
func loadCanvas(c *Config) (*hashlife.Node, error) {
	rle, ok := lookupBuiltin(c.Pattern)
	var src strings.Reader
	if ok {
		src = *strings.NewReader(rle)
	} else {
		data, err := os.ReadFile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q is not a built-in (%s) and could not be read as a file: %w",
				c.Pattern, strings.Join(builtinPatternNames(), ", "), err)
		}
		src = *strings.NewReader(string(data))
	}

	pattern, err := rlepattern.Parse(&src)
	if err != nil {
		return nil, err
	}

	canvas := hashlife.Empty(8)
	return pattern.Load(canvas, c.OriginX, c.OriginY)
}
