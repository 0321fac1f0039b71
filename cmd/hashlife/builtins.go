package main

import "strings"

// builtinPatterns holds a handful of well-known still-lifes, oscillators
// and spaceships, in RLE format, so the demo can run without a pattern file.
var builtinPatterns = map[string]string{
	"glider": "x = 3, y = 3, rule = B3/S23\n" +
		"bob$2bo$3o!\n",
	"blinker": "x = 3, y = 1, rule = B3/S23\n" +
		"3o!\n",
	"block": "x = 2, y = 2, rule = B3/S23\n" +
		"2o$2o!\n",
}

func builtinPatternNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	return names
}

func lookupBuiltin(name string) (string, bool) {
	rle, ok := builtinPatterns[strings.ToLower(name)]
	return rle, ok
}
