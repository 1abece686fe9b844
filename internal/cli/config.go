package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvtree/prufer"
)

// Output formats understood by decode.
const (
	formatEdges  = "edges"
	formatMatrix = "matrix"
	formatDOT    = "dot"
	formatSVG    = "svg"
	formatJSON   = "json"
)

var formats = []string{formatEdges, formatMatrix, formatDOT, formatSVG, formatJSON}

// config holds defaults read from a --config TOML file.
//
//	method = "heap"
//	format = "json"
//	seed   = 42
type config struct {
	Method string `toml:"method"`
	Format string `toml:"format"`
	Seed   *int64 `toml:"seed"`
}

func defaultConfig() config {
	return config{Method: prufer.MethodScan, Format: formatEdges}
}

// readConfig decodes path over the defaults. Unknown keys are rejected so a
// typo does not silently fall back to a default.
func readConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return config{}, fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

func (c config) validate() error {
	switch c.Method {
	case prufer.MethodScan, prufer.MethodHeap:
	default:
		return fmt.Errorf("unknown method %q (want %s or %s)", c.Method, prufer.MethodScan, prufer.MethodHeap)
	}
	return validateFormat(c.Format)
}

func validateFormat(f string) error {
	for _, known := range formats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", f, strings.Join(formats, ", "))
}
