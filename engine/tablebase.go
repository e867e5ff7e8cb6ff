package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// Tablebases records where Syzygy endgame tables live and what the path
// scan found. Probing itself happens inside the search; the option layer
// only configures it.
type Tablebases struct {
	Path           string
	MaxCardinality int
	ProbeDepth     int
	ProbeLimit     int

	wdlFiles int
	dtzFiles int
}

// Init rescans path, a list of directories separated by the platform list
// separator. "<empty>" (the option default) or "" clears the configuration.
func (tb *Tablebases) Init(path string) {
	tb.Path = path
	tb.MaxCardinality = 0
	tb.wdlFiles = 0
	tb.dtzFiles = 0
	if path == "" || path == "<empty>" {
		return
	}

	for _, dir := range strings.Split(path, string(os.PathListSeparator)) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			switch filepath.Ext(name) {
			case ".rtbw":
				tb.wdlFiles++
			case ".rtbz":
				tb.dtzFiles++
			default:
				continue
			}
			// Names look like "KQvKR": piece count is every letter
			// except the side separator.
			base := strings.TrimSuffix(name, filepath.Ext(name))
			cardinality := len(base) - strings.Count(base, "v")
			if cardinality > tb.MaxCardinality {
				tb.MaxCardinality = cardinality
			}
		}
	}
}

func (tb *Tablebases) SetProbeDepth(d int) { tb.ProbeDepth = d }
func (tb *Tablebases) SetProbeLimit(n int) { tb.ProbeLimit = n }

// Usable reports whether any WDL tables were found.
func (tb *Tablebases) Usable() bool { return tb.wdlFiles > 0 }
