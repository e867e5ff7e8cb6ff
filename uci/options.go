package uci

import (
	"strconv"
	"strings"
)

// OptionsMap holds the engine's options keyed case-insensitively by name.
// Each map owns its own insertion counter, so idx ordering is deterministic
// per instance. Options are added once at startup and never removed.
type OptionsMap struct {
	entries     map[string]*Option
	insertCount int
}

func NewOptionsMap() *OptionsMap {
	return &OptionsMap{entries: make(map[string]*Option)}
}

// Add stores o under name and stamps it with the next insertion index.
func (m *OptionsMap) Add(name string, o *Option) {
	o.name = name
	o.idx = m.insertCount
	m.insertCount++
	m.entries[strings.ToLower(name)] = o
}

// Get returns the option registered under name (any casing), or nil.
func (m *OptionsMap) Get(name string) *Option {
	return m.entries[strings.ToLower(name)]
}

func (m *OptionsMap) Has(name string) bool {
	_, ok := m.entries[strings.ToLower(name)]
	return ok
}

func (m *OptionsMap) Len() int { return len(m.entries) }

// String prints every option in chronological insertion order (the idx
// field) in the format defined by the UCI protocol. The inner scan is
// quadratic but the map holds a few dozen entries at most.
func (m *OptionsMap) String() string {
	var sb strings.Builder
	for idx := 0; idx < m.insertCount; idx++ {
		for _, o := range m.entries {
			if o.idx != idx {
				continue
			}
			sb.WriteString("\noption name ")
			sb.WriteString(o.name)
			sb.WriteString(" type ")
			sb.WriteString(o.Type.String())

			switch o.Type {
			case String, Check, Combo:
				sb.WriteString(" default ")
				sb.WriteString(o.defaultValue)
			case Spin:
				def, _ := strconv.ParseFloat(o.defaultValue, 64)
				sb.WriteString(" default ")
				sb.WriteString(strconv.Itoa(int(def)))
				sb.WriteString(" min ")
				sb.WriteString(strconv.Itoa(o.min))
				sb.WriteString(" max ")
				sb.WriteString(strconv.Itoa(o.max))
			}
			break
		}
	}
	return sb.String()
}
