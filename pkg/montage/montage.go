// Package montage provides per-channel spatial metadata: electrode
// coordinates loaded from YAML layout files and the 3D-to-2D projections
// used to lay out topographic plots. Projections are pure geometry; no
// rendering happens here.
package montage

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Channel is the spatial metadata of one electrode. Coordinates follow
// the common head-centered convention: x toward the right ear, y toward
// the nasion, z toward the vertex, in arbitrary but consistent units.
type Channel struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
}

// Layout is a channel-metadata table keyed by channel name.
type Layout struct {
	Name     string    `yaml:"name"`
	Channels []Channel `yaml:"channels"`

	index map[string]int
}

// Load reads a YAML layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML layout document.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if len(l.Channels) == 0 {
		return nil, fmt.Errorf("layout %q has no channels", l.Name)
	}
	l.index = make(map[string]int, len(l.Channels))
	for i, ch := range l.Channels {
		if _, dup := l.index[ch.Name]; dup {
			return nil, fmt.Errorf("layout %q has duplicate channel %q", l.Name, ch.Name)
		}
		l.index[ch.Name] = i
	}
	return &l, nil
}

// Get returns the metadata of a named channel.
func (l *Layout) Get(name string) (Channel, bool) {
	i, ok := l.index[name]
	if !ok {
		return Channel{}, false
	}
	return l.Channels[i], true
}

// Names returns the channel names in layout order.
func (l *Layout) Names() []string {
	names := make([]string, len(l.Channels))
	for i, ch := range l.Channels {
		names[i] = ch.Name
	}
	return names
}

// Missing returns the names among wanted that the layout lacks, sorted.
func (l *Layout) Missing(wanted []string) []string {
	var missing []string
	for _, name := range wanted {
		if _, ok := l.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
