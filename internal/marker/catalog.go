package marker

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// defaultCatalogColor is used when an entry has no colour.
var defaultCatalogColor = color.RGBA{R: 51, G: 128, B: 230, A: 204}

// CatalogEntry is one marker in a YAML catalog (e.g. assets/markers.yaml).
// Category-specific fields are only read for the matching category.
type CatalogEntry struct {
	ID          int        `yaml:"id"`
	Name        string     `yaml:"name"`
	Position    [3]float32 `yaml:"position"`
	Radius      float32    `yaml:"radius,omitempty"`
	Color       string     `yaml:"color,omitempty"`
	LastKnown   string     `yaml:"last_known,omitempty"`
	Timestamp   string     `yaml:"timestamp,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Category    string     `yaml:"category,omitempty"`

	Difficulty string `yaml:"difficulty,omitempty"`
	Frequency  string `yaml:"frequency,omitempty"`
	Heading    string `yaml:"heading,omitempty"`
	Speed      string `yaml:"speed,omitempty"`
}

// Catalog is the top-level YAML document.
type Catalog struct {
	Radius  float32        `yaml:"radius,omitempty"`
	Markers []CatalogEntry `yaml:"markers"`
}

// LoadCatalog reads and parses the YAML catalog at path.
func LoadCatalog(path string) ([]*Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	ms, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return ms, nil
}

// ParseCatalog builds markers from a YAML document. Explicit IDs must be unique. Entries without
// an ID take their position (1-based), or the next free ID above it when that one is taken.
func ParseCatalog(data []byte) ([]*Marker, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	defaultRadius := cat.Radius
	if defaultRadius <= 0 {
		defaultRadius = DefaultScatterOptions().Radius
	}

	taken := make(map[int]int, len(cat.Markers))
	for i, e := range cat.Markers {
		if e.ID == 0 {
			continue
		}
		if prev, dup := taken[e.ID]; dup {
			return nil, fmt.Errorf("entry %d: %w: %d (first used by entry %d)", i+1, ErrDuplicateID, e.ID, prev)
		}
		taken[e.ID] = i + 1
	}

	out := make([]*Marker, 0, len(cat.Markers))
	for i, e := range cat.Markers {
		id := e.ID
		if id == 0 {
			id = i + 1
			for taken[id] != 0 {
				id++
			}
			taken[id] = i + 1
		}
		m, err := e.build(id, defaultRadius)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (e CatalogEntry) build(id int, defaultRadius float32) (*Marker, error) {
	cat, err := ParseCategory(e.Category)
	if err != nil {
		return nil, err
	}
	var aux Aux
	switch cat {
	case CategoryObstacle:
		aux = Obstacle{Difficulty: e.Difficulty}
	case CategoryBeacon:
		aux = Beacon{Frequency: e.Frequency}
	case CategoryVessel:
		aux = Vessel{Heading: e.Heading, Speed: e.Speed}
	}

	c := defaultCatalogColor
	if e.Color != "" {
		parsed, ok := parseHexColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("invalid color %q", e.Color)
		}
		c = parsed
	}
	radius := e.Radius
	if radius <= 0 {
		radius = defaultRadius
	}
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("Marker %d", id)
	}
	pos := mgl32.Vec3{e.Position[0], e.Position[1], e.Position[2]}
	return New(pos, radius, c, Payload{
		ID:          id,
		Name:        name,
		LastKnown:   e.LastKnown,
		Timestamp:   e.Timestamp,
		Description: e.Description,
		Aux:         aux,
	}), nil
}

// parseHexColor accepts #RGB, #RRGGBB and #RRGGBBAA.
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]}) + "ff"
	case 6:
		s += "ff"
	case 8:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}
