package marker

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// TimestampLayout is used for every payload timestamp produced by this package.
const TimestampLayout = "2006-01-02 15:04:05"

// ScatterOptions controls random marker placement.
// Markers are placed uniformly inside a cube of side BoxSize centred on the origin.
// Seed == 0 uses a time-based seed. Now stamps the payloads; nil means time.Now.
type ScatterOptions struct {
	Count   int
	Radius  float32
	BoxSize float32
	Seed    int64
	Now     func() time.Time
}

// DefaultScatterOptions returns 45 markers of radius 0.8 in a 100-unit box.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Count:   45,
		Radius:  0.8,
		BoxSize: 100,
	}
}

var (
	difficulties = []string{"Easy", "Moderate", "Hard", "Extreme"}
	headings     = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	sightings    = []string{"Unsurveyed", "Stationary", "Drifting", "Signal weak", "Confirmed by sonar"}
)

// Scatter builds opts.Count markers with blueish colours and generated payloads.
// Most markers are obstacles; roughly one in five is a beacon and one in five a vessel.
func Scatter(opts ScatterOptions) []*Marker {
	if opts.Count <= 0 {
		return nil
	}
	if opts.Radius <= 0 {
		opts.Radius = 0.8
	}
	if opts.BoxSize <= 0 {
		opts.BoxSize = 100
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := rand.New(rand.NewSource(seed))
	stamp := now().Format(TimestampLayout)

	out := make([]*Marker, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		id := i + 1
		pos := mgl32.Vec3{
			(rng.Float32() - 0.5) * opts.BoxSize,
			(rng.Float32() - 0.5) * opts.BoxSize,
			(rng.Float32() - 0.5) * opts.BoxSize,
		}
		c := color.RGBA{
			R: unit8(0.1 + rng.Float32()*0.2),
			G: unit8(0.3 + rng.Float32()*0.4),
			B: unit8(0.6 + rng.Float32()*0.4),
			A: unit8(0.8),
		}

		var aux Aux
		var kind string
		switch roll := rng.Intn(5); roll {
		case 0:
			kind = "Beacon"
			aux = Beacon{Frequency: fmt.Sprintf("%.1f MHz", 100+rng.Float32()*60)}
		case 1:
			kind = "Vessel"
			aux = Vessel{
				Heading: headings[rng.Intn(len(headings))],
				Speed:   fmt.Sprintf("%d kn", 2+rng.Intn(20)),
			}
		default:
			kind = "Obstacle"
			aux = Obstacle{Difficulty: difficulties[rng.Intn(len(difficulties))]}
		}

		out = append(out, New(pos, opts.Radius, c, Payload{
			ID:        id,
			Name:      fmt.Sprintf("%s %d", kind, id),
			LastKnown: sightings[rng.Intn(len(sightings))],
			Timestamp: stamp,
			Description: fmt.Sprintf("This %s is located at (%.2f, %.2f, %.2f). It presents a unique challenge in the course.",
				lowerFirst(kind), pos.X(), pos.Y(), pos.Z()),
			Aux: aux,
		}))
	}
	return out
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
