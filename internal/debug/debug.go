package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is the scene summary drawn under the FPS counter.
type Stats struct {
	Markers  int
	Selected string // empty when nothing is selected
	Camera   [3]float32
}

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter and scene stats are drawn (top-left, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders any enabled overlays in the top-left corner, clear of the detail panel.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw(s Stats) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.lastFpsText == ""
	y := int32(fpsPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			sel := s.Selected
			if sel == "" {
				sel = "none"
			}
			d.lastStats = fmt.Sprintf("Markers: %d  Selected: %s  Camera: (%.1f, %.1f, %.1f)",
				s.Markers, sel, s.Camera[0], s.Camera[1], s.Camera[2])
		}
		rl.DrawText(d.lastFpsText, fpsPadding, y, fpsFontSize, rl.Green)
		y += fpsLineHeight
		rl.DrawText(d.lastStats, fpsPadding, y, fpsFontSize, rl.Green)
		y += fpsLineHeight
	}

	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		rl.DrawText(d.lastMemText, fpsPadding, y, fpsFontSize, rl.Green)
	}
}
