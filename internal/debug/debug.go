// Package debug draws the optional stats overlay: FPS, heap use, and the
// entity/dropped counts of the last generation.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize = 20
	overlayPadding  = 12
	overlayLine     = overlayFontSize + 4
	// Refresh the text every N frames to keep per-frame allocations down.
	refreshInterval = 30
)

// Overlay renders top-right debug text. Everything is off until Visible is set.
type Overlay struct {
	Visible bool

	entities   int
	dropped    int
	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetSceneStats records the entity and dropped-object counts of the latest
// generation for display.
func (o *Overlay) SetSceneStats(entities, dropped int) {
	o.entities = entities
	o.dropped = dropped
}

// Draw renders the overlay when visible. Call after the scene and terminal.
func (o *Overlay) Draw() {
	if !o.Visible {
		return
	}
	o.frameCount++
	if o.frameCount%refreshInterval == 0 || o.fpsText == "" {
		o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&o.memStats)
		o.memText = fmt.Sprintf("Mem: %.1f MiB", float64(o.memStats.Alloc)/(1024*1024))
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)
	for _, text := range []string{
		o.fpsText,
		o.memText,
		fmt.Sprintf("Entities: %d", o.entities),
		fmt.Sprintf("Dropped: %d", o.dropped),
	} {
		w := rl.MeasureText(text, overlayFontSize)
		rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
		y += overlayLine
	}
}
