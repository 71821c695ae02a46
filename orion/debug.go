package orion

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/oliverbestmann/kframe/glimpse"
	"github.com/oliverbestmann/kframe/glm"
	"github.com/oliverbestmann/kframe/pulse"
)

const debugOverlayDepth = 1 << 20

type frameTiming struct {
	Total time.Duration

	Application time.Duration
	Render      time.Duration
}

// DebugOverlay records frame timings and draws them on top of the
// application output. It is toggled with F3.
type DebugOverlay struct {
	Visible bool

	frameCount int
	frames     [60 * 10]frameTiming

	timeStartFrame       time.Time
	timeStartApplication time.Time
	timeStartRender      time.Time
	timeEndFrame         time.Time

	mem runtime.MemStats
}

func (d *DebugOverlay) StartFrame() {
	now := time.Now()

	if !d.timeStartFrame.IsZero() {
		d.frames[d.frameCount%len(d.frames)] = frameTiming{
			Total:       now.Sub(d.timeStartFrame),
			Application: d.timeStartRender.Sub(d.timeStartApplication),
			Render:      d.timeEndFrame.Sub(d.timeStartRender),
		}

		d.frameCount += 1
	}

	d.timeStartFrame = now
}

func (d *DebugOverlay) StartApplication() {
	d.timeStartApplication = time.Now()
}

func (d *DebugOverlay) StartRender() {
	d.timeStartRender = time.Now()
}

func (d *DebugOverlay) EndFrame() {
	d.timeEndFrame = time.Now()

	if d.Visible {
		runtime.ReadMemStats(&d.mem)
	}
}

// Update toggles the overlay when F3 was pressed this frame.
func (d *DebugOverlay) Update(in *FrameInputs) {
	if in.KeyPressed(glimpse.KeyF3) {
		d.Visible = !d.Visible
	}
}

func (d *DebugOverlay) Draw(out *FrameOutputs) {
	if !d.Visible {
		return
	}

	out.Glyphs.PushText(d.buildText(), glm.Vec2f{0.02, 0.02}, 0.02, debugOverlayDepth, pulse.ColorWhite)

	bounds := out.Canvas.Bounds()

	binWidth := bounds.Width() / float32(len(d.frames))
	timeScale := float32(0.05) / (1.0 / 60.0)

	for idx, frame := range d.frames {
		x := float32(idx) * binWidth
		y := bounds.Max[1]

		bar := func(duration time.Duration, color pulse.Color) {
			height := float32(duration.Seconds()) * timeScale
			if height <= 0 {
				return
			}

			out.Canvas.PushRect(pulse.RectangleFromXYWH(x, y-height, binWidth, height), debugOverlayDepth, color)

			y -= height
		}

		bar(frame.Application, pulse.ColorLinearRGBA(0.25, 0.25, 1.0, 0.85))
		bar(frame.Render, pulse.ColorLinearRGBA(0.25, 1.0, 0.25, 0.85))

		remaining := frame.Total - frame.Application - frame.Render
		bar(remaining, pulse.ColorLinearRGBA(0.25, 0.25, 0.25, 0.5))
	}

	if fps := float32(d.fps()); fps > 0 {
		y := bounds.Max[1] - timeScale/fps

		out.Canvas.PushLine(
			glm.Vec2f{0, y},
			glm.Vec2f{bounds.Width(), y},
			1.0/512, debugOverlayDepth, pulse.ColorWhite,
		)
	}
}

func (d *DebugOverlay) fps() float64 {
	// calculate the average frame time
	var frameCount int
	var totalTime time.Duration

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			totalTime += frame.Total
		}
	}

	if frameCount == 0 {
		return 0
	}

	averageFrameTime := totalTime / time.Duration(frameCount)

	return 1.0 / averageFrameTime.Seconds()
}

func (d *DebugOverlay) buildText() string {
	lastCycle := (d.mem.NumGC + 255) % 256
	lastCycleDur := time.Duration(d.mem.PauseNs[lastCycle])

	lines := []string{
		fmt.Sprintf("FPS: %1.2f", d.fps()),
		fmt.Sprintf("Frames: %d", d.frameCount),
		"",
		"Memory",
		fmt.Sprintf("  Heap Objects: %d", d.mem.HeapObjects),
		fmt.Sprintf("  Heap InUse:   %1.2fmb", float64(d.mem.HeapInuse)/(1024.0*1024.0)),
		fmt.Sprintf("  Stack InUse:  %1.2fmb", float64(d.mem.StackInuse)/(1024.0*1024.0)),
		"",
		"GC:",
		fmt.Sprintf("  Cycles:   %d", d.mem.NumGC),
		fmt.Sprintf("  Fraction: %1.2f%%", d.mem.GCCPUFraction*100),
		fmt.Sprintf("  Duration: %1.2fms", lastCycleDur.Seconds()*1000),
	}

	return strings.Join(lines, "\n")
}
