package flyover

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Preview plays a composed timeline back as a top-down 2D view: basemap
// outlines, marker pop-ins, route reveals, highlight glows, pulse ripples,
// and the camera focus point. It exists for look-dev; the persisted scene,
// not this view, is what the render engine consumes.
type Preview struct {
	pipeline *Pipeline
	sampler  *Sampler

	width, height int
	frame         float64
	paused        bool

	// CaptureDir receives PNG stills queued by Capture or a CapturePlan.
	CaptureDir   string
	capturePlan  *CapturePlan
	captureQueue []string
}

// NewPreview wraps a built pipeline for playback.
func NewPreview(p *Pipeline, width, height int) *Preview {
	return &Preview{
		pipeline:   p,
		sampler:    NewSampler(p.Keyframes),
		width:      width,
		height:     height,
		frame:      float64(p.Config.FrameStart),
		CaptureDir: "captures",
	}
}

// Run opens a window and plays the timeline at the configured frame rate.
func (pv *Preview) Run(title string) error {
	ebiten.SetWindowSize(pv.width, pv.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(pv.pipeline.Config.FPS)
	return ebiten.RunGame(pv)
}

// Update advances one frame per tick, looping at the end of the timeline.
// Space toggles pause, S captures a still, Escape exits.
func (pv *Preview) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		pv.paused = !pv.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		pv.Capture("manual")
	}
	if pv.paused {
		return nil
	}
	pv.frame++
	if pv.frame > float64(pv.pipeline.Config.FrameEnd()) {
		pv.frame = float64(pv.pipeline.Config.FrameStart)
	}
	if pv.capturePlan != nil {
		pv.capturePlan.step(pv, int(pv.frame))
	}
	return nil
}

// Layout reports the logical render size.
func (pv *Preview) Layout(_, _ int) (int, int) {
	return pv.width, pv.height
}

// toScreen maps a plane position to screen pixels: the plane is fit into the
// window with a margin, and Y flips because plane north is up.
func (pv *Preview) toScreen(p Point) (float32, float32) {
	scale := pv.planeScale()
	x := float64(pv.width)/2 + p.X*scale
	y := float64(pv.height)/2 - p.Y*scale
	return float32(x), float32(y)
}

func (pv *Preview) planeScale() float64 {
	bm := pv.pipeline.Basemap
	return 0.9 * min(float64(pv.width)/bm.Width, float64(pv.height)/bm.Height)
}

// Draw renders the current frame.
func (pv *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{3, 4, 6, 255})

	pv.drawBasemap(screen)
	pv.drawHighlights(screen)
	pv.drawRoutes(screen)
	pv.drawMarkers(screen)
	pv.drawPulses(screen)
	pv.drawFocus(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d / %d",
		int(pv.frame), pv.pipeline.Config.FrameEnd()))

	pv.flushCaptures(screen)
}

func (pv *Preview) drawBasemap(screen *ebiten.Image) {
	outline := color.RGBA{36, 42, 53, 255}
	for _, r := range pv.pipeline.Basemap.Regions {
		pv.strokeRegion(screen, r, 1, outline)
	}
}

func (pv *Preview) drawHighlights(screen *ebiten.Image) {
	peak := pv.pipeline.Config.Timing.HighlightPeak
	for _, h := range pv.pipeline.Catalog.Highlights {
		glow, ok := pv.sampler.Value(h, AttrEmission, pv.frame)
		if !ok || glow <= 0 {
			continue
		}
		region, found := pv.pipeline.Basemap.FindRegion(h.SourceRegion)
		if !found {
			continue
		}
		pv.strokeRegion(screen, *region, 2.5, h.Style.Color.rgba(glow/peak))
	}
}

func (pv *Preview) strokeRegion(screen *ebiten.Image, r BasemapRegion, width float32, clr color.Color) {
	for _, ring := range r.Rings {
		for i := 1; i < len(ring); i++ {
			x0, y0 := pv.toScreen(ring[i-1])
			x1, y1 := pv.toScreen(ring[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
		}
	}
}

func (pv *Preview) drawRoutes(screen *ebiten.Image) {
	for _, r := range pv.pipeline.Catalog.Routes {
		reveal, ok := pv.sampler.Value(r, AttrBevelFactorEnd, pv.frame)
		if !ok || reveal <= 0 {
			continue
		}
		// Draw the revealed fraction of the arc, end point sliding from
		// From to To.
		x0, y0 := pv.toScreen(r.From)
		x1, y1 := pv.toScreen(Point{
			X: r.From.X + (r.To.X-r.From.X)*reveal,
			Y: r.From.Y + (r.To.Y-r.From.Y)*reveal,
		})
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, r.Style.Color.rgba(1), true)
	}
}

func (pv *Preview) drawMarkers(screen *ebiten.Image) {
	base := float32(pv.pipeline.Config.PinRadius * pv.planeScale() * 8)
	for _, m := range pv.pipeline.Catalog.Markers {
		scale, ok := pv.sampler.Value(m, AttrScale, pv.frame)
		if !ok || scale <= 0 {
			continue
		}
		x, y := pv.toScreen(Point{X: m.Position.X, Y: m.Position.Y})
		vector.DrawFilledCircle(screen, x, y, base*float32(scale), m.Style.Color.rgba(1), true)
	}
}

func (pv *Preview) drawPulses(screen *ebiten.Image) {
	peak := pv.pipeline.Config.Timing.PulsePeak
	for _, ring := range pv.pipeline.Catalog.Pulses {
		scale, okScale := pv.sampler.Value(ring, AttrScale, pv.frame)
		glow, okGlow := pv.sampler.Value(ring, AttrEmission, pv.frame)
		if !okScale || !okGlow || glow <= 0 {
			continue
		}
		x, y := pv.toScreen(Point{X: ring.Position.X, Y: ring.Position.Y})
		radius := float32(ring.Size * scale * pv.planeScale())
		vector.StrokeCircle(screen, x, y, radius, 2, ring.Style.Color.rgba(glow/peak), true)
	}
}

func (pv *Preview) drawFocus(screen *ebiten.Image) {
	focus := pv.pipeline.Focus
	if focus == nil {
		return
	}
	loc, ok := pv.sampler.Location(focus, pv.frame)
	if !ok {
		return
	}
	x, y := pv.toScreen(Point{X: loc.X, Y: loc.Y})
	clr := color.RGBA{255, 255, 255, 90}
	vector.StrokeLine(screen, x-8, y, x+8, y, 1, clr, true)
	vector.StrokeLine(screen, x, y-8, x, y+8, 1, clr, true)
}

// rgba converts a style color to an 8-bit color with the given alpha factor.
func (c Color) rgba(alpha float64) color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return color.RGBA{
		R: clamp(c.R * alpha),
		G: clamp(c.G * alpha),
		B: clamp(c.B * alpha),
		A: clamp(alpha),
	}
}
