package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/phanxgames/flyover"
)

type buildCmd struct {
	Basemap string `help:"GeoJSON basemap path." default:"assets/india_states.geojson"`
	Dataset string `help:"Geocoded location dataset path." default:"assets/india_locations.json"`
	Scene   string `help:"Output scene document path." default:"india_network_scene.json"`
	Render  bool   `help:"Render the animation after building the scene."`
	Video   string `help:"Render output path (with --render)." default:"india_network.mp4"`
}

func (c *buildCmd) Run() error {
	cfg := flyover.DefaultConfig()
	cfg.BasemapPath = c.Basemap
	cfg.LocationsPath = c.Dataset
	cfg.ScenePath = c.Scene
	cfg.VideoPath = c.Video

	engine := flyover.NewScriptEngine()
	p := flyover.NewPipeline(cfg, engine)
	if err := p.Build(); err != nil {
		return err
	}

	cat := p.Catalog
	log.Printf("scene built: %d markers, %d routes, %d highlights, %d pulse rings, %d keyframes",
		len(cat.Markers), len(cat.Routes), len(cat.Highlights), len(cat.Pulses), len(p.Keyframes))
	if cat.SkippedLocations > 0 {
		log.Printf("skipped %d locations without coordinates", cat.SkippedLocations)
	}
	if cat.SkippedRoutes > 0 {
		log.Printf("skipped %d routes with missing endpoints", cat.SkippedRoutes)
	}
	if cat.SkippedHighlights > 0 {
		log.Printf("skipped %d highlights with no matching region", cat.SkippedHighlights)
	}
	log.Printf("scene saved to %s", c.Scene)

	if c.Render {
		log.Printf("rendering animation to %s", c.Video)
		return p.Render()
	}
	return nil
}

type previewCmd struct {
	Basemap  string `help:"GeoJSON basemap path." default:"assets/india_states.geojson"`
	Dataset  string `help:"Geocoded location dataset path." default:"assets/india_locations.json"`
	Width    int    `help:"Window width." default:"1280"`
	Height   int    `help:"Window height." default:"720"`
	Captures string `help:"JSON capture plan of frames to save as PNG stills." type:"existingfile" optional:""`
	ShotDir  string `help:"Directory for capture-plan stills." default:"captures"`
}

func (c *previewCmd) Run() error {
	cfg := flyover.DefaultConfig()
	cfg.BasemapPath = c.Basemap
	cfg.LocationsPath = c.Dataset
	cfg.ScenePath = "" // preview never persists

	engine := flyover.NewScriptEngine()
	p := flyover.NewPipeline(cfg, engine)
	if err := p.Build(); err != nil {
		return err
	}
	log.Printf("previewing %d keyframes over %d frames at %d fps",
		len(p.Keyframes), p.Config.FrameEnd()-p.Config.FrameStart, p.Config.FPS)

	pv := flyover.NewPreview(p, c.Width, c.Height)
	pv.CaptureDir = c.ShotDir
	if c.Captures != "" {
		data, err := os.ReadFile(c.Captures)
		if err != nil {
			return err
		}
		plan, err := flyover.LoadCapturePlan(data)
		if err != nil {
			return err
		}
		pv.SetCapturePlan(plan)
	}
	return pv.Run("flyover preview")
}

var cli struct {
	Build   buildCmd   `cmd:"" help:"Compose the scene and write the scene document."`
	Preview previewCmd `cmd:"" help:"Play the composed timeline in a window."`
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ctx := kong.Parse(&cli,
		kong.Name("flyover"),
		kong.Description("Procedural network-map scene composer."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
