package flyover

// Collection names. Resolution by name is idempotent, so re-running the
// pipeline against one engine never duplicates them.
const (
	CollectionMap         = "map"
	CollectionMarkers     = "markers"
	CollectionConnections = "connections"
)

// defaultWorld is the dark premium look the presentation renders with.
func defaultWorld() WorldSettings {
	return WorldSettings{
		Background:         Color{0.01, 0.015, 0.02, 1.0},
		BackgroundStrength: 1.0,
		Bloom:              true,
		BloomIntensity:     0.08,
		ViewTransform:      "Filmic",
		Look:               "High Contrast",
	}
}

// Pipeline composes the full presentation: it imports the basemap, builds the
// entity catalog, schedules the timeline, derives the camera path, and
// submits everything to the engine. One pipeline is one run; it holds no
// state that survives Build.
type Pipeline struct {
	Config Config
	Engine Engine

	// Populated by Build, for inspection and preview playback.
	Catalog   *Catalog
	Keyframes []Keyframe
	Beats     []CameraBeat
	Basemap   *Basemap
	Focus     *Entity
	Camera    *Entity
	Lights    []*Entity

	regionHandles []Handle
}

// NewPipeline returns a pipeline over the given engine.
func NewPipeline(cfg Config, engine Engine) *Pipeline {
	return &Pipeline{Config: cfg, Engine: engine}
}

// Build runs the pipeline end to end and persists the composed scene. Fatal
// conditions (a missing asset, an import with no geometry) return before any
// entity is created, so a failed run never leaves a partial scene behind.
func (p *Pipeline) Build() error {
	cfg := p.Config

	bm, regionHandles, err := p.Engine.ImportBasemap(cfg.BasemapPath, cfg.MapScale)
	if err != nil {
		return err
	}
	p.Basemap = bm
	p.regionHandles = regionHandles

	ds, err := LoadDataset(cfg.LocationsPath)
	if err != nil {
		return err
	}

	proj := Projector{Bounds: cfg.GeoBounds, Width: bm.Width, Height: bm.Height}
	pal := NewPalette()
	p.Catalog = BuildCatalog(ds, bm, proj, cfg, pal)

	sched := NewScheduler(cfg)
	sched.ScheduleCatalog(p.Catalog)

	p.Beats = BuildCameraPath(p.Catalog, cfg, bm.Height)
	p.buildRig(bm.Height)
	sched.ScheduleCameraBeats(p.Focus, p.Camera, p.Beats, cfg.MapThickness)
	p.Keyframes = sched.Keyframes()

	p.submit(pal)

	return p.Engine.Save(cfg.ScenePath)
}

// Render hands the saved scene to the engine's video renderer.
func (p *Pipeline) Render() error {
	return p.Engine.RenderAnimation(p.Config.VideoPath, DefaultCodec())
}

// buildRig creates the camera rig and the three-light setup. Light placement
// scales with the plane height, like the camera offsets.
func (p *Pipeline) buildRig(planeHeight float64) {
	p.Focus = &Entity{
		Kind:     KindCameraRig,
		Name:     "CAM_FOCUS",
		Position: Vec3{Z: p.Config.MapThickness},
		Scale:    1,
	}
	p.Camera = &Entity{
		Kind:  KindCameraRig,
		Name:  "Camera",
		Scale: 1,
		Lens:  cameraLens,
		FStop: cameraFStop,
	}
	p.Lights = []*Entity{
		{
			Kind: KindLight, Name: "KeyLight", LightKind: "sun",
			Energy: 2.4, Scale: 1,
			Rotation: Vec3{X: 0.85, Z: 0.65},
		},
		{
			Kind: KindLight, Name: "RimLight", LightKind: "area",
			Energy: 350, Size: 12, Scale: 1,
			Position: Vec3{Y: planeHeight * 0.5, Z: planeHeight * 0.9},
			Rotation: Vec3{X: 0.75, Z: 3.14},
		},
		{
			Kind: KindLight, Name: "FillLight", LightKind: "area",
			Energy: 180, Size: 16, Scale: 1,
			Position: Vec3{Y: -planeHeight * 0.55, Z: planeHeight * 0.55},
			Rotation: Vec3{X: 1.15},
		},
	}
}

// submit commits the composed scene to the engine: base regions, catalog
// entities with styles and collections, the rig, every keyframe instruction,
// and the render configuration.
func (p *Pipeline) submit(pal *Palette) {
	cfg := p.Config
	eng := p.Engine

	// Base map: solidify the imported regions and give them the shared base
	// style.
	for _, h := range p.regionHandles {
		eng.ConvertToSolid(h, cfg.MapThickness)
		eng.SetStyle(h, pal.MapBase)
		eng.GroupInto(CollectionMap, h)
	}

	for _, e := range p.Catalog.Highlights {
		e.Handle = eng.DeriveOverlay(e.SourceRegion, PrimitiveParams{
			Name:     e.Name,
			Position: e.Position,
			Scale:    e.Scale,
		})
		eng.SetStyle(e.Handle, e.Style)
		eng.GroupInto(CollectionMap, e.Handle)
	}

	for _, e := range p.Catalog.Markers {
		e.Handle = eng.CreatePrimitive(PrimitivePin, PrimitiveParams{
			Name:     e.Name,
			Position: e.Position,
			Scale:    e.Scale,
			Radius:   cfg.PinRadius,
			Height:   cfg.PinHeight,
		})
		eng.SetStyle(e.Handle, e.Style)
		eng.GroupInto(CollectionMarkers, e.Handle)
	}

	for _, e := range p.Catalog.Routes {
		e.Handle = eng.CreatePrimitive(PrimitiveCurve, PrimitiveParams{
			Name:  e.Name,
			Scale: e.Scale,
			From:  e.From,
			To:    e.To,
			Z:     e.Position.Z,
			Bulge: e.Bulge,
			Bevel: cfg.CurveBevel,
		})
		eng.SetStyle(e.Handle, e.Style)
		eng.GroupInto(CollectionConnections, e.Handle)
	}

	for _, e := range p.Catalog.Pulses {
		e.Handle = eng.CreatePrimitive(PrimitiveRing, PrimitiveParams{
			Name:     e.Name,
			Position: e.Position,
			Scale:    e.Scale,
			Radius:   e.Size,
		})
		eng.SetStyle(e.Handle, e.Style)
		eng.GroupInto(CollectionMarkers, e.Handle)
	}

	p.Focus.Handle = eng.CreatePrimitive(PrimitiveEmpty, PrimitiveParams{
		Name:     p.Focus.Name,
		Position: p.Focus.Position,
		Scale:    p.Focus.Scale,
	})
	p.Camera.Handle = eng.CreatePrimitive(PrimitiveCamera, PrimitiveParams{
		Name:  p.Camera.Name,
		Scale: p.Camera.Scale,
		Lens:  p.Camera.Lens,
		FStop: p.Camera.FStop,
	})
	eng.TrackTo(p.Camera.Handle, p.Focus.Handle)

	for _, l := range p.Lights {
		l.Handle = eng.CreatePrimitive(PrimitiveLight, PrimitiveParams{
			Name:      l.Name,
			Position:  l.Position,
			Rotation:  l.Rotation,
			Scale:     l.Scale,
			LightKind: l.LightKind,
			Energy:    l.Energy,
			Size:      l.Size,
		})
	}

	for _, k := range p.Keyframes {
		if k.Attr == AttrLocation {
			eng.SetLocationKeyframe(k.Entity.Handle, k.Frame, k.Loc)
			continue
		}
		eng.SetKeyframe(k.Entity.Handle, k.Attr, k.Frame, k.Value)
	}

	eng.SetWorld(defaultWorld())
	eng.SetRenderRange(cfg.FrameStart, cfg.FrameEnd())
	eng.SetFrameRate(cfg.FPS)
	eng.SetOutputResolution(cfg.ResX, cfg.ResY)
}
