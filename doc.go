// Package flyover composes an animated 3D network-map presentation from a
// geocoded location dataset and a GeoJSON basemap.
//
// The pipeline projects (state, city, lat, lon) records onto a flat map plane,
// builds a catalog of scene entities (state highlight overlays, city pin
// markers, arced route curves between hubs, pulse rings around hubs), lays a
// staggered keyframe timeline over them, and choreographs a multi-beat camera
// flyover. The result is handed to an [Engine] implementation, which turns the
// abstract scene into something concrete: [ScriptEngine] persists it as a
// scene document for an external renderer and records every call for
// inspection.
//
// # Quick start
//
//	cfg := flyover.DefaultConfig()
//	engine := flyover.NewScriptEngine()
//	p := flyover.NewPipeline(cfg, engine)
//	if err := p.Build(); err != nil {
//		log.Fatal(err)
//	}
//
// Build imports the basemap, loads the dataset, builds the entity [Catalog],
// schedules every keyframe with [Scheduler], plans the [CameraBeat] path, and
// submits it all through the engine.
//
// # Timeline
//
// All animation timing lives in [Timing]: each entity class has a start
// cursor and a per-entity stride, so markers pop in one after another, routes
// draw themselves in sequence, and hub pulses ripple outward in waves. The
// [Sampler] evaluates the scheduled keyframes at any fractional frame with
// eased interpolation (via [gween]), which is what [Preview] uses to play the
// timeline back in a window (via [Ebitengine]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package flyover
