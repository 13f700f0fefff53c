package flyover

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ScriptEngine is the built-in Engine: it performs the basemap import itself
// and records every capability call in order, persisting the result as a JSON
// scene document that a downstream engine bridge replays. Because it is a
// pure recorder with no hidden state, it doubles as the deterministic test
// engine: two identical pipeline runs produce byte-identical op logs.
type ScriptEngine struct {
	basemap    *Basemap
	nextHandle Handle

	objects     []*scriptObject
	byHandle    map[Handle]*scriptObject
	collections []string
	ops         []string

	world     WorldSettings
	start     int
	end       int
	fps       int
	resX      int
	resY      int
	rendered  []string
	savedPath string
}

type scriptObject struct {
	Handle     Handle          `json:"handle"`
	Kind       string          `json:"kind"`
	Name       string          `json:"name"`
	Collection string          `json:"collection,omitempty"`
	Style      *Style          `json:"style,omitempty"`
	Params     PrimitiveParams `json:"params"`
	Region     string          `json:"region,omitempty"`
	Thickness  float64         `json:"thickness,omitempty"`
	TrackTo    Handle          `json:"track_to,omitempty"`
	Keyframes  []scriptKey     `json:"keyframes,omitempty"`
}

type scriptKey struct {
	Attr  string  `json:"attr"`
	Frame int     `json:"frame"`
	Value float64 `json:"value"`
	Loc   *Vec3   `json:"loc,omitempty"`
}

// NewScriptEngine returns an empty recorder.
func NewScriptEngine() *ScriptEngine {
	return &ScriptEngine{byHandle: make(map[Handle]*scriptObject)}
}

// Ops returns the recorded capability calls in invocation order.
func (e *ScriptEngine) Ops() []string {
	return e.ops
}

// Basemap returns the imported basemap, or nil before import.
func (e *ScriptEngine) Basemap() *Basemap {
	return e.basemap
}

// SavedPath returns the path of the last Save, or "".
func (e *ScriptEngine) SavedPath() string {
	return e.savedPath
}

func (e *ScriptEngine) logf(format string, args ...any) {
	e.ops = append(e.ops, fmt.Sprintf(format, args...))
}

// ImportBasemap loads the GeoJSON basemap and registers one object per region.
func (e *ScriptEngine) ImportBasemap(path string, scale float64) (*Basemap, []Handle, error) {
	bm, err := LoadBasemap(path, scale)
	if err != nil {
		return nil, nil, err
	}
	e.basemap = bm
	handles := make([]Handle, 0, len(bm.Regions))
	for _, r := range bm.Regions {
		obj := e.newObject("region", r.ID)
		obj.Region = r.ID
		handles = append(handles, obj.Handle)
		e.logf("import %s -> #%d", r.ID, obj.Handle)
	}
	return bm, handles, nil
}

func (e *ScriptEngine) newObject(kind, name string) *scriptObject {
	e.nextHandle++
	obj := &scriptObject{Handle: e.nextHandle, Kind: kind, Name: name}
	e.objects = append(e.objects, obj)
	e.byHandle[obj.Handle] = obj
	return obj
}

// CreatePrimitive records an object creation.
func (e *ScriptEngine) CreatePrimitive(kind PrimitiveKind, params PrimitiveParams) Handle {
	obj := e.newObject(kind.String(), params.Name)
	obj.Params = params
	e.logf("create %s %q -> #%d", kind, params.Name, obj.Handle)
	return obj.Handle
}

// DeriveOverlay records an overlay referencing an imported region's geometry.
func (e *ScriptEngine) DeriveOverlay(regionID string, params PrimitiveParams) Handle {
	obj := e.newObject("overlay", params.Name)
	obj.Params = params
	obj.Region = regionID
	e.logf("overlay %s %q -> #%d", regionID, params.Name, obj.Handle)
	return obj.Handle
}

// ConvertToSolid records an extrusion.
func (e *ScriptEngine) ConvertToSolid(h Handle, thickness float64) {
	if obj := e.byHandle[h]; obj != nil {
		obj.Thickness = thickness
	}
	e.logf("solidify #%d %.3f", h, thickness)
}

// SetStyle records a style assignment.
func (e *ScriptEngine) SetStyle(h Handle, style *Style) {
	if obj := e.byHandle[h]; obj != nil {
		obj.Style = style
	}
	e.logf("style #%d %s", h, style.Name)
}

// GroupInto records collection membership. Collections are resolved by name:
// first use creates, later uses reuse.
func (e *ScriptEngine) GroupInto(collection string, h Handle) {
	known := false
	for _, c := range e.collections {
		if c == collection {
			known = true
			break
		}
	}
	if !known {
		e.collections = append(e.collections, collection)
	}
	if obj := e.byHandle[h]; obj != nil {
		obj.Collection = collection
	}
	e.logf("group #%d -> %s", h, collection)
}

// SetKeyframe records a scalar keyframe.
func (e *ScriptEngine) SetKeyframe(h Handle, attr Attr, frame int, value float64) {
	if obj := e.byHandle[h]; obj != nil {
		obj.Keyframes = append(obj.Keyframes, scriptKey{Attr: attr.String(), Frame: frame, Value: value})
	}
	e.logf("key #%d %s @%d = %g", h, attr, frame, value)
}

// SetLocationKeyframe records a location keyframe.
func (e *ScriptEngine) SetLocationKeyframe(h Handle, frame int, loc Vec3) {
	if obj := e.byHandle[h]; obj != nil {
		l := loc
		obj.Keyframes = append(obj.Keyframes, scriptKey{Attr: AttrLocation.String(), Frame: frame, Loc: &l})
	}
	e.logf("key #%d location @%d = (%g, %g, %g)", h, frame, loc.X, loc.Y, loc.Z)
}

// TrackTo records a tracking constraint.
func (e *ScriptEngine) TrackTo(h, target Handle) {
	if obj := e.byHandle[h]; obj != nil {
		obj.TrackTo = target
	}
	e.logf("track #%d -> #%d", h, target)
}

// SetWorld records the global look.
func (e *ScriptEngine) SetWorld(w WorldSettings) {
	e.world = w
	e.logf("world %s/%s", w.ViewTransform, w.Look)
}

// SetRenderRange records the frame range.
func (e *ScriptEngine) SetRenderRange(start, end int) {
	e.start, e.end = start, end
	e.logf("range %d..%d", start, end)
}

// SetFrameRate records the frame rate.
func (e *ScriptEngine) SetFrameRate(fps int) {
	e.fps = fps
	e.logf("fps %d", fps)
}

// SetOutputResolution records the output resolution.
func (e *ScriptEngine) SetOutputResolution(w, h int) {
	e.resX, e.resY = w, h
	e.logf("resolution %dx%d", w, h)
}

// sceneDoc is the persisted scene document.
type sceneDoc struct {
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	World       WorldSettings   `json:"world"`
	FrameStart  int             `json:"frame_start"`
	FrameEnd    int             `json:"frame_end"`
	FPS         int             `json:"fps"`
	ResX        int             `json:"res_x"`
	ResY        int             `json:"res_y"`
	Collections []string        `json:"collections"`
	Objects     []*scriptObject `json:"objects"`
}

// Save writes the composed scene document. An empty path skips persistence,
// which preview-only runs use.
func (e *ScriptEngine) Save(path string) error {
	if path == "" {
		e.logf("save skipped")
		return nil
	}
	doc := sceneDoc{
		World:       e.world,
		FrameStart:  e.start,
		FrameEnd:    e.end,
		FPS:         e.fps,
		ResX:        e.resX,
		ResY:        e.resY,
		Collections: e.collections,
		Objects:     e.objects,
	}
	if e.basemap != nil {
		doc.Width = e.basemap.Width
		doc.Height = e.basemap.Height
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save scene: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	e.savedPath = path
	e.logf("save %s", path)
	return nil
}

// RenderAnimation records the render handoff. The script engine does not
// encode video itself; the recorded entry tells the downstream bridge what to
// render and how.
func (e *ScriptEngine) RenderAnimation(path string, codec CodecConfig) error {
	if e.savedPath == "" {
		return fmt.Errorf("flyover: render requested before save")
	}
	e.rendered = append(e.rendered, path)
	e.logf("render %s (%s/%s)", path, codec.Container, codec.Codec)
	return nil
}

var _ Engine = (*ScriptEngine)(nil)
