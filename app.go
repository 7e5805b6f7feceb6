package main

import (
	"context"

	"fortio.org/log"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/chazu/cuboid/pkg/config"
	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/diag"
	"github.com/chazu/cuboid/pkg/engine"
	"github.com/chazu/cuboid/pkg/export"
	"github.com/chazu/cuboid/pkg/host/script"
	"github.com/chazu/cuboid/pkg/tessellate"
)

// stageSelector is the element in the frontend that evaluated cuboids are
// appended to.
const stageSelector = "#stage"

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or diagnostic for the
// frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	// Script builds the evaluated cuboids inside #stage when run in the page.
	Script   string          `json:"script"`
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with a script engine.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// domReady runs the demonstration cuboid once the page is ready.
func (a *App) domReady(ctx context.Context) {
	runtime.WindowExecJS(ctx, demoScript())
}

// demoScript builds the default 400 x 200 x 40 cuboid with no unit on the
// body, with perspective 100px on the body.
func demoScript() string {
	s := script.New()
	cfg := config.Default()
	body := s.Body()
	c := cuboid.Build(s, diag.LogSink{}, cfg.Dimensions(), &cuboid.Perspective{
		Target: body,
		Value:  cfg.Perspective.Value,
	})
	s.AppendChild(body, c.Container)
	return s.String()
}

// Evaluate takes Lisp source and returns the page script, mesh data, errors
// and builder diagnostics. This is the primary binding called by the
// frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into cuboid requests.
	batch, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Errf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Record the DOM construction as a script for the page.
	var diags diag.Collector
	s := script.New()
	stage := s.Query(stageSelector)
	builder := cuboid.NewBuilder(s, diag.Tee(diag.LogSink{}, &diags))
	for _, c := range batch.Build(builder, s.Resolve) {
		s.AppendChild(stage, c.Container)
	}
	result.Script = s.String()

	// Step 4: Tessellate every measurable cuboid for the 3D preview.
	for i, r := range batch.Requests {
		meshes, err := tessellate.Tessellate(r.Dimensions)
		if err != nil {
			log.Warnf("Tessellate skipped cuboid %d: %v", i, err)
			continue
		}
		for j, m := range meshes {
			name := m.PartName
			if r.ID != "" {
				name = r.ID + "/" + name
			}
			result.Meshes = append(result.Meshes, MeshData{
				Vertices: m.Vertices,
				Normals:  m.Normals,
				Indices:  m.Indices,
				PartName: name,
				Color:    export.Palette[(i*cuboid.NumFaces+j)%len(export.Palette)],
			})
		}
	}

	for _, d := range diags.All() {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: d.String(), Code: d.Code})
	}

	if a.ctx != nil && result.Script != "" {
		runtime.WindowExecJS(a.ctx, clearStage+result.Script)
	}
	return result
}

// clearStage empties the stage before a new evaluation is drawn.
const clearStage = `document.querySelector("#stage")?.replaceChildren();
`
