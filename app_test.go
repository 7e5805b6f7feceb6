package main

import (
	"os"
	"strings"
	"testing"
)

// TestE2EBoxExample exercises the full pipeline: Lisp source → engine →
// requests → script host + tessellate. This is the same path that the Wails
// Evaluate binding takes, but without the Wails runtime.
func TestE2EBoxExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/box.cuboid")
	if err != nil {
		t.Fatalf("failed to read box.cuboid: %v", err)
	}

	result := app.Evaluate(string(source))

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	// The slab has raw sizes and cannot be tessellated: 2 cuboids x 6 faces.
	if len(result.Meshes) != 12 {
		t.Fatalf("expected 12 meshes, got %d", len(result.Meshes))
	}

	expectedParts := map[string]bool{}
	for _, id := range []string{"wide", "cube"} {
		for _, f := range []string{"front", "back", "left", "right", "top", "bottom"} {
			expectedParts[id+"/"+f] = false
		}
	}

	for _, m := range result.Meshes {
		if _, ok := expectedParts[m.PartName]; !ok {
			t.Errorf("unexpected part name: %q", m.PartName)
			continue
		}
		expectedParts[m.PartName] = true

		if len(m.Vertices) == 0 {
			t.Errorf("part %q: no vertices", m.PartName)
		}
		if len(m.Normals) == 0 {
			t.Errorf("part %q: no normals", m.PartName)
		}
		if len(m.Indices) == 0 {
			t.Errorf("part %q: no indices", m.PartName)
		}
		if m.Color == "" {
			t.Errorf("part %q: no color assigned", m.PartName)
		}
	}

	for name, found := range expectedParts {
		if !found {
			t.Errorf("missing mesh for part %q", name)
		}
	}

	// Three containers, each with six faces.
	if n := strings.Count(result.Script, "document.createElement"); n != 21 {
		t.Errorf("expected 21 created elements, got %d", n)
	}
	if !strings.Contains(result.Script, `document.querySelector("#stage")?.style.setProperty("perspective", "800px");`) {
		t.Error("expected perspective on #stage in script")
	}
}

// TestE2EEmptySource ensures the pipeline handles empty input gracefully.
func TestE2EEmptySource(t *testing.T) {
	app := NewApp()
	result := app.Evaluate("")

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors for empty source: %v", result.Errors)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for empty source, got %d", len(result.Meshes))
	}
}

// TestE2ESyntaxError ensures eval errors are reported, not fatal errors.
func TestE2ESyntaxError(t *testing.T) {
	app := NewApp()
	result := app.Evaluate("(cuboid 1 2")

	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
	}
	if result.Script != "" {
		t.Errorf("expected no script on error, got %q", result.Script)
	}
}

// TestE2ESingleCuboid ensures a minimal source renders six face meshes.
func TestE2ESingleCuboid(t *testing.T) {
	app := NewApp()
	result := app.Evaluate(`(cuboid :width 600 :height 300 :depth 18 :unit "px")`)

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error: %s", e.Message)
		}
		t.FailNow()
	}
	if len(result.Meshes) != 6 {
		t.Fatalf("expected 6 meshes, got %d", len(result.Meshes))
	}
	if result.Meshes[0].PartName != "front" {
		t.Errorf("expected part name 'front', got %q", result.Meshes[0].PartName)
	}
}

// TestDemoScript checks the DOM-ready demonstration.
func TestDemoScript(t *testing.T) {
	s := demoScript()
	for _, want := range []string{
		`n1.style.setProperty("width", "400px");`,
		`n1.style.setProperty("height", "200px");`,
		`document.body.style.setProperty("perspective", "100px");`,
		`document.body.appendChild(n1);`,
		`"rotateX(0deg) translateZ(20px)"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("demo script missing %s", want)
		}
	}
}
