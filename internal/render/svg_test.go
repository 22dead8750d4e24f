package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/session"
)

func testFrame(s balance.State) session.Frame {
	c := session.NewController(nil, rand.New(rand.NewSource(1)))
	return c.Apply(s)
}

func TestSVGContainsBothCurves(t *testing.T) {
	f := testFrame(balance.State{Value: 20, Exchange: -10})
	doc := SVG(f, DefaultOptions())

	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600"`) {
		t.Fatalf("missing 800x600 document header: %q", doc[:80])
	}
	if !strings.Contains(doc, f.Path) {
		t.Fatal("document must embed the dynamic path")
	}
	if !strings.Contains(doc, f.IdealPath) {
		t.Fatal("document must embed the ideal reference path")
	}
	if !strings.Contains(doc, "stroke-dasharray") {
		t.Fatal("reference curve should render dashed")
	}
}

func TestSVGLayersCanBeDisabled(t *testing.T) {
	f := testFrame(balance.State{Value: 20})
	doc := SVG(f, Options{})

	if strings.Contains(doc, f.IdealPath) {
		t.Fatal("ideal layer should be absent when disabled")
	}
	if strings.Contains(doc, "Investors") {
		t.Fatal("labels should be absent when disabled")
	}
	if strings.Contains(doc, "Structural integrity") {
		t.Fatal("caption should be absent when disabled")
	}
	if !strings.Contains(doc, f.Path) {
		t.Fatal("dynamic curve must always render")
	}
}

func TestSVGLabels(t *testing.T) {
	doc := SVG(testFrame(balance.State{}), DefaultOptions())
	for _, name := range []string{"Investors", "Customers", "Employees", "Market"} {
		if !strings.Contains(doc, name) {
			t.Fatalf("missing force-field label %s", name)
		}
	}
	for _, spec := range balance.Specs() {
		if !strings.Contains(doc, ">"+spec.Label+"<") {
			t.Fatalf("missing vertex label %s", spec.Label)
		}
	}
}

func TestSVGCaption(t *testing.T) {
	doc := SVG(testFrame(balance.State{Value: 50, Direction: 50, Exchange: 50, Operate: 50}), DefaultOptions())
	if !strings.Contains(doc, "Structural integrity 0 — Critical") {
		t.Fatal("caption should report the zero score and critical tier")
	}

	doc = SVG(testFrame(balance.State{Direction: 1}), DefaultOptions())
	if !strings.Contains(doc, "Structural integrity 99.5 — Excellent") {
		t.Fatal("caption should keep half-point scores")
	}
}
