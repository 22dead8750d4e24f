package balance

// #region imports
import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// #endregion imports

// #region spec-types

// Effects holds one qualitative description per band for a balance point.
type Effects struct {
	Low      string `json:"low" yaml:"low"`
	Balanced string `json:"balanced" yaml:"balanced"`
	High     string `json:"high" yaml:"high"`
}

// PointSpec is the static metadata for one balance point: its label, the two
// force fields it balances, and the per-band effect text. Loaded once at
// startup and never mutated.
type PointSpec struct {
	Key     Point     `json:"key" yaml:"key"`
	Label   string    `json:"label" yaml:"label"`
	Between [2]string `json:"between" yaml:"between"`
	Effects Effects   `json:"effects" yaml:"effects"`
}

// #endregion spec-types

// #region load

//go:embed points.yaml
var pointsYAML []byte

var specs = mustLoadSpecs()

type specFile struct {
	Points []PointSpec `yaml:"points"`
}

func mustLoadSpecs() []PointSpec {
	var f specFile
	if err := yaml.Unmarshal(pointsYAML, &f); err != nil {
		panic(fmt.Sprintf("balance: parse embedded points.yaml: %v", err))
	}
	if len(f.Points) != len(Points()) {
		panic(fmt.Sprintf("balance: points.yaml defines %d points, want %d", len(f.Points), len(Points())))
	}
	byKey := make(map[Point]bool, len(f.Points))
	for _, p := range f.Points {
		byKey[p.Key] = true
	}
	for _, key := range Points() {
		if !byKey[key] {
			panic(fmt.Sprintf("balance: points.yaml missing point %q", key))
		}
	}
	return f.Points
}

// #endregion load

// #region lookup

// Specs returns the four point specs in canonical order.
func Specs() []PointSpec {
	out := make([]PointSpec, len(specs))
	copy(out, specs)
	return out
}

// SpecFor returns the spec for one balance point.
func SpecFor(p Point) (PointSpec, bool) {
	for _, s := range specs {
		if s.Key == p {
			return s, true
		}
	}
	return PointSpec{}, false
}

// #endregion lookup
