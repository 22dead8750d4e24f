package session

import (
	"math/rand"
	"testing"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/scoring"
)

func newTestController() *Controller {
	return NewController(nil, rand.New(rand.NewSource(1)))
}

func TestNewControllerStartsIdeal(t *testing.T) {
	c := newTestController()
	f := c.Frame()
	if !f.State.IsIdeal() {
		t.Fatalf("initial state = %+v, want ideal form", f.State)
	}
	if f.Report.Score != 100 {
		t.Fatalf("initial integrity = %v, want 100", f.Report.Score)
	}
	if f.Revision == "" {
		t.Fatal("initial frame must carry a revision")
	}
}

func TestSetClampsAtBoundary(t *testing.T) {
	c := newTestController()
	f := c.Set(balance.PointValue, 999)
	if f.State.Value != balance.MaxValue {
		t.Fatalf("value = %d, want clamped %d", f.State.Value, balance.MaxValue)
	}
	f = c.Set(balance.PointDirection, -999)
	if f.State.Direction != balance.MinValue {
		t.Fatalf("direction = %d, want clamped %d", f.State.Direction, balance.MinValue)
	}
	if f.State.Value != balance.MaxValue {
		t.Fatal("Set must preserve the other fields")
	}
}

func TestApplyClampsEveryField(t *testing.T) {
	c := newTestController()
	f := c.Apply(balance.State{Value: 200, Direction: -200, Exchange: 25, Operate: 0})
	want := balance.State{Value: 50, Direction: -50, Exchange: 25, Operate: 0}
	if f.State != want {
		t.Fatalf("state = %+v, want %+v", f.State, want)
	}
}

func TestResetRestoresIdealForm(t *testing.T) {
	c := newTestController()
	c.Apply(balance.State{Value: 42, Direction: -13, Exchange: 50, Operate: -7})

	f := c.Reset()
	if !f.State.IsIdeal() {
		t.Fatalf("state after reset = %+v, want ideal form", f.State)
	}
	if f.Report.Score != 100 {
		t.Fatalf("integrity after reset = %v, want 100", f.Report.Score)
	}
	if f.Report.Tier != scoring.TierExcellent {
		t.Fatalf("tier after reset = %s, want %s", f.Report.Tier, scoring.TierExcellent)
	}
}

func TestRandomizeStaysInRange(t *testing.T) {
	c := newTestController()
	for i := 0; i < 200; i++ {
		f := c.Randomize()
		for _, p := range balance.Points() {
			v := f.State.Get(p)
			if v < balance.MinValue || v > balance.MaxValue {
				t.Fatalf("randomize produced %s = %d, outside [%d, %d]", p, v, balance.MinValue, balance.MaxValue)
			}
		}
	}
}

func TestRandomizeReachesBothSigns(t *testing.T) {
	c := newTestController()
	sawNeg, sawPos := false, false
	for i := 0; i < 200 && !(sawNeg && sawPos); i++ {
		f := c.Randomize()
		if f.State.Value < 0 {
			sawNeg = true
		}
		if f.State.Value > 0 {
			sawPos = true
		}
	}
	if !sawNeg || !sawPos {
		t.Fatal("200 stress tests never covered both signs")
	}
}

func TestCommitAdvancesRevision(t *testing.T) {
	c := newTestController()
	a := c.Frame().Revision
	b := c.Set(balance.PointOperate, 10).Revision
	if a == b {
		t.Fatal("mutation must stamp a new revision")
	}
	if c.Frame().Revision != b {
		t.Fatal("Frame must report the latest revision")
	}
}

func TestFrameIsFullyDerived(t *testing.T) {
	c := newTestController()
	f := c.Apply(balance.State{Value: 40})

	if f.Shape.Top.X != 480 {
		t.Fatalf("shape top x = %v, want 480", f.Shape.Top.X)
	}
	if f.Path == "" || f.IdealPath == "" {
		t.Fatal("frame must carry both path descriptors")
	}
	if f.Path == f.IdealPath {
		t.Fatal("distorted path must differ from the ideal path")
	}
	if f.Report.Score != 80 {
		t.Fatalf("integrity = %v, want 80", f.Report.Score)
	}
	if len(f.Report.Effects) != 4 {
		t.Fatalf("frame has %d effects, want 4", len(f.Report.Effects))
	}
}

func TestIdealPathConstantAcrossMutations(t *testing.T) {
	c := newTestController()
	before := c.Frame().IdealPath
	c.Randomize()
	c.Apply(balance.State{Value: -50, Direction: 50})
	if c.Frame().IdealPath != before {
		t.Fatal("ideal path must never change")
	}
}
