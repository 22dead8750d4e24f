// Package session owns the single mutable balance state and assembles
// render-ready frames from the two engines. It is the only writer; every
// mutation clamps at this boundary, so the engines always see the valid
// [-50, 50] domain.
package session

// #region imports
import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/geometry"
	"github.com/kibbyd/tensegrity/internal/scoring"
)

// #endregion imports

// #region frame

// Frame is the complete render-ready snapshot for one revision of the state.
// Recomputed in full on every change; nothing is cached.
type Frame struct {
	Revision  string         `json:"revision"`
	State     balance.State  `json:"state"`
	Shape     geometry.Shape `json:"shape"`
	Path      string         `json:"path"`
	IdealPath string         `json:"ideal_path"`
	Report    scoring.Report `json:"report"`
}

// #endregion frame

// #region controller

// Controller holds the current balance state. A mutex guards it because the
// HTTP collaborator may read while another request writes; the write path
// itself is single-threaded per the interaction model.
type Controller struct {
	mu       sync.Mutex
	state    balance.State
	revision string

	rng    *rand.Rand
	logger *zap.Logger
}

// NewController creates a controller at the ideal form. A nil rng seeds one
// from the clock; a nil logger discards.
func NewController(logger *zap.Logger, rng *rand.Rand) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		revision: uuid.New().String(),
		rng:      rng,
		logger:   logger,
	}
}

// #endregion controller

// #region reads

// State returns the current balance state.
func (c *Controller) State() balance.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Frame recomputes and returns the full snapshot for the current state.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	s, rev := c.state, c.revision
	c.mu.Unlock()
	return buildFrame(rev, s)
}

// #endregion reads

// #region mutations

// Set replaces one balance point's value (clamped) and returns the new frame.
func (c *Controller) Set(p balance.Point, v int) Frame {
	return c.commit(c.State().With(p, v), "set")
}

// Apply replaces the whole state (clamped) and returns the new frame.
func (c *Controller) Apply(s balance.State) Frame {
	return c.commit(s, "apply")
}

// Reset returns the state to the ideal form.
func (c *Controller) Reset() Frame {
	return c.commit(balance.State{}, "reset")
}

// Randomize sets each field independently to a uniform integer in
// [-50, 50] — the stress test preset.
func (c *Controller) Randomize() Frame {
	span := balance.MaxValue - balance.MinValue + 1
	c.mu.Lock()
	next := balance.State{
		Value:     balance.MinValue + c.rng.Intn(span),
		Direction: balance.MinValue + c.rng.Intn(span),
		Exchange:  balance.MinValue + c.rng.Intn(span),
		Operate:   balance.MinValue + c.rng.Intn(span),
	}
	c.mu.Unlock()
	return c.commit(next, "randomize")
}

// commit clamps, stamps a new revision, and logs the transition.
func (c *Controller) commit(next balance.State, trigger string) Frame {
	next = next.Clamp()
	rev := uuid.New().String()

	c.mu.Lock()
	c.state = next
	c.revision = rev
	c.mu.Unlock()

	frame := buildFrame(rev, next)
	c.logger.Info("state committed",
		zap.String("trigger", trigger),
		zap.String("revision", rev),
		zap.Int("value", next.Value),
		zap.Int("direction", next.Direction),
		zap.Int("exchange", next.Exchange),
		zap.Int("operate", next.Operate),
		zap.Float64("integrity", frame.Report.Score),
	)
	return frame
}

// #endregion mutations

// #region build

func buildFrame(revision string, s balance.State) Frame {
	shape := geometry.ComputeShape(s)
	return Frame{
		Revision:  revision,
		State:     s,
		Shape:     shape,
		Path:      shape.PathData(),
		IdealPath: geometry.IdealPathData(),
		Report:    scoring.Compute(s),
	}
}

// #endregion build
