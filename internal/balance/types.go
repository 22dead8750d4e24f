// Package balance defines the four-axis balance state and the static
// metadata describing each balance point.
package balance

// #region constants

// Field values are constrained to [MinValue, MaxValue].
const (
	MinValue = -50
	MaxValue = 50
)

// #endregion constants

// #region point

// Point identifies one of the four balance dimensions.
type Point string

const (
	PointValue     Point = "value"
	PointDirection Point = "direction"
	PointExchange  Point = "exchange"
	PointOperate   Point = "operate"
)

// Points returns the four balance points in canonical order.
func Points() [4]Point {
	return [4]Point{PointValue, PointDirection, PointExchange, PointOperate}
}

// #endregion point

// #region state

// State is a snapshot of the four balance-point values. It is a value type:
// callers pass it by value into the engines, which hold no state of their own.
// The zero State is the ideal form.
type State struct {
	Value     int `json:"value" yaml:"value"`
	Direction int `json:"direction" yaml:"direction"`
	Exchange  int `json:"exchange" yaml:"exchange"`
	Operate   int `json:"operate" yaml:"operate"`
}

// Get returns the value for a balance point. Unknown points return 0.
func (s State) Get(p Point) int {
	switch p {
	case PointValue:
		return s.Value
	case PointDirection:
		return s.Direction
	case PointExchange:
		return s.Exchange
	case PointOperate:
		return s.Operate
	}
	return 0
}

// With returns a copy of s with one balance point replaced. The new value is
// not clamped; clamping is the boundary's job.
func (s State) With(p Point, v int) State {
	switch p {
	case PointValue:
		s.Value = v
	case PointDirection:
		s.Direction = v
	case PointExchange:
		s.Exchange = v
	case PointOperate:
		s.Operate = v
	}
	return s
}

// Clamp returns a copy of s with every field clamped to [MinValue, MaxValue].
func (s State) Clamp() State {
	return State{
		Value:     clamp(s.Value),
		Direction: clamp(s.Direction),
		Exchange:  clamp(s.Exchange),
		Operate:   clamp(s.Operate),
	}
}

// TotalDeviation returns the sum of absolute deviations from the ideal form.
func (s State) TotalDeviation() int {
	return abs(s.Value) + abs(s.Direction) + abs(s.Exchange) + abs(s.Operate)
}

// IsIdeal reports whether all four fields are zero.
func (s State) IsIdeal() bool {
	return s == State{}
}

// #endregion state

// #region helpers

func clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion helpers
