// Package scoring derives the structural-integrity score, health tier, and
// per-point effect bands from a balance state. Pure and total over the
// pre-clamped domain; the caller owns range validation.
package scoring

// #region imports
import "github.com/kibbyd/tensegrity/internal/balance"

// #endregion imports

// #region constants

// bandThreshold is the strict cutoff for the low/high bands: values at
// exactly ±30 are still balanced. A contract, not a tunable.
const bandThreshold = 30

// #endregion constants

// #region integrity

// ComputeIntegrity returns the 0–100 structural integrity of a state.
// Each unit of absolute deviation costs half a point; the divisor of 2 is
// preserved from the original formula as-is. Floor at 0, exactly 100 only
// for the ideal form.
func ComputeIntegrity(s balance.State) float64 {
	score := 100 - float64(s.TotalDeviation())/2
	if score < 0 {
		return 0
	}
	return score
}

// #endregion integrity

// #region bands

// ClassifyBand places a single balance value into one of three bands.
func ClassifyBand(v int) Band {
	switch {
	case v < -bandThreshold:
		return BandLow
	case v > bandThreshold:
		return BandHigh
	default:
		return BandBalanced
	}
}

// Effects classifies every balance point independently and attaches the
// matching effect text from its spec.
func Effects(s balance.State) []Effect {
	specs := balance.Specs()
	out := make([]Effect, 0, len(specs))
	for _, spec := range specs {
		band := ClassifyBand(s.Get(spec.Key))
		out = append(out, Effect{
			Point: spec.Key,
			Label: spec.Label,
			Band:  band,
			Text:  effectText(spec.Effects, band),
		})
	}
	return out
}

func effectText(e balance.Effects, band Band) string {
	switch band {
	case BandLow:
		return e.Low
	case BandHigh:
		return e.High
	default:
		return e.Balanced
	}
}

// #endregion bands

// #region tiers

var tierDetails = []struct {
	floor  float64
	detail TierDetail
}{
	{80, TierDetail{TierExcellent, "Excellent", "The structure holds its ideal form; all forces pull in proportion."}},
	{60, TierDetail{TierGood, "Good", "Minor distortion; the structure absorbs current tension comfortably."}},
	{40, TierDetail{TierModerate, "Moderate", "Visible strain; one or more balance points need attention."}},
	{20, TierDetail{TierSignificant, "Significant", "The form is badly distorted; competing forces are winning."}},
	{0, TierDetail{TierCritical, "Critical", "Structural failure; the diamond no longer holds its shape."}},
}

// DescribeHealth maps a score to its tier. Boundaries are inclusive on the
// lower edge: 80 is excellent, 60 is good, and so on.
func DescribeHealth(score float64) Tier {
	return HealthDetail(score).Tier
}

// HealthDetail returns the tier with its display label and summary.
func HealthDetail(score float64) TierDetail {
	for _, t := range tierDetails {
		if score >= t.floor {
			return t.detail
		}
	}
	return tierDetails[len(tierDetails)-1].detail
}

// #endregion tiers

// #region report

// Compute runs the full scoring pass over one state.
func Compute(s balance.State) Report {
	score := ComputeIntegrity(s)
	detail := HealthDetail(score)
	return Report{
		Score:   score,
		Tier:    detail.Tier,
		Label:   detail.Label,
		Summary: detail.Summary,
		Effects: Effects(s),
	}
}

// #endregion report
