package service

import "math"

const (
	// LoserDecayFactor scales the losing belief's confidence when a
	// resolution demotes it.
	LoserDecayFactor = 0.6
	// SupportDecayFactor scales each downstream belief reached over a
	// supports edge during propagation.
	SupportDecayFactor = 0.9
	// ReliabilityPenaltyWeight grows the reliability divisor for every
	// distinct value beyond the first asserted about a pair.
	ReliabilityPenaltyWeight = 0.3
)

// Round3 rounds half away from zero to three decimal places. Every
// confidence the engine stores goes through it.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Decay multiplies a confidence by factor and rounds. It always applies
// to the current stored value, so one triggering event never compounds
// two decays onto the same belief.
func Decay(confidence, factor float64) float64 {
	return Round3(confidence * factor)
}
