package scoring

// Tier is the letter grade derived from a final score.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierF Tier = "F"
	// TierInvalid marks a result computed from unusable financial data.
	TierInvalid Tier = "N/A"
)

// TierFor maps a score to its tier. Lower bounds are inclusive.
func TierFor(score int) Tier {
	switch {
	case score >= 90:
		return TierS
	case score >= 80:
		return TierA
	case score >= 70:
		return TierB
	case score >= 50:
		return TierC
	default:
		return TierF
	}
}
