package quiz

import "time"

// Result is the immutable outcome of a finished session.
type Result struct {
	Score       int
	Total       int
	Percentage  float64
	Elapsed     time.Duration
	CompletedAt time.Time
}

// Tier is a qualitative performance band derived from the final
// percentage. The thresholds are part of the session contract: drivers
// key their closing message off the band, not the raw percentage.
type Tier int

const (
	// TierPractice covers percentages below 50.
	TierPractice Tier = iota
	// TierGood covers percentages from 50 up to 70.
	TierGood
	// TierGreat covers percentages from 70 up to 90.
	TierGreat
	// TierMaster covers percentages of 90 and above.
	TierMaster
)

// Tier maps the result percentage to its performance band.
func (result Result) Tier() Tier {
	switch {
	case result.Percentage >= 90:
		return TierMaster
	case result.Percentage >= 70:
		return TierGreat
	case result.Percentage >= 50:
		return TierGood
	default:
		return TierPractice
	}
}

// String returns a short label for the tier.
func (tier Tier) String() string {
	switch tier {
	case TierMaster:
		return "master"
	case TierGreat:
		return "great"
	case TierGood:
		return "good"
	default:
		return "practice"
	}
}
