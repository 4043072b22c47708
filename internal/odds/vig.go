package odds

// RemoveVig removes the vig/juice from a two-way market
// Returns the true probabilities that sum to 1.0
//
// Method: Multiplicative vig removal (proportional)
// trueProbA = impliedA / (impliedA + impliedB)
func RemoveVig(impliedA, impliedB float64) (float64, float64) {
	if impliedA <= 0 || impliedB <= 0 {
		return 0, 0
	}

	total := impliedA + impliedB
	return impliedA / total, impliedB / total
}

// Hold returns the bookmaker margin of a two-way market, e.g. 0.045 for 4.5%.
func Hold(oddsA, oddsB int) float64 {
	impliedA := AmericanToImplied(oddsA)
	impliedB := AmericanToImplied(oddsB)
	if impliedA <= 0 || impliedB <= 0 {
		return 0
	}
	return impliedA + impliedB - 1
}

// FairLine is the no-vig view of a printed two-way moneyline.
type FairLine struct {
	ImpliedA float64 `json:"implied_a"`
	ImpliedB float64 `json:"implied_b"`
	FairA    float64 `json:"fair_a"`
	FairB    float64 `json:"fair_b"`
	Hold     float64 `json:"hold"`
}

// FairLineFromStrings parses both sides and strips the vig. Either side
// failing to parse is an error.
func FairLineFromStrings(a, b string) (FairLine, error) {
	oddsA, err := ParseAmerican(a)
	if err != nil {
		return FairLine{}, err
	}
	oddsB, err := ParseAmerican(b)
	if err != nil {
		return FairLine{}, err
	}

	fl := FairLine{
		ImpliedA: AmericanToImplied(oddsA),
		ImpliedB: AmericanToImplied(oddsB),
		Hold:     Hold(oddsA, oddsB),
	}
	fl.FairA, fl.FairB = RemoveVig(fl.ImpliedA, fl.ImpliedB)
	return fl, nil
}
