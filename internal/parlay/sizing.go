package parlay

import (
	"github.com/shopspring/decimal"

	"edgefinder/internal/bankroll"
)

// combinedOdds is a demo lookup by leg count, not leg-by-leg parlay math.
var combinedOdds = map[int]int{1: 100, 2: 264, 3: 485, 4: 890}

const fallbackCombinedOdds = 485

var (
	halfUnit    = decimal.RequireFromString("0.5")
	quarterUnit = decimal.RequireFromString("0.25")
)

// CombinedOdds returns the approximate positive American odds for n legs.
func CombinedOdds(n int) int {
	if v, ok := combinedOdds[n]; ok {
		return v
	}
	return fallbackCombinedOdds
}

// SuggestedRisk is half of the max single bet for up to three legs and a
// quarter of it beyond that.
func SuggestedRisk(n int, balance decimal.Decimal) decimal.Decimal {
	maxSingle := bankroll.MaxSingleBet(balance)
	if n <= RecommendedMaxLegs {
		return maxSingle.Mul(halfUnit)
	}
	return maxSingle.Mul(quarterUnit)
}

// Payout is the win on risk at positive American odds.
func Payout(risk decimal.Decimal, odds int) decimal.Decimal {
	return risk.Mul(decimal.NewFromInt(int64(odds))).Div(decimal.NewFromInt(100))
}

// Profile names the betting profile for n legs.
func Profile(n int) string {
	switch {
	case n >= 2 && n <= 3:
		return "Value Builder"
	case n == 4:
		return "Long Shot"
	default:
		return "Straight Bet"
	}
}

// ProfileRange is the odds range a profile aims for, empty for straight bets.
func ProfileRange(n int) string {
	switch Profile(n) {
	case "Value Builder":
		return "+400 to +1000"
	case "Long Shot":
		return "+800 to +2500"
	default:
		return ""
	}
}

// Quote is the parlay read-model: legs, validation and sizing.
type Quote struct {
	Legs          []Leg           `json:"legs"`
	Validation    Validation      `json:"validation"`
	CombinedOdds  int             `json:"combined_odds"`
	Profile       string          `json:"profile"`
	ProfileRange string          `json:"profile_range,omitempty"`
	SuggestedRisk decimal.Decimal `json:"suggested_risk"`
	Payout        decimal.Decimal `json:"payout"`
	MaxDailyRisk  decimal.Decimal `json:"max_daily_risk"`
	Exposed       decimal.Decimal `json:"exposed"`
}

// NewQuote prices legs against the bankroll.
func NewQuote(legs []Leg, b bankroll.State) Quote {
	n := len(legs)
	q := Quote{
		Legs:          legs,
		Validation:    Validate(legs),
		CombinedOdds:  CombinedOdds(n),
		Profile:       Profile(n),
		ProfileRange: ProfileRange(n),
		SuggestedRisk: SuggestedRisk(n, b.Balance),
		MaxDailyRisk:  bankroll.MaxDailyRisk(b.Balance),
		Exposed:       b.DailyRisk,
	}
	q.Payout = Payout(q.SuggestedRisk, q.CombinedOdds)
	return q
}
