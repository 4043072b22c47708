package bankroll

import "github.com/shopspring/decimal"

// ExposureTier classifies daily exposure against the daily limit.
type ExposureTier string

const (
	ExposureOK     ExposureTier = "ok"
	ExposureWarn   ExposureTier = "warn"
	ExposureBreach ExposureTier = "breach"
)

// StopLossTier is advisory; a triggered stop-loss does not block actions.
type StopLossTier string

const (
	StopLossActive    StopLossTier = "active"
	StopLossTriggered StopLossTier = "triggered"
)

// Limits is the derived read-model of a bankroll.
type Limits struct {
	Balance   decimal.Decimal `json:"balance"`
	Starting  decimal.Decimal `json:"starting"`
	DailyRisk decimal.Decimal `json:"daily_risk"`

	MaxSingleBet     decimal.Decimal `json:"max_single_bet"`
	MaxDailyRisk     decimal.Decimal `json:"max_daily_risk"`
	StopLossAmount   decimal.Decimal `json:"stop_loss_amount"`
	NetPL            decimal.Decimal `json:"net_pl"`
	NetPLPct         float64         `json:"net_pl_pct"`
	ExposurePct      float64         `json:"exposure_pct"`
	ExposureProgress float64         `json:"exposure_progress"`
	ExposureTier     ExposureTier    `json:"exposure_tier"`
	StopLossTier     StopLossTier    `json:"stop_loss_tier"`
}

// ClassifyExposure maps an exposure percentage to its tier.
func ClassifyExposure(pct float64) ExposureTier {
	switch {
	case pct < WarnExposurePct:
		return ExposureOK
	case pct < BreachExposurePct:
		return ExposureWarn
	default:
		return ExposureBreach
	}
}

// ClassifyStopLoss reports triggered once a loss reaches the stop-loss amount.
func ClassifyStopLoss(netPL, stopLoss decimal.Decimal) StopLossTier {
	if !netPL.IsNegative() || netPL.Abs().LessThan(stopLoss) {
		return StopLossActive
	}
	return StopLossTriggered
}

// Limits derives the exposure read-model. It does not mutate s.
func (s State) Limits() Limits {
	l := Limits{
		Balance:        s.Balance,
		Starting:       s.Starting,
		DailyRisk:      s.DailyRisk,
		MaxSingleBet:   MaxSingleBet(s.Balance),
		MaxDailyRisk:   MaxDailyRisk(s.Balance),
		StopLossAmount: StopLoss(s.Balance),
		NetPL:          s.NetPL(),
	}

	if s.Starting.IsPositive() {
		l.NetPLPct = l.NetPL.Div(s.Starting).Mul(hundred).InexactFloat64()
	}
	if l.MaxDailyRisk.IsPositive() {
		l.ExposurePct = s.DailyRisk.Div(l.MaxDailyRisk).Mul(hundred).InexactFloat64()
	}

	l.ExposureProgress = min(max(l.ExposurePct, 0), 100)
	l.ExposureTier = ClassifyExposure(l.ExposurePct)
	l.StopLossTier = ClassifyStopLoss(l.NetPL, l.StopLossAmount)
	return l
}
