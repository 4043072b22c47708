package bankroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Bankroll rules: hard stops as a share of the current balance.
var (
	SingleBetPct = decimal.RequireFromString("0.05")
	DailyRiskPct = decimal.RequireFromString("0.15")
	StopLossPct  = decimal.RequireFromString("0.10")
)

// Exposure tier boundaries, in percent of the daily risk limit.
const (
	WarnExposurePct   = 60.0
	BreachExposurePct = 85.0
)

// ErrInvalidAmount is returned for negative balances or risk amounts.
var ErrInvalidAmount = errors.New("amount must be non-negative")

var hundred = decimal.NewFromInt(100)

// State is a session's bankroll. Starting is the session baseline and is
// set once; DailyRisk sums the risk of bets logged today.
type State struct {
	Balance   decimal.Decimal `json:"balance"`
	Starting  decimal.Decimal `json:"starting"`
	DailyRisk decimal.Decimal `json:"daily_risk"`
}

// New returns a bankroll whose balance and baseline are both starting.
func New(starting decimal.Decimal) State {
	return State{Balance: starting, Starting: starting, DailyRisk: decimal.Zero}
}

// MaxSingleBet is 5% of balance.
func MaxSingleBet(balance decimal.Decimal) decimal.Decimal {
	return balance.Mul(SingleBetPct)
}

// MaxDailyRisk is 15% of balance.
func MaxDailyRisk(balance decimal.Decimal) decimal.Decimal {
	return balance.Mul(DailyRiskPct)
}

// StopLoss is 10% of balance.
func StopLoss(balance decimal.Decimal) decimal.Decimal {
	return balance.Mul(StopLossPct)
}

// SetBalance replaces the balance. Starting and DailyRisk are untouched.
func (s *State) SetBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("balance %s: %w", amount.StringFixed(2), ErrInvalidAmount)
	}
	s.Balance = amount
	return nil
}

// Commit adds a logged bet's risk to today's exposure.
func (s *State) Commit(risk decimal.Decimal) error {
	if risk.IsNegative() {
		return fmt.Errorf("risk %s: %w", risk.StringFixed(2), ErrInvalidAmount)
	}
	s.DailyRisk = s.DailyRisk.Add(risk)
	return nil
}

// ResetDaily clears today's exposure at the day boundary.
func (s *State) ResetDaily() {
	s.DailyRisk = decimal.Zero
}

// NetPL is balance minus the session baseline.
func (s State) NetPL() decimal.Decimal {
	return s.Balance.Sub(s.Starting)
}
