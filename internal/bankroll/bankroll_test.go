package bankroll

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLimitPercentages(t *testing.T) {
	tests := []struct {
		balance  string
		single   string
		daily    string
		stopLoss string
	}{
		{"1000", "50", "150", "100"},
		{"0", "0", "0", "0"},
		{"1234.56", "61.728", "185.184", "123.456"},
		{"50", "2.5", "7.5", "5"},
	}

	for _, tt := range tests {
		b := d(tt.balance)
		if got := MaxSingleBet(b); !got.Equal(d(tt.single)) {
			t.Errorf("MaxSingleBet(%s) = %s, want %s", tt.balance, got, tt.single)
		}
		if got := MaxDailyRisk(b); !got.Equal(d(tt.daily)) {
			t.Errorf("MaxDailyRisk(%s) = %s, want %s", tt.balance, got, tt.daily)
		}
		if got := StopLoss(b); !got.Equal(d(tt.stopLoss)) {
			t.Errorf("StopLoss(%s) = %s, want %s", tt.balance, got, tt.stopLoss)
		}
	}
}

func TestSetBalance(t *testing.T) {
	s := New(d("1000"))
	if err := s.Commit(d("40")); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := s.SetBalance(d("1500")); err != nil {
		t.Fatalf("SetBalance: %v", err)
	}
	if !s.Balance.Equal(d("1500")) {
		t.Errorf("Balance = %s, want 1500", s.Balance)
	}
	if !s.Starting.Equal(d("1000")) {
		t.Errorf("Starting changed to %s", s.Starting)
	}
	if !s.DailyRisk.Equal(d("40")) {
		t.Errorf("DailyRisk changed to %s", s.DailyRisk)
	}

	if err := s.SetBalance(d("-1")); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("SetBalance(-1) err = %v, want ErrInvalidAmount", err)
	}
	if !s.Balance.Equal(d("1500")) {
		t.Errorf("rejected SetBalance mutated balance to %s", s.Balance)
	}
}

func TestCommitAndReset(t *testing.T) {
	s := New(d("1000"))
	s.Commit(d("25"))
	s.Commit(d("50.50"))
	if !s.DailyRisk.Equal(d("75.50")) {
		t.Errorf("DailyRisk = %s, want 75.50", s.DailyRisk)
	}
	if err := s.Commit(d("-5")); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Commit(-5) err = %v, want ErrInvalidAmount", err)
	}

	s.ResetDaily()
	if !s.DailyRisk.IsZero() {
		t.Errorf("DailyRisk after reset = %s", s.DailyRisk)
	}
}

func TestClassifyExposure(t *testing.T) {
	tests := []struct {
		pct  float64
		want ExposureTier
	}{
		{0, ExposureOK},
		{59.99, ExposureOK},
		{60, ExposureWarn},
		{84.99, ExposureWarn},
		{85, ExposureBreach},
		{250, ExposureBreach},
	}

	for _, tt := range tests {
		if got := ClassifyExposure(tt.pct); got != tt.want {
			t.Errorf("ClassifyExposure(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestClassifyStopLoss(t *testing.T) {
	tests := []struct {
		name     string
		netPL    string
		stopLoss string
		want     StopLossTier
	}{
		{"profit", "120", "100", StopLossActive},
		{"flat", "0", "100", StopLossActive},
		{"small loss", "-99.99", "100", StopLossActive},
		{"loss at limit", "-100", "100", StopLossTriggered},
		{"loss past limit", "-250", "100", StopLossTriggered},
		{"zero balance", "-1000", "0", StopLossTriggered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStopLoss(d(tt.netPL), d(tt.stopLoss)); got != tt.want {
				t.Errorf("ClassifyStopLoss(%s, %s) = %s, want %s", tt.netPL, tt.stopLoss, got, tt.want)
			}
		})
	}
}

func TestLimits(t *testing.T) {
	s := New(d("1000"))
	s.Commit(d("120"))

	l := s.Limits()
	if math.Abs(l.ExposurePct-80) > 1e-9 {
		t.Errorf("ExposurePct = %v, want 80", l.ExposurePct)
	}
	if l.ExposureTier != ExposureWarn {
		t.Errorf("ExposureTier = %s, want warn", l.ExposureTier)
	}
	if l.StopLossTier != StopLossActive {
		t.Errorf("StopLossTier = %s, want active", l.StopLossTier)
	}

	// Dropping the balance shrinks the limits and triggers the stop-loss.
	s.SetBalance(d("800"))
	l = s.Limits()
	if !l.NetPL.Equal(d("-200")) {
		t.Errorf("NetPL = %s, want -200", l.NetPL)
	}
	if math.Abs(l.NetPLPct+20) > 1e-9 {
		t.Errorf("NetPLPct = %v, want -20", l.NetPLPct)
	}
	if l.StopLossTier != StopLossTriggered {
		t.Errorf("StopLossTier = %s, want triggered", l.StopLossTier)
	}
	if math.Abs(l.ExposurePct-100) > 1e-9 || l.ExposureProgress != 100 {
		t.Errorf("ExposurePct = %v progress = %v, want 100/100", l.ExposurePct, l.ExposureProgress)
	}

	s.Commit(d("120"))
	l = s.Limits()
	if l.ExposurePct <= 100 || l.ExposureProgress != 100 {
		t.Errorf("progress should clamp at 100, pct=%v progress=%v", l.ExposurePct, l.ExposureProgress)
	}
}

func TestLimitsZeroBalance(t *testing.T) {
	s := New(decimal.Zero)
	s.Commit(d("10"))

	l := s.Limits()
	if l.ExposurePct != 0 {
		t.Errorf("ExposurePct with zero limit = %v, want 0", l.ExposurePct)
	}
	if l.NetPLPct != 0 {
		t.Errorf("NetPLPct with zero baseline = %v, want 0", l.NetPLPct)
	}
	if l.ExposureTier != ExposureOK {
		t.Errorf("ExposureTier = %s, want ok", l.ExposureTier)
	}
}
