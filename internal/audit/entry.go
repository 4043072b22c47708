package audit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"edgefinder/internal/edge"
)

// ErrInvalidEntry is returned when a bet log submission fails validation.
var ErrInvalidEntry = errors.New("invalid bet log entry")

// Result is a settled (or pending) bet outcome.
type Result string

const (
	ResultPending Result = "Pending"
	ResultWin     Result = "W"
	ResultLoss    Result = "L"
	ResultPush    Result = "Push"
)

var results = []Result{ResultPending, ResultWin, ResultLoss, ResultPush}

// BetType is the market of a logged bet. It is coarser than a parlay leg's
// bet type.
type BetType string

const (
	TypeSpread BetType = "Spread"
	TypeML     BetType = "ML"
	TypeTotal  BetType = "Total"
	TypeProp   BetType = "Prop"
	TypeParlay BetType = "Parlay"
)

var betTypes = []BetType{TypeSpread, TypeML, TypeTotal, TypeProp, TypeParlay}

// Entry is one row of the bet log.
type Entry struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	BetType     BetType         `json:"bet_type"`
	Grade       edge.Grade      `json:"grade"`
	Risk        decimal.Decimal `json:"risk"`
	Result      Result          `json:"result"`
	Payout      decimal.Decimal `json:"payout"`
	Thesis      string          `json:"thesis,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	EdgeReal    bool            `json:"edge_real"`
}

// PL is payout minus risk.
func (e Entry) PL() decimal.Decimal {
	return e.Payout.Sub(e.Risk)
}

// Validate rejects entries the log must not accept.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidEntry)
	}
	if e.Risk.IsNegative() {
		return fmt.Errorf("%w: risk %s is negative", ErrInvalidEntry, e.Risk)
	}
	if e.Payout.IsNegative() {
		return fmt.Errorf("%w: payout %s is negative", ErrInvalidEntry, e.Payout)
	}
	if !e.Grade.Known() {
		return fmt.Errorf("%w: unknown grade %q", ErrInvalidEntry, e.Grade)
	}
	if !contains(results, e.Result) {
		return fmt.Errorf("%w: unknown result %q", ErrInvalidEntry, e.Result)
	}
	if !contains(betTypes, e.BetType) {
		return fmt.Errorf("%w: unknown bet type %q", ErrInvalidEntry, e.BetType)
	}
	return nil
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
