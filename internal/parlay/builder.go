package parlay

import (
	"errors"
	"fmt"
	"strings"

	"edgefinder/internal/catalog"
	"edgefinder/internal/edge"
)

const (
	// MaxLegs is the hard stop.
	MaxLegs = 4
	// RecommendedMaxLegs is the count past which adding warns.
	RecommendedMaxLegs = 3

	defaultLegOdds = "-110"
)

var (
	ErrCapacityExceeded = errors.New("parlay already has the maximum of 4 legs")
	ErrSoftWarning      = errors.New("3 legs is the recommended maximum")
	ErrIndexOutOfRange  = errors.New("leg index out of range")
	ErrUnknownBetType   = errors.New("unknown bet type")
)

// BetType is the market a leg is placed on.
type BetType string

const (
	BetSpread    BetType = "Spread"
	BetOver      BetType = "Total (Over)"
	BetUnder     BetType = "Total (Under)"
	BetMoneyline BetType = "Moneyline"
)

// BetTypes lists the leg markets in display order.
var BetTypes = []BetType{BetSpread, BetOver, BetUnder, BetMoneyline}

// ParseBetType matches s case-insensitively against BetTypes.
func ParseBetType(s string) (BetType, error) {
	s = strings.TrimSpace(s)
	for _, bt := range BetTypes {
		if strings.EqualFold(s, string(bt)) {
			return bt, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownBetType)
}

// Leg is a snapshot of a catalog game at the time it was added.
type Leg struct {
	GameID  string     `json:"game_id"`
	Game    string     `json:"game"`
	BetType BetType    `json:"bet_type"`
	Line    string     `json:"line"`
	Grade   edge.Grade `json:"grade"`
	Odds    string     `json:"odds"`
}

// NewLeg snapshots g. The odds snapshot is the home moneyline.
func NewLeg(g catalog.Game, betType BetType) Leg {
	odds := g.MoneylineHome
	if odds == "" {
		odds = defaultLegOdds
	}
	return Leg{
		GameID:  g.ID,
		Game:    g.Label(),
		BetType: betType,
		Line:    g.Spread,
		Grade:   g.Grade,
		Odds:    odds,
	}
}

// Builder holds a session's parlay legs in insertion order.
type Builder struct {
	legs []Leg
}

// Add appends a leg for g. It fails with ErrCapacityExceeded, appending
// nothing, once MaxLegs legs exist. A non-nil warning (ErrSoftWarning)
// means the leg was appended past RecommendedMaxLegs.
func (b *Builder) Add(g catalog.Game, betType BetType) (leg Leg, warning error, err error) {
	if len(b.legs) >= MaxLegs {
		return Leg{}, nil, ErrCapacityExceeded
	}
	if len(b.legs) == RecommendedMaxLegs {
		warning = ErrSoftWarning
	}

	leg = NewLeg(g, betType)
	b.legs = append(b.legs, leg)
	return leg, warning, nil
}

// Remove deletes the leg at index i, keeping the others in order.
func (b *Builder) Remove(i int) (Leg, error) {
	if i < 0 || i >= len(b.legs) {
		return Leg{}, fmt.Errorf("index %d of %d legs: %w", i, len(b.legs), ErrIndexOutOfRange)
	}
	removed := b.legs[i]
	b.legs = append(b.legs[:i], b.legs[i+1:]...)
	return removed, nil
}

// Clear removes every leg.
func (b *Builder) Clear() {
	b.legs = nil
}

// Len is the current leg count.
func (b *Builder) Len() int {
	return len(b.legs)
}

// Legs returns a copy of the legs in insertion order.
func (b *Builder) Legs() []Leg {
	out := make([]Leg, len(b.legs))
	copy(out, b.legs)
	return out
}
