package session

import (
	"github.com/shopspring/decimal"

	"edgefinder/internal/audit"
	"edgefinder/internal/bankroll"
	"edgefinder/internal/catalog"
	"edgefinder/internal/edge"
	"edgefinder/internal/odds"
	"edgefinder/internal/parlay"
)

// GameView is a catalog game with everything the slate derives from it.
type GameView struct {
	catalog.Game
	Label     string         `json:"label"`
	Action    edge.Action    `json:"action"`
	Alignment string         `json:"alignment"`
	FairLine  *odds.FairLine `json:"fair_line,omitempty"`
}

// NewGameView derives the slate view. A moneyline that does not parse
// leaves FairLine nil.
func NewGameView(g catalog.Game) GameView {
	v := GameView{
		Game:      g,
		Label:     g.Label(),
		Action:    edge.Recommend(g.Grade),
		Alignment: edge.AlignmentLabel(g.Gut),
	}
	if fl, err := odds.FairLineFromStrings(g.MoneylineAway, g.MoneylineHome); err == nil {
		v.FairLine = &fl
	}
	return v
}

// GameViews maps NewGameView over games.
func GameViews(games []catalog.Game) []GameView {
	out := make([]GameView, 0, len(games))
	for _, g := range games {
		out = append(out, NewGameView(g))
	}
	return out
}

// DeepDive is the edge analyzer result for one game.
type DeepDive struct {
	Game    GameView          `json:"game"`
	Thesis  *edge.ThesisCheck `json:"thesis,omitempty"`
	Verdict string            `json:"verdict"`
	MaxRisk decimal.Decimal   `json:"max_risk"`
}

// AuditView is the audit tab: summary, log rows and the weekly series.
type AuditView struct {
	Summary audit.Summary     `json:"summary"`
	Entries []audit.Entry     `json:"entries"`
	Review  []audit.ReviewRow `json:"review"`
	Weekly  []audit.Week      `json:"weekly"`
}

// Dashboard is the whole-session snapshot.
type Dashboard struct {
	ID         string          `json:"id"`
	Bankroll   bankroll.Limits `json:"bankroll"`
	Parlay     parlay.Quote    `json:"parlay"`
	Selected   *GameView       `json:"selected,omitempty"`
	BetsLogged int             `json:"bets_logged"`
	Messages   int             `json:"messages"`
	LiveChat   bool            `json:"live_chat"`
}
