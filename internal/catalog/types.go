package catalog

import (
	"fmt"

	"edgefinder/internal/edge"
)

// Sport tags used by the slate.
const (
	SportNBA = "NBA"
	SportNHL = "NHL"
	SportNFL = "NFL"
	SportCFB = "CFB"

	// AllSports disables the sport filter on props.
	AllSports = "All"
)

// Game is one slate entry. Records are immutable fixture data.
type Game struct {
	ID            string     `json:"id"`
	Sport         string     `json:"sport"`
	AwayTeam      string     `json:"away_team"`
	HomeTeam      string     `json:"home_team"`
	Spread        string     `json:"spread"`
	Total         string     `json:"total"`
	MoneylineAway string     `json:"moneyline_away"`
	MoneylineHome string     `json:"moneyline_home"`
	StartTime     string     `json:"start_time"`
	Grade         edge.Grade `json:"grade"`
	EdgeReason    string     `json:"edge_reason"`
	BullCase      string     `json:"bull_case"` // why the market might be wrong
	BearCase      string     `json:"bear_case"` // why the market might be right
	Gut           edge.Gut   `json:"gut"`
}

// Label is the "Away @ Home" matchup name.
func (g Game) Label() string {
	return fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam)
}

// Prop is a player prop fixture.
type Prop struct {
	ID             string     `json:"id"`
	Player         string     `json:"player"`
	Sport          string     `json:"sport"`
	Team           string     `json:"team"`
	PropType       string     `json:"prop_type"`
	Line           string     `json:"line"`
	Grade          edge.Grade `json:"grade"`
	Reasoning      string     `json:"reasoning"`
	Recommendation string     `json:"recommendation"`
	Matchup        string     `json:"matchup"`
}

// SportInfo describes how a sport is treated on the slate.
type SportInfo struct {
	Sport     string `json:"sport"`
	Focus     string `json:"focus"`
	Offseason bool   `json:"offseason"`
	Note      string `json:"note"`
}

// Sports returns the slate's sports in display order.
func Sports() []SportInfo {
	return []SportInfo{
		{Sport: SportNBA, Focus: "primary", Note: "NBA is PRIMARY focus. Spreads, totals, ML, player props. Daily action."},
		{Sport: SportNHL, Focus: "secondary", Note: "NHL is SECONDARY focus. ML and totals preferred. Goalie situations, B2Bs, weekend heavy."},
		{Sport: SportNFL, Focus: "reference", Offseason: true, Note: "NFL is currently offseason. Showing reference data only."},
		{Sport: SportCFB, Focus: "reference", Offseason: true, Note: "CFB is currently offseason. Showing reference data only."},
	}
}
