package audit

import (
	"github.com/shopspring/decimal"

	"edgefinder/internal/edge"
)

// Week is one bar of the weekly P/L chart.
type Week struct {
	Week     string `json:"week"`
	Starting int    `json:"starting"`
	Ending   int    `json:"ending"`
	Bets     int    `json:"bets"`
	Record   string `json:"record"`
	Net      int    `json:"net"`
}

// WeeklyPL returns the demo eight-week series.
func WeeklyPL() []Week {
	return []Week{
		{"Week 1", 1000, 1085, 6, "4-2", 85},
		{"Week 2", 1085, 1220, 5, "4-1", 135},
		{"Week 3", 1220, 1145, 7, "3-4", -75},
		{"Week 4", 1145, 1310, 5, "4-1", 165},
		{"Week 5", 1310, 1430, 6, "4-2", 120},
		{"Week 6", 1430, 1365, 4, "2-2", -65},
		{"Week 7", 1365, 1530, 5, "4-1", 165},
		{"Week 8", 1530, 1480, 6, "3-3", -50},
	}
}

// SeedLog returns the demo bet log shown before a session logs anything.
func SeedLog() []Entry {
	return []Entry{
		seed("2026-02-24", "Bucks -4 vs Heat", TypeSpread, edge.GradeB, 100, ResultWin, 195, true,
			"Fatigue edge was real. Heat shot 38%."),
		seed("2026-02-24", "Jokic O11.5 reb", TypeProp, edge.GradeA, 50, ResultWin, 140, true,
			"Finished with 15 rebounds. Matchup edge validated."),
		seed("2026-02-24", "3-Leg Parlay", TypeParlay, edge.GradeB, 50, ResultLoss, 0, true,
			"Lost on Bills/Pats UNDER. Fluke TDs in garbage time."),
		seed("2026-02-23", "Knicks -5.5 vs Pacers", TypeSpread, edge.GradeA, 150, ResultWin, 295, true,
			"Pacers missing 2 starters. Line was too low."),
		seed("2026-02-23", "Panthers ML vs Lightning", TypeML, edge.GradeBPlus, 75, ResultWin, 158, true,
			"Kucherov out. Panthers dominated."),
		seed("2026-02-22", "Lakers -8 vs Hornets", TypeSpread, edge.GradeC, 50, ResultLoss, 0, false,
			"No real edge. Should have passed. Grade C = pass."),
	}
}

func seed(date, desc string, bt BetType, g edge.Grade, risk int64, r Result, payout int64, edgeReal bool, notes string) Entry {
	return Entry{
		Date:        date,
		Description: desc,
		BetType:     bt,
		Grade:       g,
		Risk:        decimal.NewFromInt(risk),
		Result:      r,
		Payout:      decimal.NewFromInt(payout),
		Notes:       notes,
		EdgeReal:    edgeReal,
	}
}
