package audit

import (
	"github.com/shopspring/decimal"

	"edgefinder/internal/edge"
)

// Summary is the audit aggregate over a whole log.
type Summary struct {
	Wins            int             `json:"wins"`
	Losses          int             `json:"losses"`
	Total           int             `json:"total"`
	TotalRisk       decimal.Decimal `json:"total_risk"`
	TotalPayout     decimal.Decimal `json:"total_payout"`
	NetPL           decimal.Decimal `json:"net_pl"`
	ROIPct          float64         `json:"roi_pct"`
	EdgeAccuracyPct float64         `json:"edge_accuracy_pct"`
	ProcessGrade    edge.Grade      `json:"process_grade"`
}

// Summarize recomputes the aggregate from entries. Every result other than
// W counts as a loss, Push and Pending included.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries), TotalRisk: decimal.Zero, TotalPayout: decimal.Zero}

	edgeReal := 0
	for _, e := range entries {
		if e.Result == ResultWin {
			s.Wins++
		}
		if e.EdgeReal {
			edgeReal++
		}
		s.TotalRisk = s.TotalRisk.Add(e.Risk)
		s.TotalPayout = s.TotalPayout.Add(e.Payout)
	}
	s.Losses = s.Total - s.Wins
	s.NetPL = s.TotalPayout.Sub(s.TotalRisk)

	if s.TotalRisk.IsPositive() {
		s.ROIPct = s.NetPL.Div(s.TotalRisk).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	if s.Total > 0 {
		s.EdgeAccuracyPct = float64(edgeReal) / float64(s.Total) * 100
	}
	s.ProcessGrade = ProcessGrade(s.EdgeAccuracyPct)
	return s
}

// ProcessGrade grades edge accuracy. Boundaries are inclusive.
func ProcessGrade(edgeAccuracyPct float64) edge.Grade {
	switch {
	case edgeAccuracyPct >= 80:
		return edge.GradeA
	case edgeAccuracyPct >= 70:
		return edge.GradeBPlus
	case edgeAccuracyPct >= 60:
		return edge.GradeB
	default:
		return edge.GradeC
	}
}

// ReviewRow is one line of the "was the edge real?" review.
type ReviewRow struct {
	Entry     Entry           `json:"entry"`
	PL        decimal.Decimal `json:"pl"`
	Won       bool            `json:"won"`
	EdgeLabel string          `json:"edge_label"`
}

// Review builds the honest-review rows in log order.
func Review(entries []Entry) []ReviewRow {
	rows := make([]ReviewRow, 0, len(entries))
	for _, e := range entries {
		label := "No real edge"
		if e.EdgeReal {
			label = "Edge was real"
		}
		rows = append(rows, ReviewRow{Entry: e, PL: e.PL(), Won: e.Result == ResultWin, EdgeLabel: label})
	}
	return rows
}
