package edge

import "strings"

// Grade is a letter ranking of edge confidence. A is best, F is worst.
type Grade string

const (
	GradeA      Grade = "A"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// Grades lists every known grade, best first.
var Grades = []Grade{GradeA, GradeBPlus, GradeB, GradeBMinus, GradeC, GradeD, GradeF}

// ParseGrade normalizes s ("b+", " A ") and reports whether it is a known grade.
func ParseGrade(s string) (Grade, bool) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	return g, g.Known()
}

// Known reports whether g is one of Grades.
func (g Grade) Known() bool {
	for _, k := range Grades {
		if g == k {
			return true
		}
	}
	return false
}

// NoEdge reports whether g means there is nothing to bet (D or F).
func (g Grade) NoEdge() bool {
	return g == GradeD || g == GradeF
}

// RiskTier is the bet size a grade earns.
type RiskTier string

const (
	TierFull    RiskTier = "full"
	TierHalf    RiskTier = "half"
	TierSmall   RiskTier = "small"
	TierMinimal RiskTier = "minimal"
	TierNone    RiskTier = "none"
)

// Action is the recommendation derived from a grade.
type Action struct {
	Label   string   `json:"label"`
	Tier    RiskTier `json:"tier"`
	Verdict string   `json:"verdict"`
}

// Recommend maps a grade to its action. The mapping is total: unknown
// grades get the NO BET default.
func Recommend(g Grade) Action {
	switch g {
	case GradeA:
		return Action{Label: "Full unit", Tier: TierFull, Verdict: "Full unit. Clear edge."}
	case GradeBPlus:
		return Action{Label: "Half unit", Tier: TierHalf, Verdict: "Half to full unit. Edge exists."}
	case GradeB:
		return Action{Label: "Half unit", Tier: TierHalf, Verdict: "Half unit. Moderate confidence."}
	case GradeBMinus:
		return Action{Label: "Small bet, edge is thin", Tier: TierSmall, Verdict: "Small bet. Edge is thin."}
	case GradeC:
		return Action{Label: "Small or pass", Tier: TierMinimal, Verdict: "Small bet or PASS. Low confidence."}
	case GradeD:
		return Action{Label: "NO BET", Tier: TierNone, Verdict: "NO BET. No edge identified."}
	case GradeF:
		return Action{Label: "NO BET — market trap", Tier: TierNone, Verdict: "NO BET. Market is right. Trap."}
	default:
		return Action{Label: "NO BET", Tier: TierNone, Verdict: "NO BET"}
	}
}
