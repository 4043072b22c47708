package edge

// Gut is how well the handicapper's instinct lines up with the data.
type Gut string

const (
	GutStrong   Gut = "strong"
	GutSupports Gut = "supports"
	GutNeutral  Gut = "neutral"
)

// AlignmentLabel is the short label shown on the slate's quick analysis.
func AlignmentLabel(g Gut) string {
	switch g {
	case GutStrong:
		return "STRONG ALIGNMENT"
	case GutSupports:
		return "SUPPORTS"
	default:
		return "NEUTRAL"
	}
}

// ThesisCheck is the gut + data verdict for a user's written thesis.
type ThesisCheck struct {
	Thesis  string `json:"thesis"`
	Label   string `json:"label"`
	Aligned bool   `json:"aligned"`
	Note    string `json:"note"`
}

// CheckThesis compares a thesis against the game's gut alignment. The
// thesis text itself is not analyzed.
func CheckThesis(thesis string, g Gut) ThesisCheck {
	c := ThesisCheck{Thesis: thesis}
	switch g {
	case GutStrong:
		c.Label = "STRONG ALIGNMENT"
	case GutSupports:
		c.Label = "PARTIAL ALIGNMENT"
	default:
		c.Label = "NEUTRAL -- Need more data"
	}
	c.Aligned = g == GutStrong || g == GutSupports
	if g != GutNeutral {
		c.Note = "Your instinct aligns with the available data."
	} else {
		c.Note = "Your instinct needs more data to align with the available data."
	}
	return c
}
