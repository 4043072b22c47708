package parlay

import (
	"fmt"

	"edgefinder/internal/edge"
)

// LegStatus answers "would you place this leg as a straight bet?"
type LegStatus string

const (
	StatusValid   LegStatus = "valid"
	StatusCaution LegStatus = "caution"
	StatusInvalid LegStatus = "invalid"
)

// LegCheck is the validation result for one leg.
type LegCheck struct {
	Leg     Leg         `json:"leg"`
	Status  LegStatus   `json:"status"`
	Message string      `json:"message,omitempty"`
	Action  edge.Action `json:"action"`
}

// Validation covers the whole parlay.
type Validation struct {
	Legs     []LegCheck `json:"legs"`
	AllValid bool       `json:"all_valid"`
	Summary  string     `json:"summary,omitempty"`
}

// CheckLeg classifies one leg by its grade snapshot.
func CheckLeg(leg Leg) LegCheck {
	c := LegCheck{Leg: leg, Status: StatusValid, Action: edge.Recommend(leg.Grade)}
	switch {
	case leg.Grade.NoEdge():
		c.Status = StatusInvalid
		c.Message = fmt.Sprintf("WARNING: %s has Grade %s. No edge = no leg.", leg.Game, leg.Grade)
	case leg.Grade == edge.GradeC:
		c.Status = StatusCaution
		c.Message = fmt.Sprintf("CAUTION: %s has Grade %s. Weak edge for a parlay leg.", leg.Game, leg.Grade)
	}
	return c
}

// Validate checks every leg. The parlay is AllValid only when every leg is
// valid; an empty parlay is trivially valid.
func Validate(legs []Leg) Validation {
	v := Validation{Legs: make([]LegCheck, 0, len(legs)), AllValid: true}
	for _, leg := range legs {
		c := CheckLeg(leg)
		if c.Status != StatusValid {
			v.AllValid = false
		}
		v.Legs = append(v.Legs, c)
	}
	if v.AllValid && len(legs) > 0 {
		v.Summary = "All legs have independent edge. Parlay is valid."
	}
	return v
}
