package odds

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmerican parses American odds as printed on the slate: "+220",
// "-270", "110". Values with |odds| < 100 are not American odds.
func ParseAmerican(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing american odds %q: %w", s, err)
	}
	if n > -100 && n < 100 {
		return 0, fmt.Errorf("american odds %d out of range", n)
	}
	return n, nil
}

// FormatAmerican renders odds with an explicit sign for positive values.
func FormatAmerican(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return strconv.Itoa(odds)
}

// AmericanToImplied converts American odds to implied probability
// Example: -150 → 0.6 (60%), +150 → 0.4 (40%)
func AmericanToImplied(odds int) float64 {
	if odds == 0 {
		return 0
	}

	if odds > 0 {
		// Underdog: probability = 100 / (odds + 100)
		return 100.0 / (float64(odds) + 100.0)
	}
	// Favorite: probability = |odds| / (|odds| + 100)
	return math.Abs(float64(odds)) / (math.Abs(float64(odds)) + 100.0)
}

// AmericanToDecimal converts American odds to decimal odds (stake included).
func AmericanToDecimal(odds int) float64 {
	switch {
	case odds > 0:
		return float64(odds)/100.0 + 1.0
	case odds < 0:
		return 100.0/math.Abs(float64(odds)) + 1.0
	default:
		return 0
	}
}
