package domain

import "math"

// ConversionRate returns closed_won / (closed_won + closed_lost) as a
// percentage rounded to one decimal. Zero when nothing has closed yet.
func ConversionRate(won, lost int) float64 {
	total := won + lost
	if total == 0 {
		return 0
	}
	return math.Round(float64(won)/float64(total)*1000) / 10
}
