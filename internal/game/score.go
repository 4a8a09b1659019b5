package game

import "math"

// Score rates a guess against the round's angle on a 0-100 scale. The score
// falls off cubically with the absolute error and reaches zero at 180°.
func Score(actual, guess float64) float64 {
	diff := math.Abs(actual - guess)
	closeness := math.Max(0, 1-diff/180)
	return 100 * closeness * closeness * closeness
}
