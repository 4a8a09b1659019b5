package components

import (
	"fmt"
	"math"
)

// ScoreCounter animates a score reveal: the displayed value climbs toward
// the target a fixed fraction per tick, driven by the owning screen's timer.
type ScoreCounter struct {
	target  float64
	current float64
}

// NewScoreCounter starts a counter at zero aiming at target.
func NewScoreCounter(target float64) ScoreCounter {
	return ScoreCounter{target: target}
}

// Tick advances the animation one step and reports whether it is done.
func (c *ScoreCounter) Tick() bool {
	remaining := c.target - c.current
	if remaining < 0.05 {
		c.current = c.target
		return true
	}
	c.current += math.Max(remaining*0.12, 0.05)
	return false
}

// Done reports whether the counter reached its target.
func (c ScoreCounter) Done() bool {
	return c.current == c.target
}

// View renders the current value as a whole-number score.
func (c ScoreCounter) View() string {
	return fmt.Sprintf("%.0f", c.current)
}
