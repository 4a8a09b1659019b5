package play

import (
	"time"

	"github.com/abhisek/angler/internal/game"
)

// roundReadyMsg is sent when a new round has been generated.
type roundReadyMsg struct {
	Outcome *game.Outcome
}

// roundFailedMsg is sent when round generation fails after retries.
type roundFailedMsg struct {
	Err error
}

// scoreTickMsg drives the score counter animation.
type scoreTickMsg time.Time

// persistDoneMsg confirms the round was written to history.
type persistDoneMsg struct {
	Err error
}
