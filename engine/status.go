package engine

// Status is a player's race state; every value but StatusAlive is terminal
type Status int

const (
	StatusAlive    Status = iota
	StatusCrashed         // Hit terrain, a rock or another car
	StatusFinished        // Reached row 0
	StatusRetired         // Race aborted by the quit key or cancellation
)

var statusNames = [...]string{"alive", "crashed", "finished", "retired"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Terminal reports whether the player can no longer move
func (s Status) Terminal() bool {
	return s != StatusAlive
}
