package constants

// Hard Limits
const (
	// MaxCarSize is the largest sprite edge accepted by the rasterizer
	MaxCarSize = 20

	// MaxPlayers is the number of players sharing one keyboard
	MaxPlayers = 2

	// InputQueueSize is the capacity of the key event queue between the poller and the race loop
	InputQueueSize = 256
)
