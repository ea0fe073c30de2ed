package constants

import "time"

// Race Loop Timing
const (
	// DefaultTickDelay is the pause between two race ticks
	DefaultTickDelay = 25 * time.Millisecond

	// ResultPollInterval is the wait between key polls on the results message
	ResultPollInterval = 25 * time.Millisecond
)

// Race Defaults
const (
	DefaultPlayers      = 1
	DefaultRaceLength   = 500
	DefaultCarSize      = 10
	DefaultSpeedBase    = 5
	DefaultRockChance   = 0.025
	DefaultTurnChance   = 0.125
	DefaultCarCharacter = "^"
)

// MinimalWidthFactor scales players*carSize into the automatic minimal road width
const MinimalWidthFactor = 2.5

// TurnRetryLimit bounds the kerb drift re-roll loop per row
const TurnRetryLimit = 5
