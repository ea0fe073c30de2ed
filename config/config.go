// Package config holds the immutable race configuration and its validation.
package config

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/zracer/constants"
	"github.com/lixenwraith/zracer/input"
)

// Config is a read-only snapshot of race settings
// Values are passed by value into constructors; nothing mutates a Config after Resolve
type Config struct {
	Players int `toml:"players"`

	// Track geometry; zero widths are derived from the screen by Resolve
	RaceLength   int `toml:"race_length"`
	RaceWidth    int `toml:"race_width"`
	MinimalWidth int `toml:"minimal_width"`

	CarSize int `toml:"car_size"`

	// SpeedBase is the distance interval, in rows above the viewport top, at which move frequency changes
	SpeedBase int `toml:"speed_base"`

	// Per-row probabilities in [0,1]
	RockChance float64 `toml:"rock_chance"`
	TurnChance float64 `toml:"turn_chance"`

	Split   SplitAxis   `toml:"split"`
	Sharing SharingMode `toml:"sharing"`

	// Character draws the cars and marks their footprint on a shared track
	Character string `toml:"character"`

	// Delay between race ticks
	Delay Duration `toml:"delay"`

	// Seed for track generation and explosions; 0 seeds from the clock
	Seed int64 `toml:"seed"`

	Controls []input.Controls `toml:"controls"`
}

// DefaultControls returns the default bindings: arrows for player 1, WSAD for player 2
func DefaultControls() []input.Controls {
	return []input.Controls{
		{Accelerate: "Up", Brake: "Down", Left: "Left", Right: "Right"},
		{Accelerate: "w", Brake: "s", Left: "a", Right: "d"},
	}
}

// Default returns the stock settings; widths are left for Resolve
func Default() Config {
	return Config{
		Players:      constants.DefaultPlayers,
		RaceLength:   constants.DefaultRaceLength,
		RaceWidth:    0,
		MinimalWidth: 0,
		CarSize:      constants.DefaultCarSize,
		SpeedBase:    constants.DefaultSpeedBase,
		RockChance:   constants.DefaultRockChance,
		TurnChance:   constants.DefaultTurnChance,
		Split:        SplitVertical,
		Sharing:      SharingShared,
		Character:    constants.DefaultCarCharacter,
		Delay:        Duration(constants.DefaultTickDelay),
		Seed:         0,
		Controls:     DefaultControls(),
	}
}

// Glyph returns the car character as a rune
func (c Config) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Character)
	return r
}

// TickDelay returns the pause between ticks
func (c Config) TickDelay() time.Duration {
	return c.Delay.Std()
}

// Resolved reports whether both widths have been derived
func (c Config) Resolved() bool {
	return c.RaceWidth > 0 && c.MinimalWidth > 0
}

// Resolve fills automatic widths from the screen size and validates the result
// The receiver is not modified
func (c Config) Resolve(screenWidth, screenHeight int) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	r := c
	r.Controls = append([]input.Controls(nil), c.Controls...)

	if r.RaceWidth == 0 {
		r.RaceWidth = screenWidth
		if r.Split == SplitVertical {
			r.RaceWidth = screenWidth / r.Players
		}
	}
	if r.MinimalWidth == 0 {
		r.MinimalWidth = AutoMinimalWidth(r.Players, r.CarSize, r.RaceWidth)
	}

	if r.RaceWidth < 1 {
		return Config{}, Errorf("race_width", "screen %dx%d leaves no room for the track", screenWidth, screenHeight)
	}
	if r.MinimalWidth < 1 {
		return Config{}, Errorf("minimal_width", "race width %d is too narrow for a road", r.RaceWidth)
	}
	if err := r.Validate(); err != nil {
		return Config{}, err
	}
	return r, nil
}

// AutoMinimalWidth leaves a passage for every car without exceeding the available space
func AutoMinimalWidth(players, carSize, raceWidth int) int {
	w := math.Min(float64(players*carSize)*constants.MinimalWidthFactor, float64(raceWidth-2))
	return int(w)
}

// Validate checks every setting and the relationships between them
// Zero widths are accepted as "automatic"
func (c Config) Validate() error {
	if c.Players < 1 || c.Players > constants.MaxPlayers {
		return Errorf("players", "must be between 1 and %d, got %d", constants.MaxPlayers, c.Players)
	}
	if c.RaceLength < 1 {
		return Errorf("race_length", "must be positive, got %d", c.RaceLength)
	}
	if c.CarSize < 1 || c.CarSize > constants.MaxCarSize {
		return Errorf("car_size", "must be between 1 and %d, got %d", constants.MaxCarSize, c.CarSize)
	}
	if c.SpeedBase < 1 {
		return Errorf("speed_base", "must be at least 1, got %d", c.SpeedBase)
	}
	if c.RockChance < 0 || c.RockChance > 1 {
		return Errorf("rock_chance", "must be within [0,1], got %g", c.RockChance)
	}
	if c.TurnChance < 0 || c.TurnChance > 1 {
		return Errorf("turn_chance", "must be within [0,1], got %g", c.TurnChance)
	}
	if c.Delay < 0 {
		return Errorf("delay", "must not be negative, got %s", c.Delay.Std())
	}
	if utf8.RuneCountInString(c.Character) != 1 {
		return Errorf("character", "must be a single character, got %q", c.Character)
	}
	if constants.IsTerrainGlyph(c.Glyph()) {
		return Errorf("character", "%q is already used by the track", c.Character)
	}
	if c.RaceWidth < 0 {
		return Errorf("race_width", "must not be negative, got %d", c.RaceWidth)
	}
	if c.MinimalWidth < 0 {
		return Errorf("minimal_width", "must not be negative, got %d", c.MinimalWidth)
	}
	if c.RaceWidth > 0 && c.MinimalWidth > 0 {
		if err := CheckWidths(c.RaceWidth, c.MinimalWidth); err != nil {
			return err
		}
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// CheckWidths verifies both kerbs fit around a road of minimalWidth
// Column 0 carries the distance digit, so kerbs live in columns 1..w-1
func CheckWidths(raceWidth, minimalWidth int) error {
	if raceWidth < 1 {
		return Errorf("race_width", "must be positive, got %d", raceWidth)
	}
	if minimalWidth < 1 {
		return Errorf("minimal_width", "must be positive, got %d", minimalWidth)
	}
	if minimalWidth > raceWidth-2 {
		return Errorf("minimal_width", "%d does not fit race width %d", minimalWidth, raceWidth)
	}
	return nil
}

// Bindings parses the controls of every configured player
func (c Config) Bindings() ([]input.Binding, error) {
	if len(c.Controls) < c.Players {
		return nil, Errorf("controls", "%d players but only %d control sets", c.Players, len(c.Controls))
	}
	bindings := make([]input.Binding, c.Players)
	for i := 0; i < c.Players; i++ {
		b, err := input.ParseBinding(c.Controls[i])
		if err != nil {
			return nil, Errorf("controls", "player %d: %v", i+1, err)
		}
		bindings[i] = b
	}
	if err := input.CheckDistinct(bindings); err != nil {
		return nil, Wrap("controls", err)
	}
	return bindings, nil
}
