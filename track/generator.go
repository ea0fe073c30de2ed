package track

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/zracer/config"
	"github.com/lixenwraith/zracer/constants"
)

// NewRand returns a generator seeded with seed, or with the clock when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate builds a course from cfg, walking from the start row up to the finish
// cfg must be resolved: both widths set
func Generate(cfg config.Config, rng *rand.Rand) (*Track, error) {
	if cfg.RaceLength < 1 {
		return nil, config.Errorf("race_length", "must be positive, got %d", cfg.RaceLength)
	}
	if err := config.CheckWidths(cfg.RaceWidth, cfg.MinimalWidth); err != nil {
		return nil, err
	}

	t := New(cfg.RaceLength, cfg.RaceWidth, cfg.Glyph())
	w := &kerbWalk{
		width:   cfg.RaceWidth,
		minimal: cfg.MinimalWidth,
		turn:    cfg.TurnChance,
		rng:     rng,
	}
	// Halfway between the narrowest and the widest possible road
	w.left = (cfg.RaceWidth - cfg.MinimalWidth) / 4
	w.right = (cfg.RaceWidth*3 + cfg.MinimalWidth) / 4
	if w.left < 1 {
		w.left = 1
	}

	for y := cfg.RaceLength - 1; y >= 0; y-- {
		row := t.cells[y]

		// Distance meter
		row[0] = constants.GlyphDigitFirst + rune(y%10)

		if rng.Float64() < cfg.RockChance {
			row[rng.Intn(cfg.RaceWidth)] = constants.GlyphRock
		}

		w.left += w.leftDrift
		w.right += w.rightDrift
		row[w.left] = kerbGlyph(w.leftDrift)
		row[w.right] = kerbGlyph(w.rightDrift)

		w.steer()
	}

	log.Printf("track: generated %dx%d, minimal width %d", cfg.RaceLength, cfg.RaceWidth, cfg.MinimalWidth)
	return t, nil
}

// kerbGlyph picks the kerb character for a drift direction
func kerbGlyph(drift int) rune {
	switch drift {
	case 1:
		return constants.GlyphKerbRight
	case -1:
		return constants.GlyphKerbLeft
	default:
		return constants.GlyphKerb
	}
}

// kerbWalk is the generator state carried from one row to the next
type kerbWalk struct {
	width, minimal        int
	turn                  float64
	rng                   *rand.Rand
	left, right           int
	leftDrift, rightDrift int
}

// steer re-rolls both drifts for the next row
// Column 0 holds the distance digit, so the left kerb stays at column 1 or more
func (w *kerbWalk) steer() {
	w.leftDrift = w.reroll(w.leftDrift, func(d int) bool { return w.left+d < 1 })
	w.rightDrift = w.reroll(w.rightDrift, func(d int) bool { return w.right+d > w.width-1 })

	w.clampDrifts()

	// Widening after the clamp can only hold or grow the current width
	if (w.right+w.rightDrift)-(w.left+w.leftDrift) < w.minimal {
		w.leftDrift = -1
		w.rightDrift = 1
		w.clampDrifts()
	}
}

func (w *kerbWalk) clampDrifts() {
	if w.left+w.leftDrift < 1 {
		w.leftDrift = 0
	}
	if w.right+w.rightDrift > w.width-1 {
		w.rightDrift = 0
	}
}

// reroll draws a new drift while chance says so or the kerb would leave the grid
// Bounded by TurnRetryLimit, so the result may still point off the grid; steer clamps it
func (w *kerbWalk) reroll(drift int, offGrid func(int) bool) int {
	for tries := 0; tries < constants.TurnRetryLimit; tries++ {
		if !(w.rng.Float64() < w.turn || offGrid(drift)) {
			break
		}
		drift = w.rng.Intn(3) - 1
	}
	return drift
}
