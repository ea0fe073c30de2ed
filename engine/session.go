package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/segmentio/ksuid"

	"github.com/lixenwraith/zracer/config"
	"github.com/lixenwraith/zracer/input"
	"github.com/lixenwraith/zracer/render"
	"github.com/lixenwraith/zracer/sprite"
	"github.com/lixenwraith/zracer/track"
)

// SoundPlayer receives race events worth a sound
type SoundPlayer interface {
	PlayCrash()
	PlayFinish()
}

type silence struct{}

func (silence) PlayCrash()  {}
func (silence) PlayFinish() {}

// Result summarizes a race once no player is alive
type Result struct {
	Ticks    int
	Statuses []Status
}

// String is the end-of-race message shown to the players
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game finished after %d turns.", r.Ticks)
	if len(r.Statuses) > 1 {
		for i, st := range r.Statuses {
			fmt.Fprintf(&b, "\nPlayer %d: %s", i+1, st)
		}
	}
	return b.String()
}

// Session runs one race for all players; it is owned by a single goroutine
type Session struct {
	id      string
	cfg     config.Config
	players []*Player
	tracks  []*track.Track
	source  input.Source
	sounds  SoundPlayer
	elapsed int
}

// NewSession generates the tracks and places the players
// cfg must be resolved; surfaces holds one view per player
func NewSession(cfg config.Config, surfaces []render.Surface, source input.Source, rng *rand.Rand) (*Session, error) {
	if !cfg.Resolved() {
		return nil, config.Errorf("race_width", "widths must be resolved before the race")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(surfaces) < cfg.Players {
		return nil, config.Errorf("players", "%d players but %d views", cfg.Players, len(surfaces))
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	car, err := sprite.Build(cfg.CarSize, cfg.Glyph())
	if err != nil {
		return nil, config.Wrap("car_size", err)
	}

	tracks, err := buildTracks(cfg, rng)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     ksuid.New().String(),
		cfg:    cfg,
		tracks: tracks,
		source: source,
		sounds: silence{},
	}
	for i := 0; i < cfg.Players; i++ {
		p, err := NewPlayer(i, cfg, tracks[i], car, surfaces[i], bindings[i], rng)
		if err != nil {
			return nil, err
		}
		s.players = append(s.players, p)
	}

	log.Printf("session %s: %d players, %s tracks %dx%d, car %d", s.id, cfg.Players, cfg.Sharing, cfg.RaceLength, cfg.RaceWidth, cfg.CarSize)
	return s, nil
}

// buildTracks returns one track per player following the sharing mode
func buildTracks(cfg config.Config, rng *rand.Rand) ([]*track.Track, error) {
	tracks := make([]*track.Track, cfg.Players)
	for i := range tracks {
		switch {
		case i == 0 || cfg.Sharing == config.SharingIndependent:
			t, err := track.Generate(cfg, rng)
			if err != nil {
				return nil, err
			}
			tracks[i] = t
		case cfg.Sharing == config.SharingSimilar:
			tracks[i] = tracks[0].Copy()
		default:
			tracks[i] = tracks[0]
		}
	}
	return tracks, nil
}

// SetSounds routes crash and finish events; nil silences them
func (s *Session) SetSounds(sp SoundPlayer) {
	if sp == nil {
		sp = silence{}
	}
	s.sounds = sp
}

// ID tags the race in log output
func (s *Session) ID() string {
	return s.id
}

func (s *Session) Elapsed() int {
	return s.elapsed
}

func (s *Session) Players() []*Player {
	return s.players
}

// Tracks returns the per-player tracks; shared mode repeats one pointer
func (s *Session) Tracks() []*track.Track {
	return s.tracks
}

// Statuses returns a snapshot of every player's status
func (s *Session) Statuses() []Status {
	out := make([]Status, len(s.players))
	for i, p := range s.players {
		out[i] = p.Status()
	}
	return out
}

// Alive reports whether any player is still racing
func (s *Session) Alive() bool {
	for _, p := range s.players {
		if p.Status() == StatusAlive {
			return true
		}
	}
	return false
}

// Retire aborts the race for every running player
func (s *Session) Retire() {
	for _, p := range s.players {
		p.Retire()
	}
}

// Tick advances the race by one step and reports whether anyone is still racing
func (s *Session) Tick() bool {
	s.elapsed++
	s.drainInput()

	if s.cfg.Sharing == config.SharingShared {
		// Every car is an obstacle to the others, never to itself
		for _, p := range s.players {
			if p.Status() == StatusAlive {
				p.MarkPosition()
			}
		}
		for _, p := range s.players {
			if p.Status() != StatusAlive {
				continue
			}
			p.UnmarkPosition()
			s.step(p)
			p.MarkPosition()
		}
		for _, p := range s.players {
			p.UnmarkPosition()
		}
	} else {
		for _, p := range s.players {
			if p.Status() == StatusAlive {
				s.step(p)
			}
		}
	}

	return s.Alive()
}

func (s *Session) step(p *Player) {
	switch p.Tick(s.elapsed) {
	case StatusCrashed:
		s.sounds.PlayCrash()
	case StatusFinished:
		s.sounds.PlayFinish()
	}
}

// drainInput routes every pending key to every player without blocking
func (s *Session) drainInput() {
	if s.source == nil {
		return
	}
	for {
		ev, ok := s.source.Poll()
		if !ok {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if input.IsQuit(kev) {
			log.Printf("session %s: quit at tick %d", s.id, s.elapsed)
			s.Retire()
			continue
		}
		for _, p := range s.players {
			p.HandleKey(kev)
		}
	}
}

// Run ticks once per delay until no player is alive or ctx is done
// A delay of zero or less ticks back-to-back
// Cancellation retires the remaining players
func (s *Session) Run(ctx context.Context, delay time.Duration) Result {
	var beat <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		beat = ticker.C
	}

	for s.Tick() {
		if beat == nil {
			select {
			case <-ctx.Done():
				return s.cancel(ctx)
			default:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return s.cancel(ctx)
		case <-beat:
		}
	}
	return s.result()
}

func (s *Session) cancel(ctx context.Context) Result {
	log.Printf("session %s: cancelled at tick %d: %v", s.id, s.elapsed, ctx.Err())
	s.Retire()
	return s.result()
}

func (s *Session) result() Result {
	r := Result{Ticks: s.elapsed, Statuses: s.Statuses()}
	log.Printf("session %s: ended after %d ticks, %v", s.id, r.Ticks, r.Statuses)
	return r
}
