package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zracer/config"
	"github.com/lixenwraith/zracer/input"
	"github.com/lixenwraith/zracer/render"
	"github.com/lixenwraith/zracer/track"
)

type soundRecorder struct {
	crashes, finishes int
}

func (s *soundRecorder) PlayCrash()  { s.crashes++ }
func (s *soundRecorder) PlayFinish() { s.finishes++ }

func newTestSession(t *testing.T, cfg config.Config, screen tcell.Screen, source input.Source) *Session {
	t.Helper()
	views := render.Viewports(screen, cfg.Players, cfg.Split)
	surfaces := make([]render.Surface, len(views))
	for i, v := range views {
		surfaces[i] = v
	}
	s, err := NewSession(cfg, surfaces, source, track.NewRand(1))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func twoPlayerConfig() config.Config {
	cfg := raceConfig()
	cfg.Players = 2
	cfg.MinimalWidth = 15
	return cfg
}

func runToEnd(t *testing.T, s *Session, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if !s.Tick() {
			return
		}
	}
	t.Fatalf("Race still running after %d ticks", limit)
}

func trackHasCarGlyph(tr *track.Track) bool {
	for y := 0; y < tr.Length(); y++ {
		for _, r := range tr.Row(y) {
			if r == tr.CarGlyph() {
				return true
			}
		}
	}
	return false
}

func TestSessionFinish(t *testing.T) {
	s := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)
	sounds := &soundRecorder{}
	s.SetSounds(sounds)

	runToEnd(t, s, 2000)

	if st := s.Statuses()[0]; st != StatusFinished {
		t.Fatalf("Expected finished, got %s", st)
	}
	if sounds.finishes != 1 || sounds.crashes != 0 {
		t.Errorf("Expected one finish sound, got %d finishes %d crashes", sounds.finishes, sounds.crashes)
	}
	if s.Elapsed() < 27 {
		t.Errorf("Expected at least one tick per row, got %d", s.Elapsed())
	}
}

func TestSessionRockCrash(t *testing.T) {
	s := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)
	sounds := &soundRecorder{}
	s.SetSounds(sounds)
	s.Tracks()[0].SetCell(15, 19, '*')

	runToEnd(t, s, 2000)

	if st := s.Statuses()[0]; st != StatusCrashed {
		t.Fatalf("Expected crash, got %s", st)
	}
	if sounds.crashes != 1 {
		t.Errorf("Expected one crash sound, got %d", sounds.crashes)
	}
	if row := s.Players()[0].Row(); row > 15 || row < 13 {
		t.Errorf("Expected crash with the rock inside the car box, got row %d", row)
	}
}

func TestSessionSharedLeavesNoMarks(t *testing.T) {
	cfg := twoPlayerConfig()
	s := newTestSession(t, cfg, newScreen(t, 80, 20), nil)

	if s.Tracks()[0] != s.Tracks()[1] {
		t.Fatal("Expected one shared track")
	}
	for i := 0; i < 5; i++ {
		s.Tick()
		if trackHasCarGlyph(s.Tracks()[0]) {
			t.Fatalf("Tick %d: car marks left on the shared track", i+1)
		}
	}
	for i, st := range s.Statuses() {
		if st != StatusAlive {
			t.Errorf("Player %d: expected alive, got %s", i+1, st)
		}
	}
}

// TestSessionSharedCollision steers player 2 into player 1's lane
func TestSessionSharedCollision(t *testing.T) {
	cfg := twoPlayerConfig()
	q := input.NewQueue(16)
	s := newTestSession(t, cfg, newScreen(t, 80, 20), q)

	if s.Players()[0].Col() != 16 || s.Players()[1].Col() != 20 {
		t.Fatalf("Expected start columns 16/20, got %d/%d", s.Players()[0].Col(), s.Players()[1].Col())
	}

	left := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	for i := 0; i < 100 && s.Players()[1].Status() == StatusAlive; i++ {
		q.Push(left)
		s.Tick()
	}

	if st := s.Players()[1].Status(); st != StatusCrashed {
		t.Fatalf("Expected player 2 to crash into player 1, got %s", st)
	}
	if st := s.Players()[0].Status(); st != StatusAlive {
		t.Errorf("Expected player 1 to keep racing, got %s", st)
	}
	if trackHasCarGlyph(s.Tracks()[0]) {
		t.Error("Expected no car marks between ticks")
	}
}

func TestSessionSharingModes(t *testing.T) {
	cfg := twoPlayerConfig()
	cfg.TurnChance = 0.3
	cfg.RockChance = 0.05

	cfg.Sharing = config.SharingSimilar
	s := newTestSession(t, cfg, newScreen(t, 80, 20), nil)
	a, b := s.Tracks()[0], s.Tracks()[1]
	if a == b {
		t.Fatal("Expected similar tracks to be distinct copies")
	}
	for y := 0; y < a.Length(); y++ {
		if string(a.Row(y)) != string(b.Row(y)) {
			t.Fatalf("Row %d: expected similar tracks to match", y)
		}
	}

	cfg.Sharing = config.SharingIndependent
	s = newTestSession(t, cfg, newScreen(t, 80, 20), nil)
	if s.Tracks()[0] == s.Tracks()[1] {
		t.Error("Expected independent tracks")
	}
}

func TestSessionQuitRetires(t *testing.T) {
	q := input.NewQueue(4)
	s := newTestSession(t, twoPlayerConfig(), newScreen(t, 80, 20), q)

	q.Push(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if s.Tick() {
		t.Error("Expected quit to end the race")
	}
	for i, st := range s.Statuses() {
		if st != StatusRetired {
			t.Errorf("Player %d: expected retired, got %s", i+1, st)
		}
	}
}

func TestSessionIgnoresNonKeyEvents(t *testing.T) {
	q := input.NewQueue(4)
	s := newTestSession(t, raceConfig(), newScreen(t, 40, 20), q)

	q.Push(tcell.NewEventResize(10, 10))
	if !s.Tick() {
		t.Error("Expected race to continue after a resize event")
	}
}

func TestSessionRun(t *testing.T) {
	s := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)

	res := s.Run(context.Background(), time.Microsecond)
	if len(res.Statuses) != 1 || res.Statuses[0] != StatusFinished {
		t.Fatalf("Expected finished result, got %+v", res)
	}
	if res.Ticks != s.Elapsed() {
		t.Errorf("Expected %d ticks, got %d", s.Elapsed(), res.Ticks)
	}
	if !strings.HasPrefix(res.String(), "Game finished after ") {
		t.Errorf("Unexpected message %q", res.String())
	}
}

func TestSessionRunCancelled(t *testing.T) {
	s := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Run(ctx, time.Hour)
	if res.Ticks != 1 {
		t.Errorf("Expected a single tick before cancellation, got %d", res.Ticks)
	}
	if res.Statuses[0] != StatusRetired {
		t.Errorf("Expected retired, got %s", res.Statuses[0])
	}
}

func TestSessionRunZeroDelay(t *testing.T) {
	cfg := raceConfig()
	cfg.Delay = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected zero delay to validate, got %v", err)
	}
	s := newTestSession(t, cfg, newScreen(t, 40, 20), nil)

	res := s.Run(context.Background(), cfg.TickDelay())
	if len(res.Statuses) != 1 || res.Statuses[0] != StatusFinished {
		t.Fatalf("Expected finished result, got %+v", res)
	}
}

func TestSessionRunZeroDelayCancelled(t *testing.T) {
	s := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.Run(ctx, 0)
	if res.Ticks != 1 {
		t.Errorf("Expected a single tick before cancellation, got %d", res.Ticks)
	}
	if res.Statuses[0] != StatusRetired {
		t.Errorf("Expected retired, got %s", res.Statuses[0])
	}
}

func TestSessionID(t *testing.T) {
	a := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)
	b := newTestSession(t, raceConfig(), newScreen(t, 40, 20), nil)

	if len(a.ID()) != 27 {
		t.Errorf("Expected 27 character id, got %q", a.ID())
	}
	if a.ID() == b.ID() {
		t.Errorf("Expected distinct session ids, got %q twice", a.ID())
	}
}

func TestNewSessionErrors(t *testing.T) {
	screen := newScreen(t, 80, 20)

	cfg := raceConfig()
	cfg.RaceWidth = 0
	if _, err := NewSession(cfg, []render.Surface{screen}, nil, track.NewRand(1)); !errors.Is(err, config.ErrConfiguration) {
		t.Errorf("Expected configuration error for unresolved widths, got %v", err)
	}

	cfg = twoPlayerConfig()
	if _, err := NewSession(cfg, []render.Surface{screen}, nil, track.NewRand(1)); !errors.Is(err, config.ErrConfiguration) {
		t.Errorf("Expected configuration error for missing view, got %v", err)
	}
}

func TestResultString(t *testing.T) {
	r := Result{Ticks: 42, Statuses: []Status{StatusFinished}}
	if r.String() != "Game finished after 42 turns." {
		t.Errorf("Unexpected single-player message %q", r.String())
	}

	r.Statuses = []Status{StatusFinished, StatusCrashed}
	want := "Game finished after 42 turns.\nPlayer 1: finished\nPlayer 2: crashed"
	if r.String() != want {
		t.Errorf("Expected %q, got %q", want, r.String())
	}
}
