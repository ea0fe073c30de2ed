package engine

import (
	"log"
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zracer/config"
	"github.com/lixenwraith/zracer/input"
	"github.com/lixenwraith/zracer/render"
	"github.com/lixenwraith/zracer/sprite"
	"github.com/lixenwraith/zracer/track"
)

// neverMoved places the first move far enough in the past that the first tick always moves
const neverMoved = math.MinInt32

// Player is one car on its track, drawn into its own surface
type Player struct {
	id      int
	course  *track.Track
	car     *sprite.CarImage
	surface render.Surface
	binding input.Binding
	rng     *rand.Rand
	style   tcell.Style

	speedBase  int
	viewHeight int

	// Car box origin in track coordinates; top is the first visible row
	row, col int
	top      int
	lastMove int

	// Pending command, applied on the next move
	dx, dy int

	status Status
	marked bool
}

// NewPlayer places a car at the start line of course
// The surface must be wide enough for the track and tall enough for the car
func NewPlayer(id int, cfg config.Config, course *track.Track, car *sprite.CarImage, surface render.Surface, binding input.Binding, rng *rand.Rand) (*Player, error) {
	sw, sh := surface.Size()
	if course.Width() > sw {
		return nil, config.Errorf("race_width", "track width %d exceeds view width %d of player %d", course.Width(), sw, id+1)
	}
	viewHeight := min(sh, course.Length())
	if car.Size() > viewHeight {
		return nil, config.Errorf("car_size", "car size %d exceeds view height %d of player %d", car.Size(), viewHeight, id+1)
	}
	if cfg.SpeedBase < 1 {
		return nil, config.Errorf("speed_base", "must be at least 1, got %d", cfg.SpeedBase)
	}

	p := &Player{
		id:         id,
		course:     course,
		car:        car,
		surface:    surface,
		binding:    binding,
		rng:        rng,
		style:      render.CarStyle(id),
		speedBase:  cfg.SpeedBase,
		viewHeight: viewHeight,
		row:        course.Length() - car.Size(),
		top:        course.Length() - viewHeight,
		lastMove:   neverMoved,
		status:     StatusAlive,
	}

	// Shared track: cars start side by side left of center
	if cfg.Sharing == config.SharingShared {
		p.col = (course.Width() - (car.Size()+1)*(cfg.Players-2*id)) / 2
	} else {
		p.col = (course.Width() - car.Size()) / 2
	}
	return p, nil
}

func (p *Player) ID() int {
	return p.id
}

func (p *Player) Row() int {
	return p.row
}

func (p *Player) Col() int {
	return p.col
}

func (p *Player) Top() int {
	return p.top
}

func (p *Player) Status() Status {
	return p.status
}

// Track returns the course the player drives on
func (p *Player) Track() *track.Track {
	return p.course
}

// HandleKey turns a bound key into the pending command; the latest key per axis wins
func (p *Player) HandleKey(ev *tcell.EventKey) {
	if p.status != StatusAlive {
		return
	}
	switch p.binding.Match(ev) {
	case input.ActionAccelerate:
		p.dy = -1
	case input.ActionBrake:
		p.dy = 1
	case input.ActionLeft:
		p.dx = -1
	case input.ActionRight:
		p.dx = 1
	}
}

// Retire ends a running race for this player
func (p *Player) Retire() {
	if p.status == StatusAlive {
		p.status = StatusRetired
	}
}

// Tick advances the car when its speed allows, then checks and redraws the view
// The closer the car is to the top of its view, the more often it moves
// Between moves the player is left untouched, collisions included
func (p *Player) Tick(now int) Status {
	if p.status != StatusAlive {
		return p.status
	}
	if p.lastMove+(p.row-p.top)/p.speedBase >= now {
		return p.status
	}

	p.lastMove = now
	p.row--
	p.top = max(0, p.top-1)
	p.row += p.dy
	p.col += p.dx
	p.dx, p.dy = 0, 0

	p.row = max(p.top, min(p.row, p.top+p.viewHeight-p.car.Size()))

	if p.row <= 0 {
		p.status = StatusFinished
		log.Printf("player %d: finished at tick %d", p.id+1, now)
		return p.status
	}

	render.DrawTrack(p.surface, p.course, p.top)

	if p.collides() {
		p.status = StatusCrashed
		log.Printf("player %d: crashed at row %d col %d, tick %d", p.id+1, p.row, p.col, now)
	}

	x := render.Offset(p.surface, p.course.Width()) + p.col
	y := p.row - p.top
	if p.status == StatusAlive {
		render.DrawCar(p.surface, p.car, x, y, p.style)
	} else {
		render.DrawExplosion(p.surface, p.car, x, y, p.rng)
	}
	p.surface.Show()

	return p.status
}

// collides tests the car's outline against the track inside its bounding box
func (p *Player) collides() bool {
	size := p.car.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if p.car.Occupies(r, c) && p.course.Taken(p.row+r, p.col+c) {
				return true
			}
		}
	}
	return false
}

// MarkPosition writes the car into the track so other cars collide with it
func (p *Player) MarkPosition() {
	if p.marked {
		return
	}
	p.course.Mark(p.row, p.col, p.car)
	p.marked = true
}

// UnmarkPosition removes a previous MarkPosition; a no-op when not marked
func (p *Player) UnmarkPosition() {
	if !p.marked {
		return
	}
	p.course.Unmark(p.row, p.col, p.car)
	p.marked = false
}
