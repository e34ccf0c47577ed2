package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
)

// Phase is the lifecycle stage of a Driver.
type Phase int

const (
	PhaseIdle    Phase = iota // waiting for the first start
	PhaseRunning              // steps are being taken
	PhaseOver                 // craft destroyed, waiting for a restart
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	// ErrInvalidTransition is returned by Start and Restart when called
	// from a phase they do not leave.
	ErrInvalidTransition = errors.New("invalid phase transition")

	// ErrQuit may be returned by a FrameFunc to stop Run.
	ErrQuit = errors.New("quit requested")
)

// FrameFunc renders the state after each step.
type FrameFunc func(s *State) error

// DriverOptions configures a Driver.
type DriverOptions struct {
	Logger *log.Logger
	// OnGameOver is called once per game with the floored final score.
	OnGameOver func(finalScore int)
}

// Driver owns one game and advances it once per refresh signal.
type Driver struct {
	state  *State
	phase  Phase
	logger *log.Logger

	onGameOver func(int)
	maxDelta   time.Duration

	last   time.Time
	primed bool // false until the first frame of a game has been seen

	// listening gates steering input; it is detached outside PhaseRunning.
	listening bool
}

// NewDriver creates an idle driver.
func NewDriver(rules config.Rules, rng object.Rand, opts DriverOptions) (*Driver, error) {
	state, err := NewState(rules, rng)
	if err != nil {
		return nil, fmt.Errorf("create game state: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{
		state:      state,
		phase:      PhaseIdle,
		logger:     logger,
		onGameOver: opts.OnGameOver,
		maxDelta:   time.Duration(rules.MaxFrameDelta * float64(time.Second)),
	}, nil
}

// Phase returns the current lifecycle phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// State exposes the game state for rendering.
func (d *Driver) State() *State {
	return d.state
}

// Draw paints the current state onto surface.
func (d *Driver) Draw(surface draw.Surface) {
	d.state.Draw(surface)
}

// FinalScore returns the floored score of the last finished game.
func (d *Driver) FinalScore() int {
	return d.state.FinalScore
}

// Start begins the first game. It fails unless the driver is idle or over.
func (d *Driver) Start() error {
	if d.phase == PhaseRunning {
		return fmt.Errorf("start while %s: %w", d.phase, ErrInvalidTransition)
	}
	d.begin()
	return nil
}

// Restart begins a new game after the previous one ended.
func (d *Driver) Restart() error {
	if d.phase != PhaseOver {
		return fmt.Errorf("restart while %s: %w", d.phase, ErrInvalidTransition)
	}
	d.begin()
	return nil
}

func (d *Driver) begin() {
	d.state.Reset()
	d.phase = PhaseRunning
	d.primed = false
	d.listening = true
	d.logger.Debug("game started", "variant", d.state.Rules.Variant)
}

// Steer sets the craft's direction. Ignored unless a game is running.
func (d *Driver) Steer(direction int) {
	if !d.listening {
		return
	}
	d.state.Craft.Move(direction)
}

// Frame takes one step for the refresh signal at now.
func (d *Driver) Frame(now time.Time) {
	if d.phase != PhaseRunning {
		return
	}
	d.state.Step(d.delta(now))
	if d.state.Over {
		d.finish()
	}
}

// delta returns the time since the previous frame, zero on the first frame
// of a game and clamped to [0, maxDelta].
func (d *Driver) delta(now time.Time) time.Duration {
	if !d.primed {
		d.primed = true
		d.last = now
		return 0
	}
	dt := now.Sub(d.last)
	d.last = now
	return min(max(dt, 0), d.maxDelta)
}

func (d *Driver) finish() {
	d.phase = PhaseOver
	d.listening = false
	d.logger.Info("game over", "score", d.state.FinalScore, "kills", d.state.Kills, "variant", d.state.Rules.Variant)
	if d.onGameOver != nil {
		d.onGameOver(d.state.FinalScore)
	}
}

// Run waits for refresh signals and takes one Frame per signal, calling
// frame after each step. It returns nil once the game is over or refresh is
// closed, ctx.Err() on cancellation, and any error frame returns.
func (d *Driver) Run(ctx context.Context, refresh <-chan time.Time, frame FrameFunc) error {
	for d.phase == PhaseRunning {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-refresh:
			if !ok {
				return nil
			}
			d.Frame(now)
			if frame != nil {
				if err := frame(d.state); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
