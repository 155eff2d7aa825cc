// Package timer holds the single shared countdown state machine that both
// presentation surfaces consume through thin adapters.
package timer

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/clock"
	"github.com/limbo/momentum/pkg/entity"
)

type State string

const (
	StateInitial  State = "initial"
	StateRunning  State = "running"
	StateFinished State = "finished"
)

// RunningDuration is the full length of the running phase. No user action
// can shorten or extend it; postpone/cancel abort the occurrence instead.
const RunningDuration = 120 * time.Second

var (
	ErrIllegalAction = errors.New("action not allowed in current timer state")
	ErrAborted       = errors.New("timer was aborted by postpone or cancel")
)

var consolationPool = []string{
	"Not every rep lands. The next one is already scheduled.",
	"Two minutes spent trying beats zero minutes spent scrolling.",
	"Streak's still alive. Showing up was the hard part.",
	"That one got away. The category average forgives you.",
}

// Queue is the slice of the scheduling queue the timer needs.
type Queue interface {
	Postpone(ctx context.Context, id, uid uuid.UUID) (*entity.ScheduledOccurrence, error)
	Cancel(ctx context.Context, id, uid uuid.UUID) error
}

// Completer hands a resolved occurrence to the completion pipeline.
type Completer interface {
	CompleteOccurrence(ctx context.Context, occurrenceID, uid uuid.UUID, timeSpentSeconds int, status entity.Resolution) (*service.CompletionResult, error)
}

// Controller turns one selected occurrence into the countdown experience:
// initial -> running automatically on Start, running -> finished purely on
// elapsed wall clock, then exactly one of ResolveSuccess/ResolveFailed.
type Controller struct {
	mu sync.Mutex

	occurrence *entity.ScheduledOccurrence
	queue      Queue
	completer  Completer
	clock      clock.Clock

	state      State
	aborted    bool
	startedAt  time.Time
	finishedAt time.Time

	// Drawn once at construction so a re-rendered result view never
	// re-randomizes the message.
	consolation string
}

func New(occ *entity.ScheduledOccurrence, queue Queue, completer Completer, clk clock.Clock) *Controller {
	if clk == nil {
		clk = clock.System()
	}
	return &Controller{
		occurrence:  occ,
		queue:       queue,
		completer:   completer,
		clock:       clk,
		state:       StateInitial,
		consolation: consolationPool[rand.Intn(len(consolationPool))],
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start moves initial -> running. It happens without user action as soon as
// the occurrence becomes active.
func (c *Controller) Start(now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.aborted {
		return ErrAborted
	}
	if c.state != StateInitial {
		return ErrIllegalAction
	}
	c.state = StateRunning
	c.startedAt = now
	return nil
}

// Tick advances the machine for the given instant and returns the state
// after the tick. running -> finished fires once 120 seconds elapsed.
func (c *Controller) Tick(now time.Time) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateRunning && !c.aborted && now.Sub(c.startedAt) >= RunningDuration {
		c.state = StateFinished
		c.finishedAt = now
	}
	return c.state
}

// Remaining reports how much of the running phase is left at `now`.
func (c *Controller) Remaining(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateInitial:
		return RunningDuration
	case StateRunning:
		left := RunningDuration - now.Sub(c.startedAt)
		if left < 0 {
			return 0
		}
		return left
	}
	return 0
}

// Run drives the countdown cooperatively: it suspends between one-second
// ticks and returns once the timer finishes or ctx is cancelled. User
// actions (postpone/cancel/resolve) arrive through the other methods.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Start(c.clock.Now()); err != nil {
		return err
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.mu.Lock()
			aborted := c.aborted
			c.mu.Unlock()
			if aborted {
				return ErrAborted
			}
			if c.Tick(c.clock.Now()) == StateFinished {
				return nil
			}
		}
	}
}

// Postpone aborts the countdown and snoozes the occurrence. Legal only in
// initial/running; no history entry is written.
func (c *Controller) Postpone(ctx context.Context) (*entity.ScheduledOccurrence, error) {
	if err := c.abort(); err != nil {
		return nil, err
	}
	return c.queue.Postpone(ctx, c.occurrence.ID, c.occurrence.UserID)
}

// Cancel aborts the countdown and cancels the occurrence permanently.
func (c *Controller) Cancel(ctx context.Context) error {
	if err := c.abort(); err != nil {
		return err
	}
	return c.queue.Cancel(ctx, c.occurrence.ID, c.occurrence.UserID)
}

func (c *Controller) abort() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.aborted {
		return ErrAborted
	}
	if c.state == StateFinished {
		return ErrIllegalAction
	}
	c.aborted = true
	return nil
}

// ResolveSuccess hands the finished occurrence to the completion pipeline
// as a success. Terminal for this controller.
func (c *Controller) ResolveSuccess(ctx context.Context) (*service.CompletionResult, error) {
	return c.resolve(ctx, entity.ResolutionSuccess)
}

// ResolveFailed records the failure; the result view should display
// ConsolationMessage alongside.
func (c *Controller) ResolveFailed(ctx context.Context) (*service.CompletionResult, error) {
	return c.resolve(ctx, entity.ResolutionFailed)
}

func (c *Controller) resolve(ctx context.Context, status entity.Resolution) (*service.CompletionResult, error) {
	c.mu.Lock()
	if c.aborted {
		c.mu.Unlock()
		return nil, ErrAborted
	}
	if c.state != StateFinished {
		c.mu.Unlock()
		return nil, ErrIllegalAction
	}
	timeSpent := int(c.finishedAt.Sub(c.startedAt).Seconds())
	c.mu.Unlock()
	if timeSpent > int(RunningDuration.Seconds()) {
		timeSpent = int(RunningDuration.Seconds())
	}
	return c.completer.CompleteOccurrence(ctx, c.occurrence.ID, c.occurrence.UserID, timeSpent, status)
}

// ConsolationMessage is stable for the lifetime of the controller.
func (c *Controller) ConsolationMessage() string {
	return c.consolation
}
