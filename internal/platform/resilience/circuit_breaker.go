package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Breaker trips after a run of consecutive failures and rejects calls until
// OpenTimeout has passed, then lets HalfOpenMaxReq trial requests through.
type Breaker struct {
	mu sync.Mutex

	name string
	cfg  Config

	state               State
	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
	halfOpenSuccesses   int

	now      func() time.Time
	onChange func(name string, from, to State)
}

func NewBreaker(name string, cfg Config) *Breaker {
	return &Breaker{
		name:  name,
		cfg:   cfg.normalize(),
		state: StateClosed,
		now:   time.Now,
	}
}

// OnStateChange registers fn to run after every transition. fn runs with the breaker unlocked.
func (b *Breaker) OnStateChange(fn func(name string, from, to State)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Do runs fn when the breaker admits the call and records its outcome.
// Caller cancellations are not counted against the dependency.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn(ctx)
	switch {
	case err == nil:
		b.record(true)
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		b.release()
	default:
		b.record(false)
	}
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	from := b.state

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.toHalfOpen()
	}
	if b.state == StateHalfOpen {
		if b.halfOpenInFlight >= b.cfg.HalfOpenMaxReq {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.halfOpenInFlight++
	}

	to, notify := b.state, b.onChange
	b.mu.Unlock()

	b.notify(notify, from, to)
	return nil
}

func (b *Breaker) record(success bool) {
	b.mu.Lock()
	from := b.state

	switch b.state {
	case StateClosed:
		if success {
			b.consecutiveFailures = 0
			break
		}
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.cfg.FailureThreshold {
			b.toOpen()
		}
	case StateHalfOpen:
		if b.halfOpenInFlight > 0 {
			b.halfOpenInFlight--
		}
		if !success {
			b.toOpen()
			break
		}
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.cfg.HalfOpenMaxReq && b.halfOpenInFlight == 0 {
			b.toClosed()
		}
	case StateOpen:
		if !success {
			b.openedAt = b.now()
		}
	}

	to, notify := b.state, b.onChange
	b.mu.Unlock()

	b.notify(notify, from, to)
}

// release frees a half-open slot without judging the dependency.
func (b *Breaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen && b.halfOpenInFlight > 0 {
		b.halfOpenInFlight--
	}
}

func (b *Breaker) notify(fn func(string, State, State), from, to State) {
	if fn != nil && from != to {
		fn(b.name, from, to)
	}
}

func (b *Breaker) toClosed() {
	b.state = StateClosed
	b.consecutiveFailures = 0
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
	b.openedAt = time.Time{}
}

func (b *Breaker) toOpen() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}

func (b *Breaker) toHalfOpen() {
	b.state = StateHalfOpen
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}
