package utils

import (
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned when a call is rejected without reaching the
// network.
var ErrBreakerOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// CircuitBreaker guards the API transport against a backend that keeps
// failing: after enough failures in a window it rejects calls outright
// until the timeout elapses, then probes with a half-open state.
type CircuitBreaker struct {
	name         string
	minRequests  uint32
	interval     time.Duration
	timeout      time.Duration
	failureRatio float64

	mutex  sync.Mutex
	state  State
	counts Counts
	expiry time.Time
}

type BreakerOption func(*CircuitBreaker)

func WithFailureRatio(ratio float64) BreakerOption {
	return func(cb *CircuitBreaker) { cb.failureRatio = ratio }
}

func WithMinRequests(n uint32) BreakerOption {
	return func(cb *CircuitBreaker) { cb.minRequests = n }
}

func WithTimeout(d time.Duration) BreakerOption {
	return func(cb *CircuitBreaker) { cb.timeout = d }
}

func NewCircuitBreaker(name string, opts ...BreakerOption) *CircuitBreaker {
	cb := &CircuitBreaker{
		name:         name,
		minRequests:  20,
		interval:     60 * time.Second,
		timeout:      30 * time.Second,
		failureRatio: 0.6,
		state:        StateClosed,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

// Execute runs req unless the breaker is open. Only transport-level
// failures should be fed back as errors; API-level rejections (4xx) are
// not a reason to trip.
func (cb *CircuitBreaker) Execute(req func() error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := req()
	cb.afterRequest(err == nil)
	return err
}

func (cb *CircuitBreaker) State() State {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.currentState(time.Now())
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if cb.currentState(time.Now()) == StateOpen {
		return ErrBreakerOpen
	}

	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) afterRequest(success bool) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	state := cb.currentState(time.Now())
	if success {
		cb.onSuccess(state)
	} else {
		cb.onFailure(state)
	}
}

func (cb *CircuitBreaker) onSuccess(state State) {
	cb.counts.TotalSuccesses++
	cb.counts.ConsecutiveSuccesses++
	cb.counts.ConsecutiveFailures = 0

	if state == StateHalfOpen {
		cb.state = StateClosed
		cb.resetCounts(time.Now())
	}
}

func (cb *CircuitBreaker) onFailure(state State) {
	cb.counts.TotalFailures++
	cb.counts.ConsecutiveFailures++
	cb.counts.ConsecutiveSuccesses = 0

	if state == StateHalfOpen || cb.readyToTrip() {
		cb.state = StateOpen
		cb.expiry = time.Now().Add(cb.timeout)
	}
}

func (cb *CircuitBreaker) readyToTrip() bool {
	return cb.counts.Requests >= cb.minRequests &&
		float64(cb.counts.TotalFailures)/float64(cb.counts.Requests) >= cb.failureRatio
}

func (cb *CircuitBreaker) currentState(now time.Time) State {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.resetCounts(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.state = StateHalfOpen
			cb.counts = Counts{}
		}
	}
	return cb.state
}

func (cb *CircuitBreaker) resetCounts(now time.Time) {
	cb.counts = Counts{}
	if cb.state == StateClosed {
		cb.expiry = now.Add(cb.interval)
	} else {
		cb.expiry = time.Time{}
	}
}
