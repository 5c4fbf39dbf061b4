package store

import (
	"sync"

	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
)

type Store struct {
	mu       sync.RWMutex
	state    State
	inFlight map[Flight]bool
}

// Flight names an operation kind that may only run once at a time.
type Flight string

const (
	FlightConnect    Flight = "connect"
	FlightOtp        Flight = "otp"
	FlightMembership Flight = "membership"
	FlightCart       Flight = "cart"
	FlightCheckout   Flight = "checkout"
)

func New(initial State) *Store {
	return &Store{state: initial.clone(), inFlight: map[Flight]bool{}}
}

// Dispatch applies the actions in order and returns the resulting snapshot.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
	return s.state.clone()
}

// DispatchWith builds the actions from the current state and applies them under one lock.
// Nothing is applied when build returns an error; the snapshot it saw is returned with it.
func (s *Store) DispatchWith(build func(State) ([]Action, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions, err := build(s.state.clone())
	if err != nil {
		return s.state.clone(), err
	}
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
	return s.state.clone(), nil
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Begin marks the flights as running. It returns ErrBusy, and marks nothing, when any
// of them is already running. The returned func releases them.
func (s *Store) Begin(flights ...Flight) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range flights {
		if s.inFlight[f] {
			return nil, errors.SetCustomError(constant.ErrBusy)
		}
	}
	for _, f := range flights {
		s.inFlight[f] = true
	}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, f := range flights {
			delete(s.inFlight, f)
		}
	}, nil
}

// Busy reports whether any of the flights is running.
func (s *Store) Busy(flights ...Flight) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range flights {
		if s.inFlight[f] {
			return true
		}
	}
	return false
}
