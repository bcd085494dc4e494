package radio

import (
	"sync"

	"github.com/LeoCommon/modemcore/internal/registrant"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

// Registries are the lists the state machine fires into. They are owned by
// the notification hub and must only be mutated through the StateMachine.
type Registries struct {
	Changed           *registrant.List
	On                *registrant.List
	Available         *registrant.List
	NotAvailable      *registrant.List
	OffOrNotAvailable *registrant.List
}

// NewRegistries creates the radio lists on top of the given deliverer
func NewRegistries(d registrant.Deliverer) Registries {
	return Registries{
		Changed:           registrant.NewList("radio-state-changed", d),
		On:                registrant.NewList("radio-on", d),
		Available:         registrant.NewList("radio-available", d),
		NotAvailable:      registrant.NewList("radio-not-available", d),
		OffOrNotAvailable: registrant.NewList("radio-off-or-not-available", d),
	}
}

type Option func(m *StateMachine)

// WithOnAvailable installs a hook run after the "available" listeners fired.
// It runs with the state lock held.
func WithOnAvailable(hook func()) Option {
	return func(m *StateMachine) {
		m.onAvailable = hook
	}
}

// WithInitialState overrides the UNAVAILABLE start state
func WithInitialState(s State) Option {
	return func(m *StateMachine) {
		m.state = s
	}
}

// StateMachine guards the radio state and its five lists with one mutex.
// Listener callbacks run while that mutex is held when a synchronous
// deliverer is used.
type StateMachine struct {
	mu    sync.Mutex
	state State
	regs  Registries

	onAvailable func()
}

func NewStateMachine(regs Registries, opts ...Option) *StateMachine {
	m := &StateMachine{
		state:       StateUnavailable,
		regs:        regs,
		onAvailable: func() {},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *StateMachine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Transition moves to newState and fires the crossing notifications in a fixed order
func (m *StateMachine) Transition(newState State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldState := m.state
	if newState == oldState {
		return
	}

	m.state = newState
	log.Info("radio state changed", zap.Stringer("from", oldState), zap.Stringer("to", newState))

	m.regs.Changed.NotifyAll(newState, nil)

	if !oldState.IsAvailable() && newState.IsAvailable() {
		m.regs.Available.NotifyAll(newState, nil)
		m.onAvailable()
	}

	if oldState.IsAvailable() && !newState.IsAvailable() {
		m.regs.NotAvailable.NotifyAll(newState, nil)
	}

	if !oldState.IsOn() && newState.IsOn() {
		m.regs.On.NotifyAll(newState, nil)
	}

	if (!newState.IsOn() || !newState.IsAvailable()) && (oldState.IsOn() && oldState.IsAvailable()) {
		m.regs.OffOrNotAvailable.NotifyAll(newState, nil)
	}
}

// register adds under the lock and notifies right away when the predicate already holds
func (m *StateMachine) register(l *registrant.List, pred func(State) bool, h registrant.Handler, token, userContext any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := l.Add(h, token, userContext)
	if pred != nil && pred(m.state) {
		l.NotifyRegistrant(r, m.state, nil)
	}
}

func (m *StateMachine) unregister(l *registrant.List, h registrant.Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.Remove(h)
}

// RegisterForStateChanged registers without an initial notification
func (m *StateMachine) RegisterForStateChanged(h registrant.Handler, token, userContext any) {
	m.register(m.regs.Changed, nil, h, token, userContext)
}

func (m *StateMachine) UnregisterForStateChanged(h registrant.Handler) {
	m.unregister(m.regs.Changed, h)
}

func (m *StateMachine) RegisterForOn(h registrant.Handler, token, userContext any) {
	m.register(m.regs.On, State.IsOn, h, token, userContext)
}

func (m *StateMachine) UnregisterForOn(h registrant.Handler) {
	m.unregister(m.regs.On, h)
}

func (m *StateMachine) RegisterForAvailable(h registrant.Handler, token, userContext any) {
	m.register(m.regs.Available, State.IsAvailable, h, token, userContext)
}

func (m *StateMachine) UnregisterForAvailable(h registrant.Handler) {
	m.unregister(m.regs.Available, h)
}

func (m *StateMachine) RegisterForNotAvailable(h registrant.Handler, token, userContext any) {
	m.register(m.regs.NotAvailable, func(s State) bool {
		return !s.IsAvailable()
	}, h, token, userContext)
}

func (m *StateMachine) UnregisterForNotAvailable(h registrant.Handler) {
	m.unregister(m.regs.NotAvailable, h)
}

func (m *StateMachine) RegisterForOffOrNotAvailable(h registrant.Handler, token, userContext any) {
	m.register(m.regs.OffOrNotAvailable, func(s State) bool {
		return !s.IsOn() || !s.IsAvailable()
	}, h, token, userContext)
}

func (m *StateMachine) UnregisterForOffOrNotAvailable(h registrant.Handler) {
	m.unregister(m.regs.OffOrNotAvailable, h)
}
