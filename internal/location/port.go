package location

import "sync"

// Port is the external source of the current location token. The controller
// reads it at startup, writes it on explicit navigation, and re-resolves
// whenever a subscriber is told it changed.
type Port interface {
	Current() string
	Set(token string)
	Subscribe(fn func(token string)) (unsubscribe func())
}

// Navigator is implemented by ports that keep a visit history.
type Navigator interface {
	Back() bool
	Forward() bool
}

// Memory is an in-process Port with browser-style back and forward history.
type Memory struct {
	mu      sync.Mutex
	current string
	back    []string
	forward []string
	subs    map[int]func(string)
	nextSub int
}

var (
	_ Port      = (*Memory)(nil)
	_ Navigator = (*Memory)(nil)
)

// NewMemory returns a port positioned at token.
func NewMemory(token string) *Memory {
	return &Memory{current: token, subs: make(map[int]func(string))}
}

func (m *Memory) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set moves to token, clearing forward history. Setting the current token
// does nothing and notifies no one.
func (m *Memory) Set(token string) {
	m.mu.Lock()
	if token == m.current {
		m.mu.Unlock()
		return
	}
	m.back = append(m.back, m.current)
	m.forward = nil
	m.current = token
	m.mu.Unlock()
	m.notify(token)
}

// Back returns to the previous token, if any.
func (m *Memory) Back() bool {
	m.mu.Lock()
	if len(m.back) == 0 {
		m.mu.Unlock()
		return false
	}
	prev := m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	m.forward = append(m.forward, m.current)
	m.current = prev
	m.mu.Unlock()
	m.notify(prev)
	return true
}

// Forward undoes the last Back, if any.
func (m *Memory) Forward() bool {
	m.mu.Lock()
	if len(m.forward) == 0 {
		m.mu.Unlock()
		return false
	}
	next := m.forward[len(m.forward)-1]
	m.forward = m.forward[:len(m.forward)-1]
	m.back = append(m.back, m.current)
	m.current = next
	m.mu.Unlock()
	m.notify(next)
	return true
}

func (m *Memory) Subscribe(fn func(token string)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// notify runs subscribers synchronously, outside the lock so they may read
// the port.
func (m *Memory) notify(token string) {
	m.mu.Lock()
	fns := make([]func(string), 0, len(m.subs))
	for i := 0; i < m.nextSub; i++ {
		if fn, ok := m.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(token)
	}
}
