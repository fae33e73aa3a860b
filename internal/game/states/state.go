// Package states switches between the viewer's control modes, such as
// walking the deck or flying a scripted tour.
package states

// State is one control mode.
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame with the frame time in seconds.
	Update(dt float32) error
}

// Manager manages state transitions. Changes take effect at the start of
// the next Update, so a state may request a change from its own Update.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Toggle schedules a change to s, or back to fallback when s is already
// current.
func (m *Manager) Toggle(s, fallback State) {
	if m.current == s {
		m.Change(fallback)
		return
	}
	m.Change(s)
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float32) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}
