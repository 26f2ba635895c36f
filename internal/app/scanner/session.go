// Package scanner tracks camera scan sessions for the kiosk devices that
// read student ID codes. At most one session holds the camera at a time.
// The session value returned by Start is the handle for every later call;
// there is no ambient "current session" state.
package scanner

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionState is the lifecycle state of one scan session.
type SessionState string

const (
	// StateScanning means the session owns the camera and is decoding frames.
	StateScanning SessionState = "SCANNING"
	// StateIdle means the session has ended and the camera is released.
	StateIdle SessionState = "IDLE"
)

// EndReason records how a session left the scanning state.
type EndReason string

const (
	EndReasonDecoded EndReason = "DECODED"
	EndReasonCancel  EndReason = "CANCELLED"
	EndReasonError   EndReason = "CAMERA_ERROR"
)

// Session is one camera acquisition. Fields are only written while the
// manager's lock is held; callers receive copies.
type Session struct {
	ID        uuid.UUID    `json:"id"`
	DeviceID  string       `json:"deviceId"`
	State     SessionState `json:"state"`
	StartedAt time.Time    `json:"startedAt"`
	EndedAt   *time.Time   `json:"endedAt,omitempty"`
	EndReason EndReason    `json:"endReason,omitempty"`
	// DecodedText is set exactly once, on the decode that ended the session.
	DecodedText string `json:"decodedText,omitempty"`
	// ErrorReason carries the camera failure message when EndReason is CAMERA_ERROR.
	ErrorReason string `json:"errorReason,omitempty"`
}

// maxEndedSessions bounds how many finished sessions the manager retains.
// Once the bound is hit the oldest entry is evicted, and late calls against
// it answer "not found" rather than "closed".
const maxEndedSessions = 64

// Manager owns the single camera resource. Every exit path (decode, cancel,
// camera error) releases it; a released session can never emit again.
type Manager struct {
	mu     sync.Mutex
	active *Session
	// ended keeps the most recent finished sessions so late calls get
	// "closed" instead of "not found"; endedOrder drives eviction.
	ended      map[uuid.UUID]*Session
	endedOrder []uuid.UUID
	now        func() time.Time
}

// NewManager creates a scan session manager.
func NewManager() *Manager {
	return &Manager{
		ended: make(map[uuid.UUID]*Session),
		now:   time.Now,
	}
}

// Start acquires the camera and returns the session handle. If a session is
// already active, Start is a no-op and returns the existing handle with
// started=false.
func (m *Manager) Start(deviceID string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		return *m.active, false
	}

	m.active = &Session{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		State:     StateScanning,
		StartedAt: m.now(),
	}
	return *m.active, true
}

// Decode records the decoded text for the given session, ends it and
// releases the camera. A session emits at most once; decoding an already
// ended session returns ErrSessionClosed.
func (m *Manager) Decode(id uuid.UUID, text string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.activeByID(id)
	if err != nil {
		return Session{}, err
	}

	session.DecodedText = text
	m.release(session, EndReasonDecoded)
	return *session, nil
}

// Cancel ends the session without a decode and releases the camera.
func (m *Manager) Cancel(id uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.activeByID(id)
	if err != nil {
		return Session{}, err
	}

	m.release(session, EndReasonCancel)
	return *session, nil
}

// Fail ends the session with a camera error and releases the camera. The
// device stays free to start a fresh session and retry.
func (m *Manager) Fail(id uuid.UUID, reason string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.activeByID(id)
	if err != nil {
		return Session{}, err
	}

	session.ErrorReason = reason
	m.release(session, EndReasonError)
	return *session, nil
}

// Active returns the current session handle, if any.
func (m *Manager) Active() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return Session{}, false
	}
	return *m.active, true
}

// Get returns a session by id, active or ended.
func (m *Manager) Get(id uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil && m.active.ID == id {
		return *m.active, nil
	}
	if session, ok := m.ended[id]; ok {
		return *session, nil
	}
	return Session{}, ErrSessionNotFound
}

// activeByID resolves id against the active session. Callers hold m.mu.
func (m *Manager) activeByID(id uuid.UUID) (*Session, error) {
	if m.active != nil && m.active.ID == id {
		return m.active, nil
	}
	if _, ok := m.ended[id]; ok {
		return nil, ErrSessionClosed
	}
	return nil, ErrSessionNotFound
}

// release moves the active session to the ended set, evicting the oldest
// retained session past maxEndedSessions. Callers hold m.mu.
func (m *Manager) release(session *Session, reason EndReason) {
	endedAt := m.now()
	session.State = StateIdle
	session.EndedAt = &endedAt
	session.EndReason = reason

	m.ended[session.ID] = session
	m.endedOrder = append(m.endedOrder, session.ID)
	if len(m.endedOrder) > maxEndedSessions {
		oldest := m.endedOrder[0]
		m.endedOrder = m.endedOrder[1:]
		delete(m.ended, oldest)
	}
	m.active = nil
}
