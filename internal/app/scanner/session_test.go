package scanner

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAcquiresCamera(t *testing.T) {
	m := NewManager()

	session, started := m.Start("kiosk-1")

	assert.True(t, started)
	assert.Equal(t, StateScanning, session.State)
	assert.Equal(t, "kiosk-1", session.DeviceID)
	assert.NotEqual(t, uuid.Nil, session.ID)
}

func TestStartIsIdempotentWhileActive(t *testing.T) {
	m := NewManager()

	first, started := m.Start("kiosk-1")
	require.True(t, started)

	second, started := m.Start("kiosk-2")
	assert.False(t, started)
	assert.Equal(t, first.ID, second.ID, "second start must return the existing handle")

	active, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, first.ID, active.ID)
}

func TestDecodeEmitsOnceAndReleases(t *testing.T) {
	m := NewManager()
	session, _ := m.Start("kiosk-1")

	decoded, err := m.Decode(session.ID, "STU-2025-041")
	require.NoError(t, err)
	assert.Equal(t, "STU-2025-041", decoded.DecodedText)
	assert.Equal(t, StateIdle, decoded.State)
	assert.Equal(t, EndReasonDecoded, decoded.EndReason)
	require.NotNil(t, decoded.EndedAt)

	// Camera is free again
	_, ok := m.Active()
	assert.False(t, ok)

	// Second decode on the same handle must not emit again
	_, err = m.Decode(session.ID, "STU-2025-042")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestCancelReleasesCamera(t *testing.T) {
	m := NewManager()
	session, _ := m.Start("kiosk-1")

	cancelled, err := m.Cancel(session.ID)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, cancelled.State)
	assert.Equal(t, EndReasonCancel, cancelled.EndReason)

	_, ok := m.Active()
	assert.False(t, ok)

	// A fresh session can start immediately
	_, started := m.Start("kiosk-1")
	assert.True(t, started)
}

func TestFailReleasesAndAllowsRetry(t *testing.T) {
	m := NewManager()
	session, _ := m.Start("kiosk-1")

	failed, err := m.Fail(session.ID, "camera permission denied")
	require.NoError(t, err)
	assert.Equal(t, EndReasonError, failed.EndReason)
	assert.Equal(t, "camera permission denied", failed.ErrorReason)

	retry, started := m.Start("kiosk-1")
	assert.True(t, started)
	assert.NotEqual(t, session.ID, retry.ID)
}

func TestUnknownHandle(t *testing.T) {
	m := NewManager()

	_, err := m.Decode(uuid.New(), "whatever")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Cancel(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetReturnsEndedSession(t *testing.T) {
	m := NewManager()
	session, _ := m.Start("kiosk-1")
	_, err := m.Decode(session.ID, "STU-1")
	require.NoError(t, err)

	got, err := m.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "STU-1", got.DecodedText)
	assert.Equal(t, StateIdle, got.State)
}

func TestEndedRetentionIsBounded(t *testing.T) {
	m := NewManager()

	first, _ := m.Start("kiosk-1")
	_, err := m.Cancel(first.ID)
	require.NoError(t, err)

	// Fill the retention window past its bound; the first session gets evicted
	var last Session
	for i := 0; i < maxEndedSessions; i++ {
		session, started := m.Start("kiosk-1")
		require.True(t, started)
		last, err = m.Cancel(session.ID)
		require.NoError(t, err)
	}

	assert.Len(t, m.ended, maxEndedSessions)
	assert.Len(t, m.endedOrder, maxEndedSessions)

	// The evicted session is indistinguishable from one that never existed
	_, err = m.Cancel(first.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(first.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Recently ended sessions keep the closed distinction
	_, err = m.Decode(last.ID, "STU-1")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestConcurrentStartsYieldSingleSession(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	ids := make(chan uuid.UUID, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session, _ := m.Start("kiosk-race")
			ids <- session.ID
		}()
	}
	wg.Wait()
	close(ids)

	unique := map[uuid.UUID]bool{}
	for id := range ids {
		unique[id] = true
	}
	assert.Len(t, unique, 1, "all concurrent starts must share one session")
}
