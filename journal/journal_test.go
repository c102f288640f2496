package journal

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/vmath"
)

func openTemp(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(Config{Driver: "sqlite", DSN: path}, zerolog.Nop())
	require.NoError(t, err)
	return j, path
}

func TestRecordAndList(t *testing.T) {
	j, _ := openTemp(t)
	defer j.Close()

	require.NoError(t, j.Record(3, event.Notification{
		Type:    event.EventPlayerFire,
		Origin:  "player",
		Payload: event.FirePayload{Ray: vmath.Ray{Origin: vmath.V3F(0, 2, -30), Direction: vmath.V3F(0, 0, 1)}},
	}))
	require.NoError(t, j.Record(4, event.Notification{
		Type:    event.EventEnemyHit,
		Origin:  "phuck-0",
		Payload: event.HitPayload{Damage: 50, Health: 50},
	}))
	require.NoError(t, j.Record(9, event.Notification{Type: event.EventLevelCleared, Origin: "level"}))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "player_fire", entries[0].Type)
	assert.Equal(t, int64(3), entries[0].Frame)
	assert.Equal(t, j.SessionID(), entries[0].SessionID)

	var hit event.HitPayload
	require.NoError(t, json.Unmarshal(entries[1].Payload, &hit))
	assert.Equal(t, 50.0, hit.Health)
	assert.Equal(t, "phuck-0", entries[1].Origin)

	assert.Equal(t, "null", string(entries[2].Payload))
}

func TestCloseStampsSession(t *testing.T) {
	j, path := openTemp(t)
	id := j.SessionID()
	require.NoError(t, j.Record(12, event.Notification{Type: event.EventPlayerFire}))
	require.NoError(t, j.Close())

	assert.ErrorIs(t, j.Record(13, event.Notification{Type: event.EventPlayerFire}), ErrClosed)
	assert.ErrorIs(t, j.Close(), ErrClosed)
	_, err := j.Entries()
	assert.ErrorIs(t, err, ErrClosed)

	// Reopen the same file, a second session is added beside the first
	again, err := Open(Config{Driver: "sqlite", DSN: path}, zerolog.Nop())
	require.NoError(t, err)
	defer again.Close()

	sessions, err := again.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	var first Session
	for _, s := range sessions {
		if s.ID == id {
			first = s
		}
	}
	require.Equal(t, id, first.ID)
	require.NotNil(t, first.EndedAt)
	assert.Equal(t, int64(12), first.Frames)
	assert.Equal(t, int64(1), first.Entries)

	entries, err := again.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries, "new session starts empty")
}

func TestInMemoryDefault(t *testing.T) {
	j, err := Open(Config{}, zerolog.Nop())
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.Record(1, event.Notification{Type: event.EventEnemyDown}))
	entries, err := j.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "mongo"}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrDriver)
}
