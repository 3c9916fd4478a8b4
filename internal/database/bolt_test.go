package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/catalogr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Bolt {
	t.Helper()

	b, err := newBolt(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = b.Close()
	})

	return b
}

func TestBolt_Ping(t *testing.T) {
	b := newTestStore(t)

	require.NoError(t, b.Ping())
}

func TestBolt_SessionRoundTrip(t *testing.T) {
	b := newTestStore(t)

	got, err := b.GetSession()
	require.NoError(t, err)
	assert.Nil(t, got, "no session stored yet")

	sess := &model.Session{Token: "tok-1", Expiry: time.Now().Add(time.Hour).Truncate(time.Second)}
	require.NoError(t, b.SaveSession(sess))

	got, err = b.GetSession()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-1", got.Token)
	assert.True(t, sess.Expiry.Equal(got.Expiry))
}

func TestBolt_SaveSessionRejectsNil(t *testing.T) {
	b := newTestStore(t)

	require.Error(t, b.SaveSession(nil))
}

func TestBolt_DeleteSession(t *testing.T) {
	b := newTestStore(t)

	require.NoError(t, b.SaveSession(&model.Session{Token: "tok-1"}))
	require.NoError(t, b.DeleteSession())

	got, err := b.GetSession()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is harmless
	require.NoError(t, b.DeleteSession())
}

func TestBolt_ConfigDefaultsWhenUnset(t *testing.T) {
	b := newTestStore(t)

	cfg, err := b.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), *cfg)
}

func TestBolt_ConfigRoundTrip(t *testing.T) {
	b := newTestStore(t)

	cfg := &model.Config{APIBase: "https://example.com", APIPath: "demo", TimeoutSeconds: 10}
	require.NoError(t, b.SaveConfig(cfg))

	got, err := b.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, *cfg, *got)

	require.Error(t, b.SaveConfig(nil))
}
