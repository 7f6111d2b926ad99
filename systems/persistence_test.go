package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/rollsphere/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestTuningRoundTrip(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	useStore(t, mem)

	got, err := LoadTuning()
	require.NoError(t, err)
	assert.Nil(t, got, "nothing saved yet")

	want := cfg.DefaultTuning()
	want.MaxSpeed = 7.5
	want.MaxJumpCount = 2
	require.NoError(t, SaveTuning(want))

	got, err = LoadTuning()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	require.NoError(t, ClearTuning())
	got, err = LoadTuning()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveTuningRejectsInvalid(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	useStore(t, mem)

	bad := cfg.DefaultTuning()
	bad.LinearDamping = -1
	require.Error(t, SaveTuning(bad))
	assert.Empty(t, mem.items)
}

func TestLoadTuningRejectsCorruptData(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{tuningKey: []byte("{not json")}})
	_, err := LoadTuning()
	assert.Error(t, err)

	useStore(t, &memStore{items: map[string][]byte{tuningKey: []byte(`{"maxJumpCount":-4,"targetJumpHeight":6}`)}})
	_, err = LoadTuning()
	var cfgErr *cfg.Error
	assert.True(t, errors.As(err, &cfgErr))
}

func TestPersistenceDegradesWithoutStore(t *testing.T) {
	useStore(t, nil)
	got, err := LoadTuning()
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, SaveTuning(cfg.DefaultTuning()))
	assert.NoError(t, ClearTuning())

	useStore(t, &memStore{err: errors.New("disk gone")})
	got, err = LoadTuning()
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Error(t, SaveTuning(cfg.DefaultTuning()))
}
