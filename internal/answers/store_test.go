package answers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/metrics"
	"diagnostic-canvas/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStorage) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	return NewStore(mem, DefaultKey, nil, metrics.NewMetrics()), mem
}

func TestStore_RoundTrip(t *testing.T) {
	store, mem := newTestStore(t)
	require.NoError(t, store.SetAnswer("b1", "ok"))
	require.NoError(t, store.ToggleComplete("b1"))

	reloaded := NewStore(mem, DefaultKey, nil, nil)
	reloaded.Load()
	assert.Equal(t, "ok", reloaded.Answer("b1"))
	assert.True(t, reloaded.IsCompleted("b1"))
}

func TestStore_LoadPersistedDocument(t *testing.T) {
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.Set(DefaultKey, []byte(`{"answers":{"b1":"ok"},"completed":["b1"]}`)))

	store := NewStore(mem, DefaultKey, nil, nil)
	store.Load()
	assert.Equal(t, "ok", store.Answers()["b1"])
}

func TestStore_EveryMutationSaves(t *testing.T) {
	store, mem := newTestStore(t)

	require.NoError(t, store.SetAnswer("b3", "a"))
	data, err := mem.Get(DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"answers":{"b3":"a"},"completed":[]}`, string(data))

	require.NoError(t, store.ToggleComplete("b3"))
	data, _ = mem.Get(DefaultKey)
	assert.JSONEq(t, `{"answers":{"b3":"a"},"completed":["b3"]}`, string(data))

	require.NoError(t, store.ClearAnswer("b3"))
	data, _ = mem.Get(DefaultKey)
	assert.JSONEq(t, `{"answers":{"b3":""},"completed":["b3"]}`, string(data))

	store.Reset()
	data, _ = mem.Get(DefaultKey)
	assert.JSONEq(t, `{"answers":{},"completed":[]}`, string(data))

	assert.EqualValues(t, 4, store.Metrics().GetSnapshot().Saves)
}

func TestStore_LoadFallsBackToEmpty(t *testing.T) {
	cases := map[string][]byte{
		"malformed":  []byte(`{not json`),
		"wrong type": []byte(`{"answers":["b1"]}`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			mem := storage.NewMemoryStorage()
			require.NoError(t, mem.Set(DefaultKey, raw))

			store := NewStore(mem, DefaultKey, nil, nil)
			store.Load()
			assert.Empty(t, store.State().Answers)
			assert.Empty(t, store.State().Completed)
			assert.EqualValues(t, 1, store.Metrics().GetSnapshot().LoadFailures)
		})
	}

	t.Run("missing", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Load()
		assert.Empty(t, store.State().Answers)
		assert.EqualValues(t, 0, store.Metrics().GetSnapshot().LoadFailures)
	})
}

func TestStore_WriteFailureIsSwallowed(t *testing.T) {
	store, mem := newTestStore(t)
	mem.FailWrites = errors.New("quota exceeded")

	require.NoError(t, store.SetAnswer("b1", "still in memory"))
	assert.Equal(t, "still in memory", store.Answer("b1"))

	snap := store.Metrics().GetSnapshot()
	assert.EqualValues(t, 1, snap.SaveFailures)
	assert.Error(t, store.Save())
}

func TestStore_RejectsUnknownBlock(t *testing.T) {
	store, mem := newTestStore(t)

	assert.ErrorIs(t, store.SetAnswer("zz", "x"), catalog.ErrUnknownBlock)
	assert.ErrorIs(t, store.ToggleComplete("zz"), catalog.ErrUnknownBlock)
	assert.ErrorIs(t, store.ClearAnswer("zz"), catalog.ErrUnknownBlock)

	_, err := mem.Get(DefaultKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_StateIsACopy(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetAnswer("b1", "ok"))

	st := store.State()
	st.Answers["b1"] = "changed"
	assert.Equal(t, "ok", store.Answer("b1"))
}
