package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/omni/internal/kvstore"
)

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Set(string, string) error         { return errors.New("disk gone") }
func (failingStore) Close() error                     { return nil }

func TestRecord_BoundAndRecency(t *testing.T) {
	r := Open(kvstore.NewMemory(), nil)
	for _, q := range []string{"a", "b", "a", "c", "d", "e", "f"} {
		require.NoError(t, r.Record(q))
	}
	assert.Equal(t, []string{"f", "e", "d", "c", "a"}, r.List())
}

func TestRecord_CaseSensitiveDedup(t *testing.T) {
	r := Open(kvstore.NewMemory(), nil)
	require.NoError(t, r.Record("JSON"))
	require.NoError(t, r.Record("json"))
	require.NoError(t, r.Record("JSON"))
	assert.Equal(t, []string{"JSON", "json"}, r.List())
}

func TestRecord_IgnoresEmpty(t *testing.T) {
	store := kvstore.NewMemory()
	r := Open(store, nil)
	require.NoError(t, r.Record(""))
	assert.Empty(t, r.List())

	_, ok, err := store.Get(Key)
	require.NoError(t, err)
	assert.False(t, ok, "nothing is written for an empty query")
}

func TestRecord_PersistsJSONArray(t *testing.T) {
	store := kvstore.NewMemory()
	r := Open(store, nil)
	require.NoError(t, r.Record("pdf"))
	require.NoError(t, r.Record("json"))

	raw, ok, err := store.Get(Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["json","pdf"]`, raw)

	reopened := Open(store, nil)
	assert.Equal(t, []string{"json", "pdf"}, reopened.List())
}

func TestOpen_FailSoft(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"object", `{"a":1}`},
		{"numbers", `[1,2,3]`},
		{"empty string", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kvstore.NewMemory()
			require.NoError(t, store.Set(Key, tt.raw))
			assert.Empty(t, Open(store, nil).List())
		})
	}

	assert.Empty(t, Open(failingStore{}, nil).List())
}

func TestOpen_NormalizesStoredList(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(Key, `["a","b","a","c","d","e","f","g"]`))

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, Open(store, nil).List())
}

func TestRecord_WriteFailureKeepsMemoryState(t *testing.T) {
	r := Open(failingStore{}, nil)
	err := r.Record("json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving recent searches")
	assert.Equal(t, []string{"json"}, r.List())
}

func TestClear(t *testing.T) {
	store := kvstore.NewMemory()
	r := Open(store, nil)
	require.NoError(t, r.Record("a"))
	require.NoError(t, r.Clear())
	assert.Empty(t, r.List())

	raw, _, err := store.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestList_ReturnsCopy(t *testing.T) {
	r := Open(kvstore.NewMemory(), nil)
	require.NoError(t, r.Record("a"))
	l := r.List()
	l[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.List())
}
