package item

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first, err := store.Add("widget")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "widget", first.Name)

	second, err := store.Add("gadget")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "gadget", second.Name)
}

func TestAddRejectsEmptyName(t *testing.T) {
	store := NewStore()

	_, err := store.Add("")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, 0, store.Len())

	// A rejected add must not consume an id.
	it, err := store.Add("widget")
	require.NoError(t, err)
	assert.Equal(t, 1, it.ID)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store := NewStore()

	names := []string{"alpha", "beta", "gamma"}
	for _, n := range names {
		_, err := store.Add(n)
		require.NoError(t, err)
	}

	items := store.List()
	require.Len(t, items, 3)
	for i, n := range names {
		assert.Equal(t, i+1, items[i].ID)
		assert.Equal(t, n, items[i].Name)
	}
}

func TestListEmptyStore(t *testing.T) {
	store := NewStore()

	items := store.List()
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 0, store.Len())
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore()
	_, err := store.Add("widget")
	require.NoError(t, err)

	items := store.List()
	items[0].Name = "mutated"

	assert.Equal(t, "widget", store.List()[0].Name)
}

func TestConcurrentAddKeepsIDsUnique(t *testing.T) {
	store := NewStore()

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := store.Add("item")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	items := store.List()
	require.Len(t, items, workers*perWorker)

	seen := make(map[int]bool, len(items))
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}
