package memory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/mem-ledger/internal/domain/entity"
	"github.com/Xausdorf/mem-ledger/internal/infrastructure/memory"
)

func TestIdempotencyStore_FirstSaveWins(t *testing.T) {
	store := memory.NewIdempotencyStore()
	assert.Nil(t, store.Find("k"))

	store.Save(entity.NewIdempotencyRecord("k", 200, []byte(`first`)))
	store.Save(entity.NewIdempotencyRecord("k", 400, []byte(`second`)))

	got := store.Find("k")
	require.NotNil(t, got)
	assert.Equal(t, 200, got.Status())
	assert.Equal(t, []byte(`first`), got.Body())
}

func TestIdempotencyStore_LockSerializesKey(t *testing.T) {
	store := memory.NewIdempotencyStore()

	const goroutines = 20
	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			unlock := store.Lock("k")
			defer unlock()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)

	// Distinct keys do not block each other.
	unlockA := store.Lock("a")
	unlockB := store.Lock("b")
	unlockB()
	unlockA()
}
