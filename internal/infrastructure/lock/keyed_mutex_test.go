package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-carnes/internal/infrastructure/lock"
)

func TestKeyedMutex_ExclusionPorClave(t *testing.T) {
	k := lock.NewKeyedMutex()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := k.Lock(ctx, "product:a")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, k.Len())
}

func TestKeyedMutex_ClavesDistintasNoSeBloquean(t *testing.T) {
	k := lock.NewKeyedMutex()
	ctx := context.Background()

	releaseA, err := k.Lock(ctx, "a")
	require.NoError(t, err)
	defer releaseA()

	ctx2, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	releaseB, err := k.Lock(ctx2, "b")
	require.NoError(t, err)
	releaseB()
}

func TestKeyedMutex_RespetaCancelacion(t *testing.T) {
	k := lock.NewKeyedMutex()
	release, err := k.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = k.Lock(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	release() // idempotente
	assert.Equal(t, 0, k.Len())
}
