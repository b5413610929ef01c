package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCachesWithinTTL(t *testing.T) {
	cache := New(time.Minute)
	var fetches int32

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&fetches, 1)
		return "value", nil
	}

	for i := 0; i < 5; i++ {
		v, err := cache.Read(context.Background(), "articles", fetch)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}

	assert.Equal(t, int32(1), fetches)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	cache := New(time.Minute)
	var fetches int32

	fetch := func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&fetches, 1), nil
	}

	v, err := cache.Read(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	cache.Invalidate("k")

	v, err = cache.Read(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	cache := New(time.Minute)
	var fetches int32

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&fetches, 1)
		return "v", nil
	}

	_, err := cache.Read(context.Background(), "k", fetch)
	require.NoError(t, err)

	// Ten invalidations of a key already stale change nothing.
	for i := 0; i < 10; i++ {
		cache.Invalidate("k")
	}

	_, err = cache.Read(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fetches)
}

func TestConcurrentReadsCoalesce(t *testing.T) {
	cache := New(time.Minute)
	var fetches int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&fetches, 1)
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]interface{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cache.Read(context.Background(), "hot", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give every goroutine time to pile onto the same flight.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches, "concurrent reads must share one fetch")
	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestFailedFetchCachesNothing(t *testing.T) {
	cache := New(time.Minute)
	var fetches int32
	boom := errors.New("store down")

	failing := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&fetches, 1)
		return nil, boom
	}

	_, err := cache.Read(context.Background(), "k", failing)
	assert.ErrorIs(t, err, boom)

	// The failure was not cached; the next read hits the store again and
	// can succeed.
	v, err := cache.Read(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&fetches, 1)
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, int32(2), fetches)
}

func TestExpiredEntryRefetches(t *testing.T) {
	cache := New(10 * time.Millisecond)
	var fetches int32

	fetch := func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&fetches, 1), nil
	}

	_, err := cache.Read(context.Background(), "k", fetch)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	v, err := cache.Read(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestDropForgetsValue(t *testing.T) {
	cache := New(time.Minute)

	_, err := cache.Read(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
		return "old", nil
	})
	require.NoError(t, err)

	cache.Drop("k")

	v, err := cache.Read(context.Background(), "k", func(ctx context.Context) (interface{}, error) {
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}
