package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/realtime"
)

func TestChangeEventInvalidatesCachedQuery(t *testing.T) {
	bus := realtime.NewBus()
	cache := querycache.New(time.Minute)
	subs := WireCacheInvalidation(bus, cache)
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	var fetches int32
	fetch := func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&fetches, 1), nil
	}

	// Prime the cache.
	_, err := cache.Read(context.Background(), messagesKey("c1"), fetch)
	require.NoError(t, err)

	bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventInsert,
		Table:        chatMessagesTable,
		FilterValues: map[string]string{"conversation_id": "c1"},
	})

	// Delivery is asynchronous; wait for the stale mark to land.
	require.Eventually(t, func() bool {
		v, err := cache.Read(context.Background(), messagesKey("c1"), fetch)
		return err == nil && v != int32(1)
	}, time.Second, 5*time.Millisecond, "the cached transcript should go stale after the event")
}

func TestUnrelatedConversationStaysCached(t *testing.T) {
	bus := realtime.NewBus()
	cache := querycache.New(time.Minute)
	subs := WireCacheInvalidation(bus, cache)
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	var fetches int32
	fetch := func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&fetches, 1), nil
	}

	_, err := cache.Read(context.Background(), messagesKey("c2"), fetch)
	require.NoError(t, err)

	bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventInsert,
		Table:        chatMessagesTable,
		FilterValues: map[string]string{"conversation_id": "c1"},
	})

	time.Sleep(50 * time.Millisecond)

	v, err := cache.Read(context.Background(), messagesKey("c2"), fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v, "another conversation's transcript must stay cached")
}

func TestArticleEventInvalidatesIndexAndDetail(t *testing.T) {
	bus := realtime.NewBus()
	cache := querycache.New(time.Minute)
	subs := WireCacheInvalidation(bus, cache)
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	var indexFetches, detailFetches int32
	_, err := cache.Read(context.Background(), articlesKey(true), func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&indexFetches, 1), nil
	})
	require.NoError(t, err)
	_, err = cache.Read(context.Background(), articleKey("my-post"), func(ctx context.Context) (interface{}, error) {
		return atomic.AddInt32(&detailFetches, 1), nil
	})
	require.NoError(t, err)

	bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventUpdate,
		Table:        articlesTable,
		FilterValues: map[string]string{"slug": "my-post", "article_id": "a1"},
	})

	require.Eventually(t, func() bool {
		v1, _ := cache.Read(context.Background(), articlesKey(true), func(ctx context.Context) (interface{}, error) {
			return atomic.AddInt32(&indexFetches, 1), nil
		})
		v2, _ := cache.Read(context.Background(), articleKey("my-post"), func(ctx context.Context) (interface{}, error) {
			return atomic.AddInt32(&detailFetches, 1), nil
		})
		return v1 != int32(1) && v2 != int32(1)
	}, time.Second, 5*time.Millisecond)
}
