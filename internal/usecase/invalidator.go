package usecase

import (
	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/realtime"
)

// WireCacheInvalidation subscribes the query cache to every table's
// row-change events, so a push event marks the affected query keys stale and
// the next read refetches. Invalidation is idempotent; duplicated events
// only cost one extra refetch. Returns the subscriptions so the caller can
// tear them down.
func WireCacheInvalidation(bus *realtime.Bus, cache *querycache.Cache) []*realtime.Subscription {
	return []*realtime.Subscription{
		bus.Subscribe(chatMessagesTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			if convID := ev.FilterValues["conversation_id"]; convID != "" {
				cache.Invalidate(messagesKey(convID))
			}
		}),
		bus.Subscribe(conversationsTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(conversationsKey(""))
			if convID := ev.FilterValues["conversation_id"]; convID != "" {
				cache.Invalidate(messagesKey(convID))
			}
		}),
		bus.Subscribe(articlesTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(articlesKey(true))
			cache.Invalidate(articlesKey(false))
			if slug := ev.FilterValues["slug"]; slug != "" {
				cache.Invalidate(articleKey(slug))
			}
		}),
		bus.Subscribe(commentsTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			if articleID := ev.FilterValues["article_id"]; articleID != "" {
				cache.Invalidate(commentsKey(articleID))
			}
		}),
		bus.Subscribe(likesTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			if slug := ev.FilterValues["slug"]; slug != "" {
				cache.Invalidate(articleKey(slug))
			}
		}),
		bus.Subscribe(donationsTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(donationsKey)
		}),
		bus.Subscribe(servicesTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(servicesKey)
		}),
		bus.Subscribe(skillsTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(skillsKey)
		}),
		bus.Subscribe(educationTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(educationKey)
		}),
		bus.Subscribe(projectsTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(projectsKey)
		}),
		bus.Subscribe(testimonialsTable, realtime.Filter{}, func(ev realtime.ChangeEvent) {
			cache.Invalidate(testimonialsKey)
		}),
	}
}
