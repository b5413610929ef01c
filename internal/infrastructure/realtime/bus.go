package realtime

import (
	"sync"

	"portfolia/pkg/logger"
)

// Bus fans row-change events out to per-(table, filter) subscriptions.
// Delivery order follows publish order within one subscription; nothing is
// guaranteed across subscriptions. Events are not deduplicated - downstream
// cache invalidation is idempotent, so a doubled event only costs a refetch.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]*Subscription // keyed by table
	next int
}

type Subscription struct {
	id     int
	table  string
	filter Filter
	fn     func(ChangeEvent)

	bus     *Bus
	ch      chan ChangeEvent
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	closed  bool
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string][]*Subscription),
	}
}

// Subscribe opens a channel for events on table matching filter. The caller
// owns the returned Subscription and must Close it on every exit path.
func (b *Bus) Subscribe(table string, filter Filter, fn func(ChangeEvent)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	sub := &Subscription{
		id:      b.next,
		table:   table,
		filter:  filter,
		fn:      fn,
		bus:     b,
		ch:      make(chan ChangeEvent, 64),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	b.subs[table] = append(b.subs[table], sub)

	go sub.deliverLoop()
	return sub
}

// Publish hands the event to every live matching subscription. A subscription
// whose buffer is full is dropped rather than blocking the publisher, the
// same policy the websocket manager applies to slow clients.
func (b *Bus) Publish(ev ChangeEvent) {
	b.mu.RLock()
	subs := b.subs[ev.Table]
	b.mu.RUnlock()

	for _, sub := range subs {
		if !sub.filter.matches(ev) {
			continue
		}
		sub.mu.Lock()
		if sub.closed {
			sub.mu.Unlock()
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			logger.Warn("realtime: dropping slow subscription on table %s", ev.Table)
			sub.mu.Unlock()
			// Close blocks on the stuck callback; don't hold up the publisher.
			go sub.Close()
			continue
		}
		sub.mu.Unlock()
	}
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.table]
	for i, s := range subs {
		if s.id == sub.id {
			b.subs[sub.table] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

func (s *Subscription) deliverLoop() {
	defer close(s.stopped)
	for {
		select {
		case <-s.done:
			return
		case ev := <-s.ch:
			// done wins over anything still sitting in the buffer.
			select {
			case <-s.done:
				return
			default:
			}
			s.fn(ev)
		}
	}
}

// Close tears the subscription down. It is idempotent and safe to call from
// any goroutine except the subscription's own callback: it blocks until the
// delivery goroutine has exited, so once Close returns no callback is running
// and none will fire again.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.stopped
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	<-s.stopped
	s.bus.remove(s)
}
