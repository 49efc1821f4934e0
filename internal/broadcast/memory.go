package broadcast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryBus is an in-process signal exchange: the shared-directory equivalent
// for sessions living in one process, and the medium used in tests. Each
// participant gets its own Medium with a distinct origin, so self-filtering
// behaves exactly like the directory implementation.
type MemoryBus struct {
	mu   sync.Mutex
	subs map[Kind][]*memorySub
}

type memorySub struct {
	origin  string
	handler Handler
}

// NewMemoryBus creates an empty bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[Kind][]*memorySub)}
}

// NewMedium returns a participant handle with its own origin identity.
func (b *MemoryBus) NewMedium() Medium {
	return &memoryMedium{bus: b, origin: uuid.NewString()}
}

func (b *MemoryBus) deliver(marker Marker) {
	b.mu.Lock()
	subs := make([]*memorySub, len(b.subs[marker.Kind]))
	copy(subs, b.subs[marker.Kind])
	b.mu.Unlock()

	for _, sub := range subs {
		if sub.origin == marker.Origin {
			continue
		}
		sub.handler(marker)
	}
}

type memoryMedium struct {
	bus    *MemoryBus
	origin string
}

func (m *memoryMedium) Publish(kind Kind) error {
	m.bus.deliver(Marker{Kind: kind, Origin: m.origin, At: time.Now().UTC()})
	return nil
}

func (m *memoryMedium) Subscribe(kind Kind, handler Handler) (func(), error) {
	sub := &memorySub{origin: m.origin, handler: handler}

	m.bus.mu.Lock()
	m.bus.subs[kind] = append(m.bus.subs[kind], sub)
	m.bus.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			m.bus.mu.Lock()
			defer m.bus.mu.Unlock()
			subs := m.bus.subs[kind]
			for i, s := range subs {
				if s == sub {
					m.bus.subs[kind] = append(subs[:i], subs[i+1:]...)
					break
				}
			}
		})
	}
	return unsubscribe, nil
}
