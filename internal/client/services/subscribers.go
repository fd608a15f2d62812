package services

import (
	"sync"

	"github.com/avoronkov/wellfinder/internal/models"
)

type subscriber struct {
	id       int
	listener SessionListener
}

// subscriberRegistry keeps session listeners in subscription order. Each
// auth service instance owns exactly one registry; there is no process-wide
// listener state.
type subscriberRegistry struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

func newSubscriberRegistry() *subscriberRegistry {
	return &subscriberRegistry{}
}

// add registers a listener and returns a function that removes exactly that
// registration. The returned function is idempotent.
func (r *subscriberRegistry) add(listener SessionListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.subs = append(r.subs, subscriber{id: id, listener: listener})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// notify calls every listener registered at the start of the pass, in
// subscription order. Listeners added or removed during the pass do not
// affect delivery within it.
func (r *subscriberRegistry) notify(session *models.Session) {
	r.mu.Lock()
	snapshot := make([]subscriber, len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()

	for _, s := range snapshot {
		s.listener(session)
	}
}
