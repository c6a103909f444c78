package store

import "sync"

// notifier implements the subscribe/notify mechanism the stores expose to
// view components. Subscribers are invoked synchronously, outside any store
// lock, so a subscriber may read back the store it observes.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// subscribe registers fn and returns a cancel function that removes it.
func (n *notifier) subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}

	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notify calls every registered subscriber.
func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
