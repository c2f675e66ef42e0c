// Package notify delivers configuration change notifications.
//
// Observers subscribe to every change or to one top-level section such
// as "keys" or "logging". Delivery is synchronous and happens outside the
// notifier's lock, so an observer may subscribe or unsubscribe.
package notify

import (
	"sort"
	"sync"
)

// Change describes a section whose effective value changed on reload.
type Change struct {
	// Section is the top-level config key, such as "keys".
	Section string

	// Source names what triggered the change, such as a file path.
	Source string
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages configuration change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	global   map[uint64]Observer
	sections map[string]map[uint64]Observer

	nextID uint64
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		global:   make(map[uint64]Observer),
		sections: make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.global[id] = observer
	return &Subscription{id: id, notifier: n}
}

// SubscribeSection registers an observer for one top-level section.
func (n *Notifier) SubscribeSection(section string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	if n.sections[section] == nil {
		n.sections[section] = make(map[uint64]Observer)
	}
	n.sections[section][id] = observer
	return &Subscription{id: id, notifier: n}
}

// Notify delivers change to global observers and to the section's
// observers, in subscription order.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	type entry struct {
		id  uint64
		obs Observer
	}
	var entries []entry
	for id, obs := range n.global {
		entries = append(entries, entry{id, obs})
	}
	for id, obs := range n.sections[change.Section] {
		entries = append(entries, entry{id, obs})
	}
	n.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	for _, e := range entries {
		e.obs(change)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := len(n.global)
	for _, obs := range n.sections {
		count += len(obs)
	}
	return count
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.global, id)
	for section, observers := range n.sections {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.sections, section)
		}
	}
}
