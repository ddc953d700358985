package database

import "sort"

// Listener receives the new raw value of a key after it changes. value is
// nil when the key was deleted.
type Listener func(key string, value []byte)

type listenerKey struct {
	namespace string
	key       string
}

func (d *DB) subscribe(namespace, key string, fn Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	lk := listenerKey{namespace: namespace, key: key}
	if d.listeners[lk] == nil {
		d.listeners[lk] = make(map[int]Listener)
	}
	id := d.nextID
	d.nextID++
	d.listeners[lk][id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if set, ok := d.listeners[lk]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(d.listeners, lk)
			}
		}
	}
}

// notify calls the listeners of a key in registration order. The lock is
// released before calling out so listeners may read, write or unsubscribe.
func (d *DB) notify(namespace, key string, value []byte) {
	d.mu.Lock()
	set := d.listeners[listenerKey{namespace: namespace, key: key}]
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, set[id])
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(key, value)
	}
}
