package organizer

import "sync"

// dirLocks hands out one mutex per target directory so directory
// creation, collision resolution, and the commit form a single critical
// section per bucket. The map only grows; a run touches a bounded number
// of bucket directories.
type dirLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (d *dirLocks) acquire(dir string) func() {
	d.mu.Lock()
	if d.locks == nil {
		d.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := d.locks[dir]
	if !ok {
		lock = new(sync.Mutex)
		d.locks[dir] = lock
	}
	d.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
