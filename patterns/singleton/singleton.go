// Package singleton demonstrates the Singleton pattern: a type with exactly
// one instance, reachable through a package-level accessor.
package singleton

import "sync"

// Registry holds site-wide settings. There is one Registry per process.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

var (
	instance *Registry
	once     sync.Once
)

// Instance returns the process-wide Registry, creating it on first use.
func Instance() *Registry {
	once.Do(func() {
		instance = &Registry{values: map[string]string{}}
	})
	return instance
}

// Set stores a setting.
func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Get returns a setting and whether it was present.
func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}
