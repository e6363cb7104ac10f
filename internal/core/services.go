package core

import "sync"

// services is a concurrency-safe name to value map shared by an AppContext
// and every context derived from it.
type services struct {
	mu    sync.RWMutex
	items map[string]any
}

func newServices() *services {
	return &services{items: make(map[string]any)}
}

// RegisterService makes v available to modules under name. A later
// registration under the same name replaces the earlier one.
func (ctx *AppContext) RegisterService(name string, v any) {
	ctx.services.mu.Lock()
	defer ctx.services.mu.Unlock()
	ctx.services.items[name] = v
}

// GetService returns the service registered under name.
func (ctx *AppContext) GetService(name string) (any, bool) {
	ctx.services.mu.RLock()
	defer ctx.services.mu.RUnlock()
	v, ok := ctx.services.items[name]
	return v, ok
}

// Service returns the service registered under name if it has type T.
func Service[T any](ctx *AppContext, name string) (T, bool) {
	var zero T
	v, ok := ctx.GetService(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
