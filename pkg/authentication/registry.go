// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps strategy names to strategies, it is populated at startup and read per request
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]StrategyInterface
}

func (r *Registry) Register(s StrategyInterface) error {
	if s == nil || s.Name() == "" {
		return fmt.Errorf("strategy must have a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.strategies[s.Name()]; ok {
		return fmt.Errorf("strategy %q is already registered", s.Name())
	}

	r.strategies[s.Name()] = s

	return nil
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.strategies, name)
}

// Lookup resolves the named strategies preserving order
func (r *Registry) Lookup(names ...string) ([]StrategyInterface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(names) == 0 {
		return nil, fmt.Errorf("no strategy requested")
	}

	ret := make([]StrategyInterface, 0, len(names))
	for _, name := range names {
		s, ok := r.strategies[name]
		if !ok {
			return nil, fmt.Errorf("unknown authentication strategy %q", name)
		}
		ret = append(ret, s)
	}

	return ret, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func NewRegistry() *Registry {
	r := new(Registry)
	r.strategies = make(map[string]StrategyInterface)

	return r
}
