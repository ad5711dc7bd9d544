// Released under an MIT license. See LICENSE.

package describe

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
)

// Registry maps type names to types. Names are case insensitive.
type Registry struct {
	sync.RWMutex
	m map[string]*T
}

// NewRegistry creates a registry holding ts.
func NewRegistry(ts ...*T) *Registry {
	r := &Registry{m: map[string]*T{}}
	r.Register(ts...)

	return r
}

// Is returns true if v can be made into the type called name.
func (r *Registry) Is(a ambient.I, v cell.I, name string) (bool, error) {
	t, err := r.Must(name)
	if err != nil {
		return false, err
	}

	return t.CanMorph(a, v), nil
}

// Lookup returns the type called name.
func (r *Registry) Lookup(name string) (*T, bool) {
	r.RLock()
	defer r.RUnlock()

	t, ok := r.m[strings.ToLower(name)]

	return t, ok
}

// Morph makes v into the type called name.
func (r *Registry) Morph(a ambient.I, v cell.I, name string) (cell.I, error) {
	t, err := r.Must(name)
	if err != nil {
		return nil, err
	}

	return t.Morph(a, v)
}

// Must returns the type called name or an error if there is no such type.
func (r *Registry) Must(name string) (*T, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no such type: %s", name)
	}

	return t, nil
}

// Names returns the name of every type in sorted order.
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	ns := make([]string, 0, len(r.m))
	for n := range r.m {
		ns = append(ns, n)
	}

	sort.Strings(ns)

	return ns
}

// Register adds ts to the registry, replacing any types with the same name.
func (r *Registry) Register(ts ...*T) {
	r.Lock()
	defer r.Unlock()

	for _, t := range ts {
		r.m[strings.ToLower(t.Name)] = t
	}
}

// Types returns the names of every type v can be made into, in sorted order.
func (r *Registry) Types(a ambient.I, v cell.I) []string {
	var ns []string

	for _, n := range r.Names() {
		if t, ok := r.Lookup(n); ok && t.CanMorph(a, v) {
			ns = append(ns, n)
		}
	}

	return ns
}
