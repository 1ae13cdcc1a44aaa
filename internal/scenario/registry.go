package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// Registry holds loaded scenario definitions.
type Registry struct {
	byID map[string]*Def
	all  []Def
}

// NewRegistry creates a registry from loaded scenario definitions.
func NewRegistry(defs []Def) *Registry {
	r := &Registry{
		byID: make(map[string]*Def, len(defs)),
		all:  defs,
	}
	for i := range defs {
		r.byID[defs[i].ID] = &defs[i]
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded scenarios.json.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadScenarios()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no scenarios loaded from scenarios.json")
	}
	return NewRegistry(defs), nil
}

// GetByID returns the scenario with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.byID[id]
}

// Lookup returns the scenario with the given ID. The error for a missing ID
// lists the known ones.
func (r *Registry) Lookup(id string) (*Def, error) {
	if def := r.GetByID(id); def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScenario, id, strings.Join(r.IDs(), ", "))
}

// All returns all scenario definitions in file order.
func (r *Registry) All() []Def {
	return r.all
}

// IDs returns scenario IDs in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.all))
	for i := range r.all {
		ids[i] = r.all[i].ID
	}
	return ids
}

// Count returns the number of scenarios in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
