// Package kb holds the troubleshooting knowledge base: the rule catalog
// loaded once at startup and the symptom-question tables the dialogue
// layer walks through. The catalog is immutable after load and safe to
// share read-only across concurrent diagnostic sessions.
package kb

import (
	"sort"
	"strings"

	"github.com/mrhapile/techtriage/pkg/types"
)

// Store is the in-memory rule catalog, partitioned by device type.
type Store struct {
	computer []types.Rule
	mobile   []types.Rule
	all      []types.Rule
	byID     map[string]*types.Rule
}

// New builds a store from already-validated rule slices. Most callers
// should use LoadDir or LoadDefault instead.
func New(computer, mobile []types.Rule) *Store {
	s := &Store{
		computer: computer,
		mobile:   mobile,
	}
	s.all = make([]types.Rule, 0, len(computer)+len(mobile))
	s.all = append(s.all, computer...)
	s.all = append(s.all, mobile...)
	s.byID = make(map[string]*types.Rule, len(s.all))
	for i := range s.all {
		s.byID[s.all[i].ID] = &s.all[i]
	}
	return s
}

// Len returns the total number of rules.
func (s *Store) Len() int { return len(s.all) }

// All returns the combined catalog in load order.
func (s *Store) All() []types.Rule { return s.all }

// ByDevice returns the rules for the given device type. Unrecognized
// device strings fall back to the combined catalog: device names arrive
// from the dialogue layer and strictness here would only lose answers.
func (s *Store) ByDevice(device string) []types.Rule {
	switch strings.ToLower(device) {
	case types.DeviceComputer:
		return s.computer
	case types.DeviceMobile:
		return s.mobile
	default:
		return s.all
	}
}

// ByCategory returns the rules whose category equals the argument,
// optionally restricted to a device type. An empty result is not an error.
func (s *Store) ByCategory(category, device string) []types.Rule {
	pool := s.all
	if device != "" {
		pool = s.ByDevice(device)
	}
	var out []types.Rule
	for _, r := range pool {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// ByID looks up a single rule by its stable identifier.
func (s *Store) ByID(id string) (*types.Rule, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Categories returns the sorted set of distinct category values present
// across the whole catalog.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	for _, r := range s.all {
		seen[r.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SymptomKeys returns the sorted set of condition keys used by rules in
// the given category, excluding the reserved device key. This is what
// tells the dialogue layer which facts are worth asking about.
func (s *Store) SymptomKeys(category, device string) []string {
	seen := make(map[string]struct{})
	for _, r := range s.ByCategory(category, device) {
		for _, key := range r.Conditions.Keys() {
			if key == types.ConditionDevice {
				continue
			}
			seen[key] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
