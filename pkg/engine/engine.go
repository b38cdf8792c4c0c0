// Package engine implements the diagnostic reasoning core: condition
// matching, rule ranking, forward-chaining diagnosis, and backward-chaining
// hypothesis verification over a shared read-only rule store.
package engine

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mrhapile/techtriage/pkg/kb"
	"github.com/mrhapile/techtriage/pkg/types"
)

// Engine holds one diagnostic session: a reference to the shared rule
// store plus the session's working memory, inference trace, and fired
// rules. An Engine is not safe for concurrent use; give each session its
// own instance and share only the store.
type Engine struct {
	store  *kb.Store
	logger *zap.Logger

	memory types.Facts
	trace  []string
	fired  []*types.Rule
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for session-level events. The default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine bound to the given rule store.
func New(store *kb.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: zap.NewNop(),
		memory: make(types.Facts),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset clears working memory, the trace, and the fired-rule list.
// Diagnose calls this itself; callers driving AddFact/Verify directly use
// it to start a fresh session.
func (e *Engine) Reset() {
	e.memory = make(types.Facts)
	e.trace = nil
	e.fired = nil
}

// AddFact records one observed symptom or device attribute.
func (e *Engine) AddFact(key string, value types.Value) {
	e.memory[key] = value
	e.tracef("Added fact: %s = %s", key, value.String())
}

// AddFacts records a batch of facts in sorted key order so the trace is
// deterministic for identical inputs.
func (e *Engine) AddFacts(facts types.Facts) {
	keys := make([]string, 0, len(facts))
	for key := range facts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		e.AddFact(key, facts[key])
	}
}

// Facts returns a copy of the current working memory.
func (e *Engine) Facts() types.Facts {
	return e.memory.Clone()
}

// Trace returns the inference trace accumulated since the last reset.
func (e *Engine) Trace() []string {
	out := make([]string, len(e.trace))
	copy(out, e.trace)
	return out
}

func (e *Engine) tracef(format string, args ...any) {
	e.trace = append(e.trace, fmt.Sprintf(format, args...))
}
