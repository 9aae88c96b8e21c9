package verbs

import (
	"slices"

	"thicket/app/config"
	"thicket/app/debug"
)

// Store maps invocation keys to verbs.
// It's filled once at startup and only read afterwards.
type Store struct {
	verbs map[string]Verb
}

func NewStore() *Store {
	return &Store{verbs: make(map[string]Verb)}
}

// Insert binds v to key. An existing binding is replaced.
func (s *Store) Insert(key string, v Verb) {
	if old, ok := s.verbs[key]; ok {
		debug.LogDebug("verb", key, "replaces", old.Name())
	}
	s.verbs[key] = v
}

// FillFromConf inserts the entries in order so later entries win
func (s *Store) FillFromConf(entries []config.VerbEntry) {
	for _, e := range entries {
		s.Insert(e.Invocation, New(e.Name, e.Execution))
	}
}

// Get returns the verb bound to key
func (s *Store) Get(key string) (Verb, bool) {
	v, ok := s.verbs[key]
	return v, ok
}

func (s *Store) Len() int {
	return len(s.verbs)
}

// Keys returns all invocation keys in ascending order
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.verbs))
	for k := range s.verbs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
