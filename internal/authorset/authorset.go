// Package authorset holds ordered, duplicate-free lists of author names.
package authorset

// Set is an insertion-ordered set of names. The zero value is ready to use.
// Names are compared exactly, without any case or whitespace normalization.
type Set struct {
	index map[string]struct{}
	names []string
}

// New creates a Set from names, keeping the first occurrence of each.
func New(names ...string) *Set {
	s := &Set{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add appends name if it has not been seen yet. Returns true if it was added.
func (s *Set) Add(name string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, seen := s.index[name]; seen {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns a copy of the names in first-seen order. Never nil.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Difference returns the names in from that are absent from exclude,
// in the order they appear in from. Never nil.
func Difference(from, exclude []string) []string {
	excluded := New(exclude...)

	out := make([]string, 0, len(from))
	for _, name := range from {
		if !excluded.Contains(name) {
			out = append(out, name)
		}
	}
	return out
}
