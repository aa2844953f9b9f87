package quiz

// Store is the immutable, filtered pool of subjects available to a session.
type Store struct {
	subjects []Subject
}

// NewStore builds a Store from raw subjects. Input order is preserved and
// only subjects passing Valid are kept. When a key repeats, the first valid
// occurrence wins. NewStore never fails: an all-rejected input yields an
// empty store.
func NewStore(raw []Subject) *Store {
	subjects := make([]Subject, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		if s == nil || !Valid(s) || seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		subjects = append(subjects, s)
	}
	return &Store{subjects: subjects}
}

// Len returns the number of subjects in the store.
func (s *Store) Len() int {
	return len(s.subjects)
}

// At returns the subject at index i.
func (s *Store) At(i int) Subject {
	return s.subjects[i]
}

// Subjects returns a copy of the stored subjects in order.
func (s *Store) Subjects() []Subject {
	out := make([]Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

// CanServe returns a *PoolError unless the store holds strictly more
// subjects than both count and OptionsPerQuestion.
func (s *Store) CanServe(count int) error {
	if n := s.Len(); n <= count || n <= OptionsPerQuestion {
		return &PoolError{Total: n, Requested: count}
	}
	return nil
}
