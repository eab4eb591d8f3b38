package weights

import "context"

type Stats struct {
	ExerciseCount int `json:"exerciseCount"`
	DoneCount     int `json:"doneCount"`
}

func (s *Store) IsDone(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	done, _ := s.loadDone(ctx)
	return done[id]
}

// DoneFlags returns every stored flag, including those of deleted exercises.
func (s *Store) DoneFlags(ctx context.Context) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	done, _ := s.loadDone(ctx)
	return done
}

func (s *Store) SetDone(ctx context.Context, id string, done bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return s.setDone(ctx, id, func(bool) bool { return done })
}

// ToggleDone flips the flag and returns the new value.
func (s *Store) ToggleDone(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return s.setDone(ctx, id, func(current bool) bool { return !current })
}

// Stats counts the listed exercises and how many of them are done. Flags
// left behind by deleted exercises are not counted.
func (s *Store) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	list, _ := s.loadExercises(ctx)
	done, _ := s.loadDone(ctx)

	stats := Stats{ExerciseCount: len(list)}
	for _, ex := range list {
		if done[ex.ID] {
			stats.DoneCount++
		}
	}
	return stats
}

func (s *Store) loadDone(ctx context.Context) (map[string]bool, Outcome) {
	var done map[string]bool
	o := s.readJSON(ctx, s.keys.Done, &done)
	if o != OK || done == nil {
		done = map[string]bool{}
	}
	return done, o
}

func (s *Store) setDone(ctx context.Context, id string, next func(current bool) bool) bool {
	done, o := s.loadDone(ctx)
	value := next(done[id])
	if o == StorageUnavailable {
		return value
	}

	done[id] = value
	s.writeJSON(ctx, s.keys.Done, done)
	return value
}
