package weights

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweights/internal/kv"
	"github.com/2beens/gymweights/internal/telemetry/metrics"
)

// Store owns the exercise list, weight overrides and done flags persisted
// in a kv.Backend. Public operations never return storage errors: reads
// fall back to defaults and the outcome is available through LastOutcome.
type Store struct {
	mu sync.Mutex

	backend   kv.Backend
	namespace string
	keys      Keys
	metrics   *metrics.Manager

	lastOutcome Outcome
}

type Option func(*Store)

func WithNamespace(namespace string) Option {
	return func(s *Store) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

func WithMetrics(metricsManager *metrics.Manager) Option {
	return func(s *Store) {
		s.metrics = metricsManager
	}
}

func NewStore(backend kv.Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.keys = NewKeys(s.namespace)
	return s
}

func (s *Store) Keys() Keys {
	return s.keys
}

// LastOutcome reports the most severe outcome seen by the most recent
// public operation.
func (s *Store) LastOutcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutcome
}

// Migrate persists the seed list (catalog followed by legacy custom
// exercises) when the canonical list is absent or malformed. A list that
// cannot be read because storage is down is left alone.
func (s *Store) Migrate(ctx context.Context) (seeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	_, o := s.readExercises(ctx)
	switch o {
	case OK:
		return false
	case StorageUnavailable:
		log.Errorf("migrate: exercise list unavailable, skipping seed")
		return false
	}

	seed := s.seedList(ctx)
	if s.saveExercises(ctx, seed) != OK {
		return false
	}
	log.Debugf("migrate: exercise list seeded with %d exercises", len(seed))
	return true
}

// GetAllExercises returns the canonical list. When it was never written (or
// cannot be parsed) the seed list is returned without being persisted.
func (s *Store) GetAllExercises(ctx context.Context) []Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	list, _ := s.loadExercises(ctx)
	return list
}

// SaveExercises replaces the canonical list. Ids are not checked for
// uniqueness.
func (s *Store) SaveExercises(ctx context.Context, list []Exercise) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	cp := make([]Exercise, len(list))
	copy(cp, list)
	s.saveExercises(ctx, cp)
}

// Exercise looks up one exercise in the current list.
func (s *Store) Exercise(ctx context.Context, id string) (Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	list, _ := s.loadExercises(ctx)
	ex, ok := findExercise(list, id)
	if !ok {
		return Exercise{}, ErrUnknownExercise
	}
	return ex, nil
}

func (s *Store) AddExercise(ctx context.Context, name string, defaultWeight float64) Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if !isFinite(defaultWeight) {
		s.note(s.keys.Weights, InvalidNumericInput)
	}

	list, o := s.loadExercises(ctx)
	name = strings.TrimSpace(name)
	weight := RoundToHalf(defaultWeight)
	ex := Exercise{
		ID:            uniqueID(Slugify(name), list),
		Name:          name,
		DefaultWeight: weight,
		Custom:        true,
	}
	if o == StorageUnavailable {
		log.Errorf("add exercise [%s]: exercise list unavailable, not persisting", ex.ID)
		return ex
	}

	list = append(list, ex)
	if s.saveExercises(ctx, list) != OK {
		return ex
	}
	s.setWeight(ctx, ex.ID, weight, "add_exercise")

	return ex
}

// DeleteExercise removes the exercise from the list. Its weight override and
// done flag stay in storage.
func (s *Store) DeleteExercise(ctx context.Context, id string) (deleted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	list, o := s.loadExercises(ctx)
	if o == StorageUnavailable {
		return false
	}

	kept := make([]Exercise, 0, len(list))
	for _, ex := range list {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	if len(kept) == len(list) {
		return false
	}

	return s.saveExercises(ctx, kept) == OK
}

func (s *Store) GetWeight(ctx context.Context, id string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return s.getWeight(ctx, id)
}

// SetWeight stores the rounded value and returns it. NaN and infinite values
// are ignored and the current weight is returned.
func (s *Store) SetWeight(ctx context.Context, id string, value float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if !isFinite(value) {
		s.note(s.keys.Weights, InvalidNumericInput)
		return s.getWeight(ctx, id)
	}
	return s.setWeight(ctx, id, value, "set")
}

// SetWeightText parses user input ("62,5", " 80 kg") and stores it. Empty
// or unparsable input keeps the current weight.
func (s *Store) SetWeightText(ctx context.Context, id, raw string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	text := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	v, ok := ParseWeight(text)
	if !ok || !isFinite(v) {
		s.note(s.keys.Weights, InvalidNumericInput)
		return s.getWeight(ctx, id)
	}
	return s.setWeight(ctx, id, v, "set")
}

func (s *Store) AddWeight(ctx context.Context, id string, amount float64) float64 {
	return s.adjustWeight(ctx, id, amount, "add")
}

func (s *Store) SubtractWeight(ctx context.Context, id string, amount float64) float64 {
	return s.adjustWeight(ctx, id, -amount, "subtract")
}

func (s *Store) adjustWeight(ctx context.Context, id string, delta float64, op string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	current := s.getWeight(ctx, id)
	if !isFinite(delta) || !isFinite(current+delta) {
		s.note(s.keys.Weights, InvalidNumericInput)
		return current
	}
	return s.setWeight(ctx, id, current+delta, op)
}

// SetAllWeights replaces the whole override mapping with one rounded value
// for every listed exercise and returns that value. Non-finite input changes
// nothing and returns 0.
func (s *Store) SetAllWeights(ctx context.Context, value float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if !isFinite(value) {
		s.note(s.keys.Weights, InvalidNumericInput)
		return 0
	}

	w := RoundToHalf(value)
	list, o := s.loadExercises(ctx)
	if o == StorageUnavailable {
		log.Errorf("set all weights: exercise list unavailable, not persisting")
		return w
	}

	weights := make(map[string]float64, len(list))
	for _, ex := range list {
		weights[ex.ID] = w
	}
	if s.writeJSON(ctx, s.keys.Weights, weights) == OK {
		s.countWeightUpdate("set_all")
	}
	return w
}

// ClearAll leaves an empty exercise list (not the catalog) and drops every
// weight override and done flag.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	s.saveExercises(ctx, []Exercise{})
	s.writeJSON(ctx, s.keys.CustomExercises, []Exercise{})
	s.deleteKeys(ctx, s.keys.Weights, s.keys.Done)
}

// ResetToDefaults removes every persisted key, so the next read sees the
// built-in catalog again.
func (s *Store) ResetToDefaults(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	if s.deleteKeys(ctx, s.keys.All()...) == OK && s.metrics != nil {
		s.metrics.GaugeExercises.Set(float64(len(defaultCatalog)))
	}
}

// --- internals, callers hold s.mu ---

func (s *Store) begin() {
	s.lastOutcome = OK
}

func (s *Store) note(key string, o Outcome) Outcome {
	if o > s.lastOutcome {
		s.lastOutcome = o
	}
	if o != OK && s.metrics != nil {
		s.metrics.CounterStoreOutcomes.With(prometheus.Labels{
			"key":     strings.TrimPrefix(key, s.namespace+"-"),
			"outcome": o.String(),
		}).Inc()
	}
	return o
}

func (s *Store) observe(op string, begin time.Time) {
	if s.metrics != nil {
		s.metrics.HistogramBackendDuration.WithLabelValues(op).Observe(time.Since(begin).Seconds())
	}
}

func (s *Store) countWeightUpdate(op string) {
	if s.metrics != nil {
		s.metrics.CounterWeightUpdates.WithLabelValues(op).Inc()
	}
}

func (s *Store) readRaw(ctx context.Context, key string) (string, Outcome) {
	defer s.observe("get", time.Now())

	raw, err := s.backend.Get(ctx, key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return "", s.note(key, Absent)
	case err != nil:
		log.Errorf("store read [%s]: %s", key, err)
		return "", s.note(key, StorageUnavailable)
	case raw == "":
		return "", s.note(key, Absent)
	}
	return raw, OK
}

func (s *Store) readJSON(ctx context.Context, key string, dst any) Outcome {
	raw, o := s.readRaw(ctx, key)
	if o != OK {
		return o
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Debugf("store read [%s]: malformed record: %s", key, err)
		return s.note(key, MalformedRecord)
	}
	return OK
}

func (s *Store) writeRaw(ctx context.Context, key, value string) Outcome {
	defer s.observe("set", time.Now())

	if err := s.backend.Set(ctx, key, value); err != nil {
		log.Errorf("store write [%s]: %s", key, err)
		return s.note(key, StorageUnavailable)
	}
	return OK
}

func (s *Store) writeJSON(ctx context.Context, key string, v any) Outcome {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("store write [%s]: marshal: %s", key, err)
		return s.note(key, MalformedRecord)
	}
	return s.writeRaw(ctx, key, string(raw))
}

func (s *Store) deleteKeys(ctx context.Context, keys ...string) Outcome {
	defer s.observe("delete", time.Now())

	if err := s.backend.Delete(ctx, keys...); err != nil {
		log.Errorf("store delete %v: %s", keys, err)
		return s.note("bulk-delete", StorageUnavailable)
	}
	return OK
}

// readExercises reads the canonical list; a JSON null counts as malformed.
func (s *Store) readExercises(ctx context.Context) ([]Exercise, Outcome) {
	var list []Exercise
	o := s.readJSON(ctx, s.keys.Exercises, &list)
	if o == OK && list == nil {
		o = s.note(s.keys.Exercises, MalformedRecord)
	}
	return list, o
}

// loadExercises returns the canonical list or, when that is not readable,
// the seed list. The returned outcome is the one of the canonical read.
func (s *Store) loadExercises(ctx context.Context) ([]Exercise, Outcome) {
	list, o := s.readExercises(ctx)
	if o == OK {
		return list, OK
	}
	return s.seedList(ctx), o
}

func (s *Store) seedList(ctx context.Context) []Exercise {
	var legacy []Exercise
	if s.readJSON(ctx, s.keys.CustomExercises, &legacy) != OK {
		legacy = nil
	}
	return append(DefaultExercises(), legacy...)
}

func (s *Store) saveExercises(ctx context.Context, list []Exercise) Outcome {
	o := s.writeJSON(ctx, s.keys.Exercises, list)
	if o == OK && s.metrics != nil {
		s.metrics.GaugeExercises.Set(float64(len(list)))
	}
	return o
}

func (s *Store) loadWeights(ctx context.Context) (map[string]float64, Outcome) {
	var raw map[string]*float64
	o := s.readJSON(ctx, s.keys.Weights, &raw)
	weights := make(map[string]float64, len(raw))
	if o != OK {
		return weights, o
	}
	for id, w := range raw {
		if w != nil {
			weights[id] = *w
		}
	}
	return weights, OK
}

func (s *Store) getWeight(ctx context.Context, id string) float64 {
	list, _ := s.loadExercises(ctx)
	ex, ok := findExercise(list, id)
	if !ok {
		return 0
	}

	weights, _ := s.loadWeights(ctx)
	if w, ok := weights[id]; ok {
		return RoundToHalf(w)
	}
	return RoundToHalf(ex.DefaultWeight)
}

func (s *Store) setWeight(ctx context.Context, id string, value float64, op string) float64 {
	w := RoundToHalf(value)

	weights, o := s.loadWeights(ctx)
	if o == StorageUnavailable {
		log.Errorf("set weight [%s]: weights unavailable, not persisting", id)
		return w
	}

	weights[id] = w
	if s.writeJSON(ctx, s.keys.Weights, weights) == OK {
		s.countWeightUpdate(op)
	}
	return w
}
