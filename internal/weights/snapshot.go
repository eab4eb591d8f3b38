package weights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const snapshotVersion = 1

var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrUnknownFormat   = errors.New("unknown snapshot format")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name or a file name with a known extension.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimPrefix(ext, ".")
	}
	switch name {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Snapshot is the whole persisted state, used for export and import.
type Snapshot struct {
	Version           int                `json:"version" yaml:"version"`
	Exercises         []Exercise         `json:"exercises" yaml:"exercises"`
	Weights           map[string]float64 `json:"weights" yaml:"weights"`
	Done              map[string]bool    `json:"done" yaml:"done"`
	AccountName       string             `json:"accountName" yaml:"accountName"`
	NutritionCalories int                `json:"nutritionCalories" yaml:"nutritionCalories"`
	NutritionGoal     int                `json:"nutritionGoal" yaml:"nutritionGoal"`
}

func (s *Store) Export(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	list, _ := s.loadExercises(ctx)
	weights, _ := s.loadWeights(ctx)
	done, _ := s.loadDone(ctx)

	return Snapshot{
		Version:           snapshotVersion,
		Exercises:         list,
		Weights:           weights,
		Done:              done,
		AccountName:       s.accountName(ctx),
		NutritionCalories: s.readInt(ctx, s.keys.NutritionCal, DefaultNutritionCalories),
		NutritionGoal:     s.readInt(ctx, s.keys.NutritionGoal, DefaultNutritionGoal),
	}
}

// Import validates snap and replaces the persisted state with it. The legacy
// custom exercise list is removed. Unlike the other operations, Import
// reports write failures.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	list := snap.Exercises
	if list == nil {
		list = []Exercise{}
	}
	weights := make(map[string]float64, len(snap.Weights))
	for id, w := range snap.Weights {
		weights[id] = RoundToHalf(w)
	}
	done := snap.Done
	if done == nil {
		done = map[string]bool{}
	}

	var err error
	record := func(key string, o Outcome) {
		if o != OK {
			err = multierr.Append(err, fmt.Errorf("import [%s]: %s", key, o))
		}
	}
	record(s.keys.Exercises, s.saveExercises(ctx, list))
	record(s.keys.Weights, s.writeJSON(ctx, s.keys.Weights, weights))
	record(s.keys.Done, s.writeJSON(ctx, s.keys.Done, done))
	record(s.keys.AccountName, s.writeRaw(ctx, s.keys.AccountName, normalizeAccountName(snap.AccountName)))
	record(s.keys.NutritionCal, s.writeRaw(ctx, s.keys.NutritionCal, strconv.Itoa(snap.NutritionCalories)))
	record(s.keys.NutritionGoal, s.writeRaw(ctx, s.keys.NutritionGoal, strconv.Itoa(snap.NutritionGoal)))
	record(s.keys.CustomExercises, s.deleteKeys(ctx, s.keys.CustomExercises))

	return err
}

// Validate checks ids are present and unique and all numbers are finite
// and non-negative.
func (snap Snapshot) Validate() error {
	if snap.Version > snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snap.Version)
	}

	seen := make(map[string]struct{}, len(snap.Exercises))
	for i, ex := range snap.Exercises {
		if ex.ID == "" {
			return fmt.Errorf("%w: exercise #%d has no id", ErrInvalidSnapshot, i)
		}
		if _, ok := seen[ex.ID]; ok {
			return fmt.Errorf("%w: duplicate exercise id %q", ErrInvalidSnapshot, ex.ID)
		}
		seen[ex.ID] = struct{}{}
		if !isFinite(ex.DefaultWeight) || ex.DefaultWeight < 0 {
			return fmt.Errorf("%w: exercise %q has invalid default weight", ErrInvalidSnapshot, ex.ID)
		}
	}
	for id, w := range snap.Weights {
		if !isFinite(w) {
			return fmt.Errorf("%w: weight of %q is not a number", ErrInvalidSnapshot, id)
		}
	}
	return nil
}

func EncodeSnapshot(w io.Writer, snap Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func DecodeSnapshot(r io.Reader, format Format) (Snapshot, error) {
	var snap Snapshot
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return snap, nil
}
