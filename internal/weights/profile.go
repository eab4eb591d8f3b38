package weights

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

var intPrefixRegex = regexp.MustCompile(`^[+-]?\d+`)

type Nutrition struct {
	Calories int `json:"calories"`
	Goal     int `json:"goal"`
}

func (s *Store) AccountName(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return s.accountName(ctx)
}

// SetAccountName trims the name and cuts it to MaxAccountNameLen runes. An
// empty name stores the default. Returns what was stored.
func (s *Store) SetAccountName(ctx context.Context, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	name = normalizeAccountName(name)
	s.writeRaw(ctx, s.keys.AccountName, name)
	return name
}

func (s *Store) Nutrition(ctx context.Context) Nutrition {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return Nutrition{
		Calories: s.readInt(ctx, s.keys.NutritionCal, DefaultNutritionCalories),
		Goal:     s.readInt(ctx, s.keys.NutritionGoal, DefaultNutritionGoal),
	}
}

func (s *Store) NutritionCalories(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return s.readInt(ctx, s.keys.NutritionCal, DefaultNutritionCalories)
}

func (s *Store) NutritionGoal(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	return s.readInt(ctx, s.keys.NutritionGoal, DefaultNutritionGoal)
}

func (s *Store) SetNutritionCalories(ctx context.Context, calories int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	s.writeRaw(ctx, s.keys.NutritionCal, strconv.Itoa(calories))
	return calories
}

func (s *Store) SetNutritionGoal(ctx context.Context, goal int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begin()

	s.writeRaw(ctx, s.keys.NutritionGoal, strconv.Itoa(goal))
	return goal
}

func (s *Store) accountName(ctx context.Context) string {
	raw, o := s.readRaw(ctx, s.keys.AccountName)
	if o != OK {
		return DefaultAccountName
	}
	return raw
}

func normalizeAccountName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxAccountNameLen {
		name = string(r[:MaxAccountNameLen])
	}
	if name == "" {
		return DefaultAccountName
	}
	return name
}

// readInt parses the leading integer of the stored value ("1800kcal" ->
// 1800). Anything else falls back to def.
func (s *Store) readInt(ctx context.Context, key string, def int) int {
	raw, o := s.readRaw(ctx, key)
	if o != OK {
		return def
	}

	m := intPrefixRegex.FindString(strings.TrimSpace(raw))
	n, err := strconv.Atoi(m)
	if err != nil {
		s.note(key, MalformedRecord)
		return def
	}
	return n
}
