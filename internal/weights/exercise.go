package weights

import "errors"

const (
	DefaultNamespace = "gym-weight-tracker"

	DefaultAccountName       = "Athlete"
	MaxAccountNameLen        = 30
	DefaultNutritionCalories = 0
	DefaultNutritionGoal     = 2000
)

var ErrUnknownExercise = errors.New("unknown exercise")

// Increments are the quick-adjust presets offered next to each exercise.
var Increments = []float64{1.25, 2.5, 5, 10, -2.5}

type Exercise struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	DefaultWeight float64 `json:"defaultWeight" yaml:"defaultWeight"`
	Custom        bool    `json:"custom" yaml:"custom"`
}

var defaultCatalog = []Exercise{
	{ID: "bench-press", Name: "Bench Press", DefaultWeight: 60},
	{ID: "squat", Name: "Barbell Squat", DefaultWeight: 80},
	{ID: "deadlift", Name: "Deadlift", DefaultWeight: 100},
	{ID: "overhead-press", Name: "Overhead Press", DefaultWeight: 40},
	{ID: "barbell-row", Name: "Barbell Row", DefaultWeight: 60},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", DefaultWeight: 70},
	{ID: "incline-bench", Name: "Incline Bench Press", DefaultWeight: 50},
	{ID: "front-squat", Name: "Front Squat", DefaultWeight: 60},
	{ID: "lat-pulldown", Name: "Lat Pulldown", DefaultWeight: 45},
	{ID: "leg-press", Name: "Leg Press", DefaultWeight: 120},
	{ID: "dumbbell-row", Name: "Dumbbell Row", DefaultWeight: 25},
	{ID: "dumbbell-press", Name: "Dumbbell Shoulder Press", DefaultWeight: 20},
	{ID: "goblet-squat", Name: "Goblet Squat", DefaultWeight: 20},
	{ID: "hip-thrust", Name: "Hip Thrust", DefaultWeight: 80},
	{ID: "cable-fly", Name: "Cable Fly", DefaultWeight: 15},
	{ID: "tricep-pushdown", Name: "Tricep Pushdown", DefaultWeight: 25},
	{ID: "bicep-curl", Name: "Barbell Bicep Curl", DefaultWeight: 20},
	{ID: "leg-curl", Name: "Leg Curl", DefaultWeight: 35},
	{ID: "calf-raise", Name: "Calf Raise", DefaultWeight: 80},
	{ID: "face-pull", Name: "Face Pull", DefaultWeight: 25},
}

// DefaultExercises returns a fresh copy of the built-in catalog.
func DefaultExercises() []Exercise {
	list := make([]Exercise, len(defaultCatalog))
	copy(list, defaultCatalog)
	return list
}

// Keys holds the full storage key for every persisted record.
type Keys struct {
	Exercises       string
	CustomExercises string // legacy, only read for migration
	Weights         string
	Done            string
	AccountName     string
	NutritionCal    string
	NutritionGoal   string
}

func NewKeys(namespace string) Keys {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return Keys{
		Exercises:       namespace + "-exercises",
		CustomExercises: namespace + "-custom-exercises",
		Weights:         namespace + "-weights",
		Done:            namespace + "-done",
		AccountName:     namespace + "-account-name",
		NutritionCal:    namespace + "-nutrition-cal",
		NutritionGoal:   namespace + "-nutrition-goal",
	}
}

func (k Keys) All() []string {
	return []string{
		k.Exercises,
		k.Weights,
		k.Done,
		k.CustomExercises,
		k.AccountName,
		k.NutritionCal,
		k.NutritionGoal,
	}
}

func findExercise(list []Exercise, id string) (Exercise, bool) {
	for _, ex := range list {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
