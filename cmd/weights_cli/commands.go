package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/2beens/gymweights/internal/weights"
)

const usage = `  list                         exercises with current weight and done flag
  get <id>                     current weight
  set <id> <value>             set weight ("62,5" accepted)
  add <id> <amount>            add to weight
  sub <id> <amount>            subtract from weight (floor 0)
  set-all <value>              same weight for every exercise
  new <name> [default-weight]  add a custom exercise
  delete <id>                  remove an exercise
  done <id> [true|false]       toggle or set the done flag
  stats                        exercise and done counts
  account [name]               show or set the account name
  nutrition [calories goal]    show or set nutrition values
  format <value>               round to 0.5 and format
  export [-format f] [-o path] write the whole state (json|yaml)
  import [-format f] <path>    replace the whole state from a file ("-" for stdin)
  migrate                      seed the exercise list if it is missing
  clear                        empty the list, weights and done flags
  reset                        back to the built-in catalog
`

var errUsage = errors.New("invalid usage")

type cliStore interface {
	Migrate(ctx context.Context) bool
	GetAllExercises(ctx context.Context) []weights.Exercise
	Exercise(ctx context.Context, id string) (weights.Exercise, error)
	AddExercise(ctx context.Context, name string, defaultWeight float64) weights.Exercise
	DeleteExercise(ctx context.Context, id string) bool
	GetWeight(ctx context.Context, id string) float64
	SetWeightText(ctx context.Context, id, raw string) float64
	AddWeight(ctx context.Context, id string, amount float64) float64
	SubtractWeight(ctx context.Context, id string, amount float64) float64
	SetAllWeights(ctx context.Context, value float64) float64
	DoneFlags(ctx context.Context) map[string]bool
	SetDone(ctx context.Context, id string, done bool) bool
	ToggleDone(ctx context.Context, id string) bool
	Stats(ctx context.Context) weights.Stats
	AccountName(ctx context.Context) string
	SetAccountName(ctx context.Context, name string) string
	Nutrition(ctx context.Context) weights.Nutrition
	SetNutritionCalories(ctx context.Context, calories int) int
	SetNutritionGoal(ctx context.Context, goal int) int
	ClearAll(ctx context.Context)
	ResetToDefaults(ctx context.Context)
	Export(ctx context.Context) weights.Snapshot
	Import(ctx context.Context, snap weights.Snapshot) error
	LastOutcome() weights.Outcome
}

func run(ctx context.Context, store cliStore, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, args := args[0], args[1:]

	// same startup step as the service; "migrate" reports it explicitly
	if cmd != "migrate" {
		store.Migrate(ctx)
	}

	switch cmd {
	case "list":
		return list(ctx, store, stdout)
	case "get":
		id, err := existing(ctx, store, args, 1)
		if err != nil {
			return err
		}
		return printWeight(stdout, store, id, store.GetWeight(ctx, id))
	case "set":
		id, err := existing(ctx, store, args, 2)
		if err != nil {
			return err
		}
		return printWeight(stdout, store, id, store.SetWeightText(ctx, id, args[1]))
	case "add", "sub":
		id, err := existing(ctx, store, args, 2)
		if err != nil {
			return err
		}
		amount, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		if cmd == "add" {
			return printWeight(stdout, store, id, store.AddWeight(ctx, id, amount))
		}
		return printWeight(stdout, store, id, store.SubtractWeight(ctx, id, amount))
	case "set-all":
		if len(args) != 1 {
			return fmt.Errorf("%w: set-all <value>", errUsage)
		}
		value, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		w := store.SetAllWeights(ctx, value)
		_, err = fmt.Fprintf(stdout, "all exercises: %s kg\n", weights.FormatWeight(w))
		return err
	case "new":
		return newExercise(ctx, store, args, stdout)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("%w: delete <id>", errUsage)
		}
		if !store.DeleteExercise(ctx, args[0]) {
			return fmt.Errorf("%w: %s", weights.ErrUnknownExercise, args[0])
		}
		_, err := fmt.Fprintf(stdout, "deleted %s\n", args[0])
		return err
	case "done":
		return done(ctx, store, args, stdout)
	case "stats":
		stats := store.Stats(ctx)
		_, err := fmt.Fprintf(stdout, "%d/%d done\n", stats.DoneCount, stats.ExerciseCount)
		return err
	case "account":
		name := store.AccountName(ctx)
		if len(args) > 0 {
			name = store.SetAccountName(ctx, strings.Join(args, " "))
		}
		_, err := fmt.Fprintln(stdout, name)
		return err
	case "nutrition":
		return nutrition(ctx, store, args, stdout)
	case "format":
		if len(args) != 1 {
			return fmt.Errorf("%w: format <value>", errUsage)
		}
		_, err := fmt.Fprintln(stdout, weights.FormatText(args[0]))
		return err
	case "export":
		return export(ctx, store, args, stdout)
	case "import":
		return importSnapshot(ctx, store, args, stdin, stdout)
	case "migrate":
		seeded := store.Migrate(ctx)
		_, err := fmt.Fprintf(stdout, "seeded: %t (%s)\n", seeded, store.LastOutcome())
		return err
	case "clear":
		store.ClearAll(ctx)
		_, err := fmt.Fprintln(stdout, "cleared")
		return err
	case "reset":
		store.ResetToDefaults(ctx)
		_, err := fmt.Fprintln(stdout, "reset to defaults")
		return err
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func list(ctx context.Context, store cliStore, stdout io.Writer) error {
	doneFlags := store.DoneFlags(ctx)
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKG\tDONE")
	for _, ex := range store.GetAllExercises(ctx) {
		mark := ""
		if doneFlags[ex.ID] {
			mark = "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ex.ID, ex.Name, weights.FormatWeight(store.GetWeight(ctx, ex.ID)), mark)
	}
	return tw.Flush()
}

func newExercise(ctx context.Context, store cliStore, args []string, stdout io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: new <name> [default-weight]", errUsage)
	}
	defaultWeight := 0.0
	if len(args) == 2 {
		var err error
		if defaultWeight, err = parseFloat(args[1]); err != nil {
			return err
		}
	}
	ex := store.AddExercise(ctx, args[0], defaultWeight)
	_, err := fmt.Fprintf(stdout, "added %s (%s kg)\n", ex.ID, weights.FormatWeight(ex.DefaultWeight))
	return err
}

func done(ctx context.Context, store cliStore, args []string, stdout io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: done <id> [true|false]", errUsage)
	}
	id, err := existing(ctx, store, args[:1], 1)
	if err != nil {
		return err
	}

	var isDone bool
	if len(args) == 2 {
		v, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("%w: done flag %q", errUsage, args[1])
		}
		isDone = store.SetDone(ctx, id, v)
	} else {
		isDone = store.ToggleDone(ctx, id)
	}
	_, err = fmt.Fprintf(stdout, "%s done: %t\n", id, isDone)
	return err
}

func nutrition(ctx context.Context, store cliStore, args []string, stdout io.Writer) error {
	switch len(args) {
	case 0:
	case 2:
		calories, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: calories %q", errUsage, args[0])
		}
		goal, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: goal %q", errUsage, args[1])
		}
		store.SetNutritionCalories(ctx, calories)
		store.SetNutritionGoal(ctx, goal)
	default:
		return fmt.Errorf("%w: nutrition [calories goal]", errUsage)
	}
	n := store.Nutrition(ctx)
	_, err := fmt.Fprintf(stdout, "%d / %d kcal\n", n.Calories, n.Goal)
	return err
}

func export(ctx context.Context, store cliStore, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	formatName := fs.String("format", "", "json or yaml (default: from -o extension, else json)")
	outPath := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	format, err := pickFormat(*formatName, *outPath)
	if err != nil {
		return err
	}

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	return weights.EncodeSnapshot(out, store.Export(ctx), format)
}

func importSnapshot(ctx context.Context, store cliStore, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	formatName := fs.String("format", "", "json or yaml (default: from file extension, else json)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: import [-format f] <path>", errUsage)
	}
	path := fs.Arg(0)

	format, err := pickFormat(*formatName, path)
	if err != nil {
		return err
	}

	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}

	snap, err := weights.DecodeSnapshot(in, format)
	if err != nil {
		return err
	}
	if err := store.Import(ctx, snap); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "imported %d exercises\n", len(snap.Exercises))
	return err
}

func pickFormat(name, path string) (weights.Format, error) {
	if name != "" {
		return weights.ParseFormat(name)
	}
	if path != "" && path != "-" {
		if f, err := weights.ParseFormat(path); err == nil {
			return f, nil
		}
	}
	return weights.FormatJSON, nil
}

func existing(ctx context.Context, store cliStore, args []string, n int) (string, error) {
	if len(args) != n {
		return "", fmt.Errorf("%w: expected %d argument(s)", errUsage, n)
	}
	if _, err := store.Exercise(ctx, args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}

func parseFloat(s string) (float64, error) {
	v, ok := weights.ParseWeight(strings.Replace(strings.TrimSpace(s), ",", ".", 1))
	if !ok {
		return 0, fmt.Errorf("%w: not a number %q", errUsage, s)
	}
	return v, nil
}

func printWeight(stdout io.Writer, store cliStore, id string, w float64) error {
	_, err := fmt.Fprintf(stdout, "%s: %s kg\n", id, weights.FormatWeight(w))
	if o := store.LastOutcome(); o > weights.Absent {
		fmt.Fprintf(stdout, "warning: %s\n", o)
	}
	return err
}
