package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymweights/internal/weights"
)

// weightsStore is the part of weights.Store the tools use.
type weightsStore interface {
	Export(ctx context.Context) weights.Snapshot
	Exercise(ctx context.Context, id string) (weights.Exercise, error)
	AddExercise(ctx context.Context, name string, defaultWeight float64) weights.Exercise
	DeleteExercise(ctx context.Context, id string) bool
	GetWeight(ctx context.Context, id string) float64
	SetWeight(ctx context.Context, id string, value float64) float64
	SetWeightText(ctx context.Context, id, raw string) float64
	AddWeight(ctx context.Context, id string, amount float64) float64
	SubtractWeight(ctx context.Context, id string, amount float64) float64
	SetAllWeights(ctx context.Context, value float64) float64
	ToggleDone(ctx context.Context, id string) bool
	Stats(ctx context.Context) weights.Stats
	LastOutcome() weights.Outcome
}

// Handler turns MCP tool calls into store operations.
type Handler struct {
	store weightsStore
}

func NewHandler(store weightsStore) *Handler {
	return &Handler{
		store: store,
	}
}

type NoInput struct{}

type ExerciseIDInput struct {
	ID string `json:"id" jsonschema:"Exercise id (e.g. bench-press, squat)"`
}

type AddExerciseInput struct {
	Name          string  `json:"name" jsonschema:"Display name of the new exercise"`
	DefaultWeight float64 `json:"default_weight,omitempty" jsonschema:"Starting weight in kg, rounded to 0.5"`
}

type SetWeightInput struct {
	ID    string   `json:"id" jsonschema:"Exercise id"`
	Value *float64 `json:"value,omitempty" jsonschema:"New weight in kg"`
	Text  string   `json:"text,omitempty" jsonschema:"New weight as typed by a user, e.g. 62,5"`
}

type AmountInput struct {
	ID     string  `json:"id" jsonschema:"Exercise id"`
	Amount float64 `json:"amount" jsonschema:"Amount in kg"`
}

type SetAllWeightsInput struct {
	Value float64 `json:"value" jsonschema:"Weight in kg applied to every exercise"`
}

type FormatWeightInput struct {
	Value string `json:"value" jsonschema:"Number to round and format"`
}

type exerciseWeight struct {
	weights.Exercise
	Weight          float64 `json:"weight"`
	FormattedWeight string  `json:"formattedWeight"`
	Done            bool    `json:"done"`
}

type weightResult struct {
	ID              string  `json:"id"`
	Weight          float64 `json:"weight"`
	FormattedWeight string  `json:"formattedWeight"`
	Outcome         string  `json:"outcome"`
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		snap := h.store.Export(ctx)
		list := make([]exerciseWeight, 0, len(snap.Exercises))
		for _, ex := range snap.Exercises {
			w := weights.RoundToHalf(ex.DefaultWeight)
			if override, ok := snap.Weights[ex.ID]; ok {
				w = weights.RoundToHalf(override)
			}
			list = append(list, exerciseWeight{
				Exercise:        ex,
				Weight:          w,
				FormattedWeight: weights.FormatWeight(w),
				Done:            snap.Done[ex.ID],
			})
		}
		return jsonResult(list)
	}
}

// AddExerciseTool returns the MCP tool handler for add_exercise.
func (h *Handler) AddExerciseTool() func(context.Context, *mcp.CallToolRequest, AddExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AddExerciseInput) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(in.Name) == "" {
			return errorResult("Exercise name is required")
		}
		return jsonResult(h.store.AddExercise(ctx, in.Name, in.DefaultWeight))
	}
}

// DeleteExerciseTool returns the MCP tool handler for delete_exercise.
func (h *Handler) DeleteExerciseTool() func(context.Context, *mcp.CallToolRequest, ExerciseIDInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseIDInput) (*mcp.CallToolResult, any, error) {
		if !h.store.DeleteExercise(ctx, in.ID) {
			return errorResult("Unknown exercise: " + in.ID)
		}
		return textResult("Deleted " + in.ID)
	}
}

// GetWeightTool returns the MCP tool handler for get_weight.
func (h *Handler) GetWeightTool() func(context.Context, *mcp.CallToolRequest, ExerciseIDInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseIDInput) (*mcp.CallToolResult, any, error) {
		if res, ok := h.checkExists(ctx, in.ID); !ok {
			return res, nil, nil
		}
		return h.weightResult(in.ID, h.store.GetWeight(ctx, in.ID))
	}
}

// SetWeightTool returns the MCP tool handler for set_weight.
func (h *Handler) SetWeightTool() func(context.Context, *mcp.CallToolRequest, SetWeightInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetWeightInput) (*mcp.CallToolResult, any, error) {
		if res, ok := h.checkExists(ctx, in.ID); !ok {
			return res, nil, nil
		}
		switch {
		case in.Value != nil:
			return h.weightResult(in.ID, h.store.SetWeight(ctx, in.ID, *in.Value))
		case in.Text != "":
			return h.weightResult(in.ID, h.store.SetWeightText(ctx, in.ID, in.Text))
		}
		return errorResult("Either value or text is required")
	}
}

// AddWeightTool returns the MCP tool handler for add_weight.
func (h *Handler) AddWeightTool() func(context.Context, *mcp.CallToolRequest, AmountInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AmountInput) (*mcp.CallToolResult, any, error) {
		if res, ok := h.checkExists(ctx, in.ID); !ok {
			return res, nil, nil
		}
		return h.weightResult(in.ID, h.store.AddWeight(ctx, in.ID, in.Amount))
	}
}

// SubtractWeightTool returns the MCP tool handler for subtract_weight.
func (h *Handler) SubtractWeightTool() func(context.Context, *mcp.CallToolRequest, AmountInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AmountInput) (*mcp.CallToolResult, any, error) {
		if res, ok := h.checkExists(ctx, in.ID); !ok {
			return res, nil, nil
		}
		return h.weightResult(in.ID, h.store.SubtractWeight(ctx, in.ID, in.Amount))
	}
}

// SetAllWeightsTool returns the MCP tool handler for set_all_weights.
func (h *Handler) SetAllWeightsTool() func(context.Context, *mcp.CallToolRequest, SetAllWeightsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SetAllWeightsInput) (*mcp.CallToolResult, any, error) {
		w := h.store.SetAllWeights(ctx, in.Value)
		return textResult("All exercises set to " + weights.FormatWeight(w) + " kg")
	}
}

// ToggleDoneTool returns the MCP tool handler for toggle_done.
func (h *Handler) ToggleDoneTool() func(context.Context, *mcp.CallToolRequest, ExerciseIDInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseIDInput) (*mcp.CallToolResult, any, error) {
		if res, ok := h.checkExists(ctx, in.ID); !ok {
			return res, nil, nil
		}
		return jsonResult(map[string]any{"id": in.ID, "done": h.store.ToggleDone(ctx, in.ID)})
	}
}

// GetStatsTool returns the MCP tool handler for get_stats.
func (h *Handler) GetStatsTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.store.Stats(ctx))
	}
}

// FormatWeightTool returns the MCP tool handler for format_weight.
func (h *Handler) FormatWeightTool() func(context.Context, *mcp.CallToolRequest, FormatWeightInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in FormatWeightInput) (*mcp.CallToolResult, any, error) {
		return textResult(weights.FormatText(in.Value))
	}
}

func (h *Handler) checkExists(ctx context.Context, id string) (*mcp.CallToolResult, bool) {
	if _, err := h.store.Exercise(ctx, id); err != nil {
		msg := "Error looking up exercise: " + err.Error()
		if errors.Is(err, weights.ErrUnknownExercise) {
			msg = "Unknown exercise: " + id
		}
		res, _, _ := errorResult(msg)
		return res, false
	}
	return nil, true
}

func (h *Handler) weightResult(id string, w float64) (*mcp.CallToolResult, any, error) {
	return jsonResult(weightResult{
		ID:              id,
		Weight:          w,
		FormattedWeight: weights.FormatWeight(w),
		Outcome:         h.store.LastOutcome().String(),
	})
}

func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
