package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the exercise store as tools.
// It is served over stdio by cmd/weights_mcp and mounted at /mcp by the
// HTTP service.
func NewServer(store weightsStore, version string) *mcp.Server {
	h := NewHandler(store)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymweights",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns every exercise in the list with its current weight (kg), formatted weight and done flag.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Adds a custom exercise. The id is derived from the name; a numeric suffix is added when it is taken. Args: name; optional: default_weight (kg).",
	}, h.AddExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Removes an exercise from the list by id.",
	}, h.DeleteExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weight",
		Description: "Returns the current weight (kg) of an exercise.",
	}, h.GetWeightTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_weight",
		Description: "Sets the weight of an exercise. Weights are rounded to the nearest 0.5 kg and never go below 0. Pass value (number) or text (e.g. \"62,5\").",
	}, h.SetWeightTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_weight",
		Description: "Adds amount kg to the current weight of an exercise.",
	}, h.AddWeightTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "subtract_weight",
		Description: "Subtracts amount kg from the current weight of an exercise (floor 0).",
	}, h.SubtractWeightTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_all_weights",
		Description: "Sets every exercise to the same weight, replacing all per-exercise weights.",
	}, h.SetAllWeightsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "toggle_done",
		Description: "Flips the done flag of an exercise and returns the new value.",
	}, h.ToggleDoneTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_stats",
		Description: "Returns the number of exercises and how many of them are done.",
	}, h.GetStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "format_weight",
		Description: "Rounds a number to the nearest 0.5 and formats it the way the app displays weights (\"60\", \"62.5\").",
	}, h.FormatWeightTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
