package weights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweights/internal/telemetry/tracing"
	"github.com/2beens/gymweights/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weights_test

type exerciseStore interface {
	GetAllExercises(ctx context.Context) []Exercise
	Exercise(ctx context.Context, id string) (Exercise, error)
	AddExercise(ctx context.Context, name string, defaultWeight float64) Exercise
	DeleteExercise(ctx context.Context, id string) bool
	GetWeight(ctx context.Context, id string) float64
	SetWeight(ctx context.Context, id string, value float64) float64
	SetWeightText(ctx context.Context, id, raw string) float64
	AddWeight(ctx context.Context, id string, amount float64) float64
	SubtractWeight(ctx context.Context, id string, amount float64) float64
	SetAllWeights(ctx context.Context, value float64) float64
	SetDone(ctx context.Context, id string, done bool) bool
	ToggleDone(ctx context.Context, id string) bool
	Stats(ctx context.Context) Stats
	AccountName(ctx context.Context) string
	SetAccountName(ctx context.Context, name string) string
	Nutrition(ctx context.Context) Nutrition
	SetNutritionCalories(ctx context.Context, calories int) int
	SetNutritionGoal(ctx context.Context, goal int) int
	ClearAll(ctx context.Context)
	ResetToDefaults(ctx context.Context)
	Export(ctx context.Context) Snapshot
	Import(ctx context.Context, snap Snapshot) error
}

type ExerciseView struct {
	Exercise
	Weight          float64 `json:"weight"`
	FormattedWeight string  `json:"formattedWeight"`
	Done            bool    `json:"done"`
}

type ListResponse struct {
	Exercises  []ExerciseView `json:"exercises"`
	Increments []float64      `json:"increments"`
	Total      int            `json:"total"`
}

type WeightResponse struct {
	ID              string  `json:"id"`
	Weight          float64 `json:"weight"`
	FormattedWeight string  `json:"formattedWeight"`
}

type DoneResponse struct {
	ID   string `json:"id"`
	Done bool   `json:"done"`
}

type AccountResponse struct {
	Name string `json:"name"`
}

type FormatResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type addExerciseRequest struct {
	Name          string   `json:"name"`
	DefaultWeight *float64 `json:"defaultWeight"`
}

type setWeightRequest struct {
	Value *float64 `json:"value"`
	Text  *string  `json:"text"`
}

type amountRequest struct {
	Amount *float64 `json:"amount"`
}

type doneRequest struct {
	Done *bool `json:"done"`
}

type nutritionRequest struct {
	Calories *int `json:"calories"`
	Goal     *int `json:"goal"`
}

type Handler struct {
	store exerciseStore
}

func NewHandler(store exerciseStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-exercise")
	router.HandleFunc("/exercises/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	router.HandleFunc("/exercises/{id}/weight", handler.HandleGetWeight).Methods("GET", "OPTIONS").Name("get-weight")
	router.HandleFunc("/exercises/{id}/weight", handler.HandleSetWeight).Methods("PUT", "OPTIONS").Name("set-weight")
	router.HandleFunc("/exercises/{id}/weight/add", handler.HandleAddWeight).Methods("POST", "OPTIONS").Name("add-weight")
	router.HandleFunc("/exercises/{id}/weight/subtract", handler.HandleSubtractWeight).Methods("POST", "OPTIONS").Name("subtract-weight")
	router.HandleFunc("/exercises/{id}/done", handler.HandleSetDone).Methods("PUT", "OPTIONS").Name("set-done")
	router.HandleFunc("/exercises/{id}/done/toggle", handler.HandleToggleDone).Methods("POST", "OPTIONS").Name("toggle-done")
	router.HandleFunc("/weights", handler.HandleSetAllWeights).Methods("PUT", "OPTIONS").Name("set-all-weights")
	router.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	router.HandleFunc("/account/name", handler.HandleGetAccountName).Methods("GET", "OPTIONS").Name("get-account-name")
	router.HandleFunc("/account/name", handler.HandleSetAccountName).Methods("PUT", "OPTIONS").Name("set-account-name")
	router.HandleFunc("/nutrition", handler.HandleGetNutrition).Methods("GET", "OPTIONS").Name("get-nutrition")
	router.HandleFunc("/nutrition", handler.HandleSetNutrition).Methods("PUT", "OPTIONS").Name("set-nutrition")
	router.HandleFunc("/settings/clear", handler.HandleClearAll).Methods("POST", "OPTIONS").Name("clear-all")
	router.HandleFunc("/settings/reset", handler.HandleReset).Methods("POST", "OPTIONS").Name("reset-defaults")
	router.HandleFunc("/format", handler.HandleFormat).Methods("GET", "OPTIONS").Name("format-weight")
	router.HandleFunc("/snapshot", handler.HandleExport).Methods("GET", "OPTIONS").Name("export-snapshot")
	router.HandleFunc("/snapshot", handler.HandleImport).Methods("PUT", "OPTIONS").Name("import-snapshot")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.list")
	defer span.End()

	snap := handler.store.Export(ctx)
	views := make([]ExerciseView, 0, len(snap.Exercises))
	for _, ex := range snap.Exercises {
		weight := RoundToHalf(ex.DefaultWeight)
		if w, ok := snap.Weights[ex.ID]; ok {
			weight = RoundToHalf(w)
		}
		views = append(views, ExerciseView{
			Exercise:        ex,
			Weight:          weight,
			FormattedWeight: FormatWeight(weight),
			Done:            snap.Done[ex.ID],
		})
	}

	pkg.WriteJSON(w, ListResponse{
		Exercises:  views,
		Increments: Increments,
		Total:      len(views),
	}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.add")
	defer span.End()

	var req addExerciseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	defaultWeight := 0.0
	if req.DefaultWeight != nil {
		defaultWeight = *req.DefaultWeight
	}

	ex := handler.store.AddExercise(ctx, req.Name, defaultWeight)
	log.Debugf("new exercise added: %s [%s]", ex.ID, ex.Name)

	pkg.WriteJSON(w, ex, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if !handler.store.DeleteExercise(ctx, id) {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, map[string]string{"deletedId": id}, http.StatusOK)
}

func (handler *Handler) HandleGetWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.get")
	defer span.End()

	id, ok := handler.existingID(ctx, w, r)
	if !ok {
		return
	}
	writeWeight(w, id, handler.store.GetWeight(ctx, id))
}

func (handler *Handler) HandleSetWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.set")
	defer span.End()

	id, ok := handler.existingID(ctx, w, r)
	if !ok {
		return
	}

	var req setWeightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var weight float64
	switch {
	case req.Value != nil:
		weight = handler.store.SetWeight(ctx, id, *req.Value)
	case req.Text != nil:
		weight = handler.store.SetWeightText(ctx, id, *req.Text)
	default:
		http.Error(w, "error, value or text required", http.StatusBadRequest)
		return
	}

	writeWeight(w, id, weight)
}

func (handler *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	handler.handleAdjustWeight(w, r, "handler.weights.add_weight", handler.store.AddWeight)
}

func (handler *Handler) HandleSubtractWeight(w http.ResponseWriter, r *http.Request) {
	handler.handleAdjustWeight(w, r, "handler.weights.subtract_weight", handler.store.SubtractWeight)
}

func (handler *Handler) handleAdjustWeight(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	adjust func(ctx context.Context, id string, amount float64) float64,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	id, ok := handler.existingID(ctx, w, r)
	if !ok {
		return
	}

	var req amountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Amount == nil {
		http.Error(w, "error, amount required", http.StatusBadRequest)
		return
	}

	writeWeight(w, id, adjust(ctx, id, *req.Amount))
}

func (handler *Handler) HandleSetDone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.set_done")
	defer span.End()

	id, ok := handler.existingID(ctx, w, r)
	if !ok {
		return
	}

	var req doneRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Done == nil {
		http.Error(w, "error, done required", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, DoneResponse{ID: id, Done: handler.store.SetDone(ctx, id, *req.Done)}, http.StatusOK)
}

func (handler *Handler) HandleToggleDone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.toggle_done")
	defer span.End()

	id, ok := handler.existingID(ctx, w, r)
	if !ok {
		return
	}

	pkg.WriteJSON(w, DoneResponse{ID: id, Done: handler.store.ToggleDone(ctx, id)}, http.StatusOK)
}

func (handler *Handler) HandleSetAllWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.set_all")
	defer span.End()

	var req setWeightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var value float64
	switch {
	case req.Value != nil:
		value = *req.Value
	case req.Text != nil:
		v, ok := ParseWeight(strings.Replace(strings.TrimSpace(*req.Text), ",", ".", 1))
		if !ok || !isFinite(v) {
			http.Error(w, "error, invalid weight", http.StatusBadRequest)
			return
		}
		value = v
	default:
		http.Error(w, "error, value or text required", http.StatusBadRequest)
		return
	}

	weight := handler.store.SetAllWeights(ctx, value)
	pkg.WriteJSON(w, FormatResponse{Value: weight, Formatted: FormatWeight(weight)}, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.stats")
	defer span.End()

	pkg.WriteJSON(w, handler.store.Stats(ctx), http.StatusOK)
}

func (handler *Handler) HandleGetAccountName(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.get_name")
	defer span.End()

	pkg.WriteJSON(w, AccountResponse{Name: handler.store.AccountName(ctx)}, http.StatusOK)
}

func (handler *Handler) HandleSetAccountName(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.set_name")
	defer span.End()

	var req AccountResponse
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg.WriteJSON(w, AccountResponse{Name: handler.store.SetAccountName(ctx, req.Name)}, http.StatusOK)
}

func (handler *Handler) HandleGetNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.get")
	defer span.End()

	pkg.WriteJSON(w, handler.store.Nutrition(ctx), http.StatusOK)
}

func (handler *Handler) HandleSetNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.set")
	defer span.End()

	var req nutritionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Calories == nil && req.Goal == nil {
		http.Error(w, "error, calories or goal required", http.StatusBadRequest)
		return
	}

	if req.Calories != nil {
		handler.store.SetNutritionCalories(ctx, *req.Calories)
	}
	if req.Goal != nil {
		handler.store.SetNutritionGoal(ctx, *req.Goal)
	}

	pkg.WriteJSON(w, handler.store.Nutrition(ctx), http.StatusOK)
}

func (handler *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.clear")
	defer span.End()

	handler.store.ClearAll(ctx)
	log.Debugln("all exercises cleared")
	pkg.WriteResponse(w, "", "", http.StatusNoContent)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.reset")
	defer span.End()

	handler.store.ResetToDefaults(ctx)
	log.Debugln("store reset to defaults")
	pkg.WriteResponse(w, "", "", http.StatusNoContent)
}

func (handler *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.format")
	defer span.End()

	raw := r.URL.Query().Get("value")
	value := RoundText(raw)
	pkg.WriteJSON(w, FormatResponse{Value: value, Formatted: FormatWeight(value)}, http.StatusOK)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.snapshot.export")
	defer span.End()

	format := FormatJSON
	if f := r.URL.Query().Get("format"); f != "" {
		var err error
		if format, err = ParseFormat(f); err != nil {
			http.Error(w, "error, unknown format", http.StatusBadRequest)
			return
		}
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, handler.store.Export(ctx), format); err != nil {
		log.Errorf("export snapshot: %s", err)
		http.Error(w, "error, failed to export snapshot", http.StatusInternalServerError)
		return
	}

	contentType := pkg.ContentType.JSON
	if format == FormatYAML {
		contentType = pkg.ContentType.YAML
	}
	pkg.WriteResponseBytesOK(w, contentType, buf.Bytes())
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.snapshot.import")
	defer span.End()

	var format Format
	switch r.Header.Get("Content-Type") {
	case pkg.ContentType.JSON:
		format = FormatJSON
	case pkg.ContentType.YAML:
		format = FormatYAML
	default:
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	snap, err := DecodeSnapshot(r.Body, format)
	if err != nil {
		log.Tracef("import snapshot: %s", err)
		http.Error(w, "error, invalid snapshot", http.StatusBadRequest)
		return
	}

	if err := handler.store.Import(ctx, snap); err != nil {
		if errors.Is(err, ErrInvalidSnapshot) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("import snapshot: %s", err)
		http.Error(w, "error, failed to import snapshot", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, handler.store.Stats(ctx), http.StatusOK)
}

// existingID resolves the {id} route var, writing a 404 if the exercise is
// not in the list.
func (handler *Handler) existingID(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return "", false
	}
	if _, err := handler.store.Exercise(ctx, id); err != nil {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return "", false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeWeight(w http.ResponseWriter, id string, weight float64) {
	pkg.WriteJSON(w, WeightResponse{
		ID:              id,
		Weight:          weight,
		FormattedWeight: FormatWeight(weight),
	}, http.StatusOK)
}
