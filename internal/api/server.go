package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"

	"github.com/cravebuster/cravebuster/internal/services/recipe"
	"github.com/cravebuster/cravebuster/internal/state"
)

// Enqueuer accepts background tasks; *asynq.Client satisfies it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type (
	RecipeHolder  = state.Holder[recipe.RecipeRequest, recipe.GeneratedRecipe]
	PopularHolder = state.Holder[recipe.PopularRecipeRequest, recipe.PopularRecipe]
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	recipes *RecipeHolder
	popular *PopularHolder
	queue   Enqueuer
	health  map[string]HealthChecker
}

// NewServer wires the two recipe holders into HTTP handlers. queue may be
// nil, in which case warm-up requests are refused.
func NewServer(recipes *RecipeHolder, popular *PopularHolder, queue Enqueuer) *Server {
	return &Server{
		recipes: recipes,
		popular: popular,
		queue:   queue,
		health:  map[string]HealthChecker{},
	}
}

// WithHealthCheck adds a dependency to the /health report.
func (s *Server) WithHealthCheck(name string, c HealthChecker) *Server {
	s.health[name] = c
	return s
}

// Close ends every open event stream so an http.Server can shut down
// without waiting for SSE clients. Register it with RegisterOnShutdown.
func (s *Server) Close() {
	s.recipes.Close()
	s.popular.Close()
}

// Routes mounts every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", s.HandleOptions)
		r.Get("/meal-plan", s.HandleMealPlan)
		r.Get("/grocery-list", s.HandleGroceryList)

		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", s.HandleSubmitRecipe)
			r.Get("/", s.HandleRecipeSnapshot)
			r.Delete("/", s.HandleClearRecipe)
			r.Delete("/error", s.HandleClearRecipeError)
			r.Get("/events", s.HandleRecipeEvents)
		})

		r.Route("/popular-recipes", func(r chi.Router) {
			r.Post("/", s.HandleSubmitPopular)
			r.Get("/", s.HandlePopularSnapshot)
			r.Delete("/", s.HandleClearPopular)
			r.Delete("/error", s.HandleClearPopularError)
			r.Get("/events", s.HandlePopularEvents)
			r.Get("/trending", s.HandleTrending)
			r.Post("/warm", s.HandleWarmPopular)
		})
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
