package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cravebuster/cravebuster/internal/catalog"
	"github.com/cravebuster/cravebuster/internal/worker"
)

type trendingResponse struct {
	Dishes []string `json:"dishes"`
}

func (s *Server) HandleTrending(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, trendingResponse{Dishes: catalog.TrendingSuggestions()})
}

func (s *Server) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Options())
}

func (s *Server) HandleMealPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.WeeklyMealPlan())
}

// HandleGroceryList marks the items named in ?checked=a,b as bought.
func (s *Server) HandleGroceryList(w http.ResponseWriter, r *http.Request) {
	checked := map[string]bool{}
	for _, raw := range r.URL.Query()["checked"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				checked[name] = true
			}
		}
	}
	writeJSON(w, http.StatusOK, catalog.Groceries(checked))
}

type warmResponse struct {
	Status string `json:"status"`
	TaskID string `json:"task_id"`
}

func (s *Server) HandleWarmPopular(w http.ResponseWriter, r *http.Request) {
	if s.queue == nil {
		writeError(w, http.StatusServiceUnavailable, "warm-up queue is not configured")
		return
	}

	var payload worker.WarmPopularPayload
	if err := decodeOptional(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := worker.NewWarmPopularTask(payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	info, err := s.queue.EnqueueContext(r.Context(), task)
	if err != nil {
		slog.Error("Failed to enqueue warm-up", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to enqueue task")
		return
	}

	slog.Info("Warm-up queued", "task_id", info.ID, "dishes", len(payload.Dishes))
	writeJSON(w, http.StatusAccepted, warmResponse{Status: "queued", TaskID: info.ID})
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealth reports liveness. Failing dependencies are listed but do not
// change the status code; recipes still come back from the fallback path.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if len(s.health) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp.Checks = make(map[string]string, len(s.health))
		for name, c := range s.health {
			if err := c.Ping(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				continue
			}
			resp.Checks[name] = "ok"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
