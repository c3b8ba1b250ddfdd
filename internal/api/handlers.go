package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cravebuster/cravebuster/internal/state"
)

const keepAliveInterval = 15 * time.Second

func (s *Server) HandleSubmitRecipe(w http.ResponseWriter, r *http.Request) {
	submit(w, r, s.recipes)
}

func (s *Server) HandleRecipeSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.recipes.Snapshot())
}

func (s *Server) HandleClearRecipe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.recipes.ClearRecipe())
}

func (s *Server) HandleClearRecipeError(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.recipes.ClearError())
}

func (s *Server) HandleRecipeEvents(w http.ResponseWriter, r *http.Request) {
	stream(w, r, s.recipes)
}

func (s *Server) HandleSubmitPopular(w http.ResponseWriter, r *http.Request) {
	submit(w, r, s.popular)
}

func (s *Server) HandlePopularSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.popular.Snapshot())
}

func (s *Server) HandleClearPopular(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.popular.ClearRecipe())
}

func (s *Server) HandleClearPopularError(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.popular.ClearError())
}

func (s *Server) HandlePopularEvents(w http.ResponseWriter, r *http.Request) {
	stream(w, r, s.popular)
}

// submit decodes a request into the holder. With ?wait=true it blocks until
// the recipe is ready; otherwise it answers 202 with the loading snapshot.
func submit[Req, Rec any](w http.ResponseWriter, r *http.Request, h *state.Holder[Req, Rec]) {
	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		snap := h.Start(r.Context(), req)
		if snap.Status == state.StatusError {
			writeJSON(w, http.StatusUnprocessableEntity, snap)
			return
		}
		writeJSON(w, http.StatusAccepted, snap)
		return
	}

	snap := h.Submit(r.Context(), req)
	switch {
	case snap.Rejected():
		writeJSON(w, http.StatusUnprocessableEntity, snap)
	case snap.Status == state.StatusError:
		writeJSON(w, http.StatusInternalServerError, snap)
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

// stream sends every snapshot of h as a server-sent event until the client
// goes away.
func stream[Req, Rec any](w http.ResponseWriter, r *http.Request, h *state.Holder[Req, Rec]) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates, cancel := h.Subscribe()
	defer cancel()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := writeEvent(w, snap); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
	return err
}

// decodeOptional decodes a JSON body that may be empty.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
