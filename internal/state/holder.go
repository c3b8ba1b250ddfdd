// Package state holds the current result of a recipe request for UI clients.
//
// A Holder is a small state machine (idle, loading, success, error) around a
// recipe generator. Handlers submit requests to it, poll its Snapshot or
// Subscribe to every transition.
package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cravebuster/cravebuster/internal/errors"
	"github.com/cravebuster/cravebuster/internal/logger"
	"github.com/cravebuster/cravebuster/internal/services/recipe"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Snapshot is the observable state of a Holder. Recipe survives a new
// submission and a validation error, so the previous result stays on screen.
type Snapshot[Rec any] struct {
	Status    Status    `json:"status"`
	RequestID string    `json:"requestId,omitempty"`
	Recipe    *Rec      `json:"recipe"`
	Error     string    `json:"error,omitempty"`
	Loading   bool      `json:"loading"`
	Degraded  bool      `json:"degraded,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`

	rejected bool
}

// Rejected reports whether the error comes from request validation rather
// than from generation.
func (s Snapshot[Rec]) Rejected() bool {
	return s.rejected
}

// Generator is the part of recipe.Generator a Holder drives.
type Generator[Req, Rec any] interface {
	Variant() string
	Validate(ctx context.Context, req Req) error
	Generate(ctx context.Context, req Req) (recipe.Result[Rec], error)
}

type options struct {
	surfaceDegraded bool
}

type Option func(*options)

// WithSurfaceDegraded marks fallback results in snapshots. Off by default, in
// which case a fallback recipe is indistinguishable from a generated one.
func WithSurfaceDegraded(on bool) Option {
	return func(o *options) { o.surfaceDegraded = on }
}

type Holder[Req, Rec any] struct {
	gen  Generator[Req, Rec]
	opts options

	mu   sync.Mutex
	seq  uint64
	snap Snapshot[Rec]

	subs *broadcaster[Snapshot[Rec]]
	wg   sync.WaitGroup
	now  func() time.Time
}

func NewHolder[Req, Rec any](gen Generator[Req, Rec], opts ...Option) *Holder[Req, Rec] {
	h := &Holder[Req, Rec]{
		gen:  gen,
		subs: newBroadcaster[Snapshot[Rec]](),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&h.opts)
	}
	h.snap = Snapshot[Rec]{Status: StatusIdle, UpdatedAt: h.now()}
	return h
}

// Submit runs req to completion and returns the resulting snapshot. If a newer
// submission started in the meantime, Submit keeps waiting until the holder
// stops loading and returns that state instead. When ctx ends first, the
// latest snapshot is returned as is.
func (h *Holder[Req, Rec]) Submit(ctx context.Context, req Req) Snapshot[Rec] {
	seq, snap, ok := h.begin(ctx, req)
	if !ok {
		return snap
	}
	snap = h.finish(ctx, seq, req)
	if !snap.Loading {
		return snap
	}
	return h.settle(ctx)
}

// settle blocks until the holder is no longer loading.
func (h *Holder[Req, Rec]) settle(ctx context.Context) Snapshot[Rec] {
	updates, cancel := h.Subscribe()
	defer cancel()

	latest := h.Snapshot()
	for latest.Loading {
		select {
		case <-ctx.Done():
			return latest
		case snap, ok := <-updates:
			if !ok {
				return h.Snapshot()
			}
			latest = snap
		}
	}
	return latest
}

// Start moves to loading (or straight to error for an invalid request) and
// generates in the background. The work outlives ctx's cancellation.
func (h *Holder[Req, Rec]) Start(ctx context.Context, req Req) Snapshot[Rec] {
	seq, snap, ok := h.begin(ctx, req)
	if !ok {
		return snap
	}

	bg := context.WithoutCancel(ctx)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.finish(bg, seq, req)
	}()
	return snap
}

// Wait blocks until every generation started with Start has finished.
func (h *Holder[Req, Rec]) Wait() {
	h.wg.Wait()
}

func (h *Holder[Req, Rec]) begin(ctx context.Context, req Req) (uint64, Snapshot[Rec], bool) {
	verr := h.gen.Validate(ctx, req)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.snap.RequestID = uuid.NewString()
	h.snap.Degraded = false
	h.snap.rejected = verr != nil

	if verr != nil {
		h.snap.Status = StatusError
		h.snap.Error = message(verr)
		h.snap.Loading = false
		slog.Info("Recipe request rejected",
			"variant", h.gen.Variant(),
			"request_id", h.snap.RequestID,
			"reason", h.snap.Error)
		return h.seq, h.publishLocked(), false
	}

	h.snap.Status = StatusLoading
	h.snap.Error = ""
	h.snap.Loading = true
	return h.seq, h.publishLocked(), true
}

func (h *Holder[Req, Rec]) finish(ctx context.Context, seq uint64, req Req) Snapshot[Rec] {
	res, err := h.gen.Generate(ctx, req)

	h.mu.Lock()
	defer h.mu.Unlock()

	if seq != h.seq {
		return h.snap
	}

	h.snap.Loading = false
	if err != nil {
		h.snap.Status = StatusError
		h.snap.Error = message(err)
		slog.Error("Recipe generation failed",
			"variant", h.gen.Variant(),
			"request_id", h.snap.RequestID,
			"error", err,
			logger.WithTraceContext(ctx))
		return h.publishLocked()
	}

	rec := res.Recipe
	h.snap.Status = StatusSuccess
	h.snap.Recipe = &rec
	h.snap.Degraded = h.opts.surfaceDegraded && res.Degraded()
	slog.Info("Recipe ready",
		"variant", h.gen.Variant(),
		"request_id", h.snap.RequestID,
		"source", string(res.Source))
	return h.publishLocked()
}

// ClearRecipe drops the current recipe and error. An in-flight request keeps
// loading and will still publish its result.
func (h *Holder[Req, Rec]) ClearRecipe() Snapshot[Rec] {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snap.Recipe = nil
	h.snap.Error = ""
	h.snap.Degraded = false
	h.snap.rejected = false
	if !h.snap.Loading {
		h.snap.Status = StatusIdle
	}
	return h.publishLocked()
}

// ClearError dismisses the current error message.
func (h *Holder[Req, Rec]) ClearError() Snapshot[Rec] {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snap.Error = ""
	h.snap.rejected = false
	if h.snap.Status == StatusError {
		h.snap.Status = StatusIdle
	}
	return h.publishLocked()
}

func (h *Holder[Req, Rec]) Snapshot() Snapshot[Rec] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

func (h *Holder[Req, Rec]) Recipe() *Rec {
	return h.Snapshot().Recipe
}

func (h *Holder[Req, Rec]) Loading() bool {
	return h.Snapshot().Loading
}

// Err returns the current error message, or "" when there is none.
func (h *Holder[Req, Rec]) Err() string {
	return h.Snapshot().Error
}

// Subscribe delivers the current snapshot and then every transition. Call
// cancel to stop; the channel is closed afterwards.
func (h *Holder[Req, Rec]) Subscribe() (<-chan Snapshot[Rec], func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.subs.subscribe(h.snap)
}

// Close ends every open subscription; later Subscribe calls get the current
// snapshot and a closed channel. Submissions keep working.
func (h *Holder[Req, Rec]) Close() {
	h.subs.close()
}

// Subscribers returns the number of open subscriptions.
func (h *Holder[Req, Rec]) Subscribers() int {
	return h.subs.count()
}

func (h *Holder[Req, Rec]) publishLocked() Snapshot[Rec] {
	h.snap.UpdatedAt = h.now()
	h.subs.broadcast(h.snap)
	return h.snap
}

func message(err error) string {
	if appErr, ok := errors.AsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}
	return errors.APIMessages["GENERIC_ERROR"]
}
