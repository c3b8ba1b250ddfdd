// Package integration runs the HTTP API, the recipe state holders and the
// warm-up worker against a fake OpenAI-compatible completion server.
package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/cravebuster/cravebuster/internal/api"
	"github.com/cravebuster/cravebuster/internal/services/completion"
	"github.com/cravebuster/cravebuster/internal/services/recipe"
	"github.com/cravebuster/cravebuster/internal/state"
)

// chatServer is a fake chat-completions endpoint. Each call returns the
// configured status and assistant content.
type chatServer struct {
	*httptest.Server
	calls atomic.Int32

	mu       sync.Mutex
	status   int
	content  string
	messages [][]chatMessage
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newChatServer(t *testing.T, status int, content string) *chatServer {
	t.Helper()
	s := &chatServer{status: status, content: content}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *chatServer) handle(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)

	var body struct {
		Messages []chatMessage `json:"messages"`
	}
	raw, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.messages = append(s.messages, body.Messages)
	status, content := s.status, s.content
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status != http.StatusOK {
		_, _ = io.WriteString(w, `{"error":{"message":"upstream unavailable","type":"server_error"}}`)
		return
	}

	encoded, _ := json.Marshal(content)
	_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","model":"test",`+
		`"choices":[{"index":0,"message":{"role":"assistant","content":`+string(encoded)+`},"finish_reason":"stop"}]}`)
}

func (s *chatServer) provider(kind completion.ProviderType, key string) *completion.ChatProvider {
	return completion.NewChatProvider(kind, key, completion.WithBaseURL(s.URL), completion.WithHTTPClient(s.Client()))
}

func (s *chatServer) lastMessages() []chatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return nil
	}
	return s.messages[len(s.messages)-1]
}

// memoryCache is an in-process stand-in for the Redis recipe cache.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type app struct {
	router  http.Handler
	recipes *api.RecipeHolder
	popular *api.PopularHolder
}

func newApp(client completion.Client, opts ...recipe.GeneratorOption) *app {
	recipes := state.NewHolder[recipe.RecipeRequest, recipe.GeneratedRecipe](
		recipe.NewGenerator(recipe.IngredientVariant(), client, opts...))
	popular := state.NewHolder[recipe.PopularRecipeRequest, recipe.PopularRecipe](
		recipe.NewGenerator(recipe.PopularVariant(), client, opts...))

	r := chi.NewRouter()
	api.NewServer(recipes, popular, nil).Routes(r)
	return &app{router: r, recipes: recipes, popular: popular}
}

func (a *app) post(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decodeSnapshot[Rec any](t *testing.T, rr *httptest.ResponseRecorder) state.Snapshot[Rec] {
	t.Helper()
	var snap state.Snapshot[Rec]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap), rr.Body.String())
	return snap
}
