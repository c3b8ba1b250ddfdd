package worker

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants
const (
	TypeWarmPopular = "recipe:warm_popular"
)

// WarmPopularPayload lists the dishes to pre-generate. An empty Dishes list
// means every trending suggestion.
type WarmPopularPayload struct {
	Dishes  []string `json:"dishes"`
	Cuisine string   `json:"cuisine,omitempty"`
}

// NewWarmPopularTask creates a new warm-up task
func NewWarmPopularTask(payload WarmPopularPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWarmPopular, data, asynq.MaxRetry(3)), nil
}
