package moderation

import (
	"context"
	"fmt"
)

// Action applies one moderation transition to a single entity.
type Action func(ctx context.Context, id string) error

// Result reports how far a bulk run got before stopping.
type Result struct {
	Completed []string `json:"completed"`
	FailedID  string   `json:"failed_id,omitempty"`
}

// Run applies act to each id in order, one awaited round trip at a time.
// The first failure stops the loop; ids after it are never attempted, and
// items already done stay done. Callers surface the partial result instead
// of pretending the batch was atomic.
func Run(ctx context.Context, ids []string, act Action) (Result, error) {
	var res Result
	for _, id := range ids {
		if err := act(ctx, id); err != nil {
			res.FailedID = id
			return res, fmt.Errorf("bulk action on %s: %w", id, err)
		}
		res.Completed = append(res.Completed, id)
	}
	return res, nil
}
