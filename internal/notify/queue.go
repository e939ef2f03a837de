// Package notify carries denial notices from the moderation pipeline to the
// uploading family: a fire-and-forget queue on the transition side and a
// worker that resolves recipients and sends mail.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TaskPhotoDenied is enqueued once per deny or bulk-deny call.
const TaskPhotoDenied = "photo:denied"

// DeniedPayload carries the full id list of one deny call; fan-out per
// recipient happens in the worker.
type DeniedPayload struct {
	PhotoIDs []int64 `json:"photo_ids"`
}

type Queue struct {
	client *asynq.Client
}

func NewQueue(client *asynq.Client) *Queue {
	return &Queue{client: client}
}

// PhotosDenied enqueues one dispatch task carrying all denied photo ids.
// Dispatch never retries; the status change it trails is already committed.
func (q *Queue) PhotosDenied(ctx context.Context, photoIDs []int64) error {
	data, err := json.Marshal(DeniedPayload{PhotoIDs: photoIDs})
	if err != nil {
		return fmt.Errorf("marshal denied payload: %w", err)
	}

	task := asynq.NewTask(TaskPhotoDenied, data)
	if _, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(0)); err != nil {
		return fmt.Errorf("enqueue denied task: %w", err)
	}

	return nil
}
