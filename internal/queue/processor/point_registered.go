package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/greenpoint/backend/internal/queue/task"
	"github.com/greenpoint/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type pointRegisteredProcessor struct {
	workers *worker.Workers
}

func NewPointRegisteredProcessor(workers *worker.Workers) *pointRegisteredProcessor {
	return &pointRegisteredProcessor{
		workers: workers,
	}
}

func (p *pointRegisteredProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.PointRegistered
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process point registered task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendPointRegisteredEmail(ctx, data.Email, data.Name, data.PointID.String()); err != nil {
		return fmt.Errorf("send point registered email failed: %w", err)
	}

	return nil
}
