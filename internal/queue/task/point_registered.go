package task

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	PointRegisteredTaskName  = "pointRegisteredTask"
	PointRegisteredQueueName = "pointRegisteredQueue"
)

type PointRegistered struct {
	PointID uuid.UUID `json:"point_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
}

// NewPointRegisteredTask builds the task that mails the registration confirmation.
func NewPointRegisteredTask(pointID uuid.UUID, name string, email string) (*asynq.Task, error) {
	data := PointRegistered{
		PointID: pointID,
		Name:    name,
		Email:   email,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		PointRegisteredTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(PointRegisteredQueueName),
	), nil
}
