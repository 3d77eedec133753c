package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/greenpoint/backend/internal/queue/task"
	"github.com/greenpoint/backend/internal/worker"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) SendPointRegisteredEmail(ctx context.Context, email string, name string, pointID string) error {
	args := m.Called(ctx, email, name, pointID)
	return args.Error(0)
}

func TestProcessPointRegistered(t *testing.T) {
	sender := &mockEmailSender{}
	p := NewPointRegisteredProcessor(&worker.Workers{EmailSender: sender})

	id := uuid.New()
	tsk, err := task.NewPointRegisteredTask(id, "Eco Center", "a@b.com")
	require.NoError(t, err)

	sender.On("SendPointRegisteredEmail", mock.Anything, "a@b.com", "Eco Center", id.String()).Return(nil).Once()
	require.NoError(t, p.ProcessTask(context.Background(), tsk))

	sender.On("SendPointRegisteredEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
	assert.Error(t, p.ProcessTask(context.Background(), tsk))

	sender.AssertExpectations(t)
}

func TestProcessBadPayload(t *testing.T) {
	p := NewPointRegisteredProcessor(&worker.Workers{EmailSender: &mockEmailSender{}})

	err := p.ProcessTask(context.Background(), asynq.NewTask(task.PointRegisteredTaskName, []byte("{")))
	assert.Error(t, err)
}
