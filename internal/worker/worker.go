package worker

import (
	"context"

	"github.com/greenpoint/backend/internal/config"
	emailProvider "github.com/greenpoint/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendPointRegisteredEmail(ctx context.Context, email string, name string, pointID string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
