package worker

import (
	"context"
	"fmt"

	"github.com/greenpoint/backend/internal/config"
	emailProvider "github.com/greenpoint/backend/pkg/email"
)

type emailSender struct {
	sender    emailProvider.Sender
	config    config.EmailConfig
	templates *emailProvider.Templates
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender:    sender,
		config:    config,
		templates: emailProvider.NewTemplates(config.Templates.Dir),
	}
}

type pointRegisteredEmailInput struct {
	Name    string
	PointID string
}

func (s *emailSender) SendPointRegisteredEmail(ctx context.Context, email string, name string, pointID string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Ponto de coleta cadastrado"

	templateInput := pointRegisteredEmailInput{Name: name, PointID: pointID}
	body, err := s.templates.Render(s.config.Templates.PointRegistered, templateInput)
	if err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email, Body: body}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
