package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/greenpoint/backend/internal/config"
	"github.com/greenpoint/backend/pkg/email"
	mock_email "github.com/greenpoint/backend/pkg/email/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func emailConfig(t *testing.T, enabled bool) config.EmailConfig {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "point_registered.html"), []byte(`{{.Name}}:{{.PointID}}`), 0o600))

	return config.EmailConfig{
		Enabled: enabled,
		Templates: config.EmailTemplates{
			Dir:             dir,
			PointRegistered: "point_registered.html",
		},
	}
}

func TestSendPointRegisteredEmail(t *testing.T) {
	sender := &mock_email.EmailSender{}
	sender.On("Send", mock.MatchedBy(func(in email.SendEmailInput) bool {
		return in.To == "a@b.com" && strings.Contains(in.Body, "Eco Center:42")
	})).Return(nil).Once()

	s := newEmailSender(sender, emailConfig(t, true))

	require.NoError(t, s.SendPointRegisteredEmail(context.Background(), "a@b.com", "Eco Center", "42"))
	sender.AssertExpectations(t)
}

func TestSendPointRegisteredEmailDisabled(t *testing.T) {
	sender := &mock_email.EmailSender{}
	s := newEmailSender(sender, emailConfig(t, false))

	require.NoError(t, s.SendPointRegisteredEmail(context.Background(), "a@b.com", "Eco Center", "42"))
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSendPointRegisteredEmailSendFailure(t *testing.T) {
	sender := &mock_email.EmailSender{}
	sender.On("Send", mock.Anything).Return(errors.New("smtp down"))

	s := newEmailSender(sender, emailConfig(t, true))

	err := s.SendPointRegisteredEmail(context.Background(), "a@b.com", "Eco Center", "42")
	assert.ErrorContains(t, err, "smtp down")
}
