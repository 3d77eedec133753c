package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/mail"
	"path/filepath"
	"sync"
)

var (
	ErrEmptyRecipient = errors.New("empty recipient")
	ErrEmptyContent   = errors.New("empty subject or body")
	ErrBadRecipient   = errors.New("invalid recipient address")
)

type SendEmailInput struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(input SendEmailInput) error
}

func (e SendEmailInput) Validate() error {
	switch {
	case e.To == "":
		return ErrEmptyRecipient
	case e.Subject == "" || e.Body == "":
		return ErrEmptyContent
	case !IsEmailValid(e.To):
		return ErrBadRecipient
	}
	return nil
}

// IsEmailValid accepts a bare address only, without a display name.
func IsEmailValid(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}

// Templates renders the HTML bodies kept in one directory. Each file is
// parsed on first use and reused afterwards.
type Templates struct {
	dir string

	mu     sync.Mutex
	parsed map[string]*template.Template
}

func NewTemplates(dir string) *Templates {
	return &Templates{
		dir:    dir,
		parsed: make(map[string]*template.Template),
	}
}

func (t *Templates) Render(name string, data any) (string, error) {
	tmpl, err := t.lookup(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("email template %s execute failed: %w", name, err)
	}

	return buf.String(), nil
}

func (t *Templates) lookup(name string) (*template.Template, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tmpl, ok := t.parsed[name]; ok {
		return tmpl, nil
	}

	tmpl, err := template.ParseFiles(filepath.Join(t.dir, name))
	if err != nil {
		return nil, fmt.Errorf("email template %s parse failed: %w", name, err)
	}
	t.parsed[name] = tmpl

	return tmpl, nil
}
