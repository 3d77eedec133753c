package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesRender(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.html")
	require.NoError(t, os.WriteFile(path, []byte(`<p>{{.Name}}</p>`), 0o600))

	templates := NewTemplates(dir)
	body, err := templates.Render("hello.html", struct{ Name string }{"Eco <Center>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Eco &lt;Center&gt;</p>", body)

	// parsed once, later edits are not picked up
	require.NoError(t, os.WriteFile(path, []byte(`changed`), 0o600))
	body, err = templates.Render("hello.html", struct{ Name string }{"x"})
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", body)

	_, err = templates.Render("missing.html", nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		input SendEmailInput
		want  error
	}{
		{"empty to", SendEmailInput{Subject: "s", Body: "b"}, ErrEmptyRecipient},
		{"empty body", SendEmailInput{To: "a@b.com", Subject: "s"}, ErrEmptyContent},
		{"bad address", SendEmailInput{To: "not-an-email", Subject: "s", Body: "b"}, ErrBadRecipient},
		{"display name", SendEmailInput{To: "Eco <a@b.com>", Subject: "s", Body: "b"}, ErrBadRecipient},
		{"ok", SendEmailInput{To: "a@b.com", Subject: "s", Body: "b"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.input.Validate())
		})
	}
}
