package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/greenpoint/backend/internal/config"
	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/pkg/auth"
	"github.com/greenpoint/backend/pkg/validator"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	submitted []domain.PointPayload
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/v1/regions":
		_, _ = w.Write([]byte(`["PB","PE"]`))
	case "/api/v1/regions/PB/cities":
		_, _ = w.Write([]byte(`["João Pessoa","Campina Grande"]`))
	case "/api/v1/items":
		_, _ = w.Write([]byte(`[{"id":3,"title":"Papéis","image_url":"p.svg"},{"id":7,"title":"Óleo","image_url":"o.svg"}]`))
	case "/api/v1/points":
		var p domain.PointPayload
		if err := binding.JSON.Bind(r, &p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"error_code": 6000, "error_message": err.Error()})
			return
		}
		f.submitted = append(f.submitted, p)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"point-1"}`))
	default:
		http.NotFound(w, r)
	}
}

func run(t *testing.T, cfg *config.ClientConfig, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := newRootCmd(cfg)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

var registerValidator sync.Once

// newAPI serves canned lookups and binds POST /points with the server's
// validation rules.
func newAPI(t *testing.T) (*fakeAPI, *config.ClientConfig) {
	t.Helper()
	registerValidator.Do(validator.RegisterGinValidator)
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	return api, &config.ClientConfig{
		LogLevel:   "error",
		APIBaseURL: srv.URL + "/api/v1",
		Timeout:    time.Second,
		SigningKey: "secret",
		TokenTTL:   time.Hour,
	}
}

func TestRegisterUsesDevicePosition(t *testing.T) {
	api, cfg := newAPI(t)

	out, _, err := run(t, cfg, "register",
		"--name", "Eco Center", "--email", "a@b.com", "--whatsapp", "8399999999",
		"--uf", "PB", "--city", "João Pessoa",
		"--item", "7", "--item", "3",
		"--device-lat", "-7.0855285", "--device-lon", "-34.8377519",
	)
	require.NoError(t, err)
	assert.Equal(t, "point-1\n", out)

	require.Len(t, api.submitted, 1)
	assert.Equal(t, domain.PointPayload{
		Name:      "Eco Center",
		Email:     "a@b.com",
		Whatsapp:  "8399999999",
		UF:        "PB",
		City:      "João Pessoa",
		Latitude:  -7.0855285,
		Longitude: -34.8377519,
		Items:     []int{7, 3},
	}, api.submitted[0])
}

func TestRegisterLocalPhoneNumber(t *testing.T) {
	api, cfg := newAPI(t)

	out, _, err := run(t, cfg, "register",
		"--name", "Eco Center", "--email", "a@b.com", "--whatsapp", "119999",
		"--uf", "PB", "--city", "João Pessoa", "--item", "3", "--item", "7",
		"--pin-lat", "-7.1", "--pin-lon", "-34.8",
	)
	require.NoError(t, err)
	assert.Equal(t, "point-1\n", out)
	require.Len(t, api.submitted, 1)
	assert.Equal(t, "119999", api.submitted[0].Whatsapp)
	assert.Equal(t, []int{3, 7}, api.submitted[0].Items)
}

func TestRegisterPinOverridesDevice(t *testing.T) {
	api, cfg := newAPI(t)

	_, _, err := run(t, cfg, "register",
		"--name", "Eco Center", "--email", "a@b.com", "--whatsapp", "8399999999",
		"--uf", "PB", "--city", "Campina Grande", "--item", "3",
		"--device-lat", "-7.0", "--device-lon", "-34.0",
		"--pin-lat", "-7.2", "--pin-lon", "-35.9",
	)
	require.NoError(t, err)
	require.Len(t, api.submitted, 1)
	assert.Equal(t, -7.2, api.submitted[0].Latitude)
	assert.Equal(t, -35.9, api.submitted[0].Longitude)
}

func TestRegisterWithoutPosition(t *testing.T) {
	api, cfg := newAPI(t)

	_, stderr, err := run(t, cfg, "register",
		"--name", "Eco Center", "--email", "a@b.com", "--whatsapp", "8399999999",
		"--uf", "PB", "--city", "João Pessoa", "--item", "3",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position")
	assert.Contains(t, stderr, "location unavailable")
	assert.Empty(t, api.submitted)
}

func TestRegisterUnknownCity(t *testing.T) {
	_, cfg := newAPI(t)

	_, _, err := run(t, cfg, "register", "--uf", "PB", "--city", "Recife")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")
}

func TestItems(t *testing.T) {
	_, cfg := newAPI(t)

	out, _, err := run(t, cfg, "items")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Papéis")
	assert.Contains(t, lines[2], "o.svg")
}

func TestToken(t *testing.T) {
	_, cfg := newAPI(t)

	out, _, err := run(t, cfg, "token", "--subject", "ops")
	require.NoError(t, err)

	manager, err := auth.NewManager("secret", time.Hour)
	require.NoError(t, err)
	claims, err := auth.RequireAdmin(manager, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestTokenWithoutKey(t *testing.T) {
	_, cfg := newAPI(t)
	cfg.SigningKey = ""

	_, _, err := run(t, cfg, "token")
	assert.Error(t, err)
}
