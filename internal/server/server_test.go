package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/greenpoint/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsNilAfterStop(t *testing.T) {
	srv := NewServer(config.HttpServer{Port: "0", Timeout: time.Second, IdleTimeout: time.Second}, http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
