package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetdemo/planetdemo/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppPort:         8123,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestNew(t *testing.T) {
	srv := New(http.NotFoundHandler(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, ":8123", srv.Addr())
	assert.Equal(t, time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, time.Second, srv.shutdownTimeout)
}

func TestServe_GracefulShutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	srv := New(handler, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ListenerError(t *testing.T) {
	srv := New(http.NotFoundHandler(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = srv.Serve(context.Background(), ln)
	assert.Error(t, err)
}
