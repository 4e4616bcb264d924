// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/handler"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingWorker struct {
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func testServerConfig(addr string) config.Server {
	return config.Server{
		HTTPAddress:     addr,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, addr string, w *workers.Workers) *server {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:    config.App{Environment: config.EnvironmentTest},
		Server: testServerConfig(addr),
	}
	handlers, err := handler.NewHandlers(nil, nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, w, cfg.Server, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, testServerConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, testServerConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_Run_ServesUntilCancelled(t *testing.T) {
	worker := &blockingWorker{}
	srv := newTestServer(t, "127.0.0.1:0", workers.NewWorkers(worker))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + srv.addr.String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, worker.stopped.Load())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, worker.stopped.Load(), "workers must be stopped before Run returns")
}

func TestServer_Run_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, l.Addr().String(), nil)

	err = srv.Run(context.Background())

	assert.Error(t, err)
}

func TestServer_Run_Twice(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, srv.Run(ctx))

	assert.ErrorIs(t, srv.Run(context.Background()), errServerAlreadyRun)
}
