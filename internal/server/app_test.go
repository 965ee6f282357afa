package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/healthgate/internal/artifacts/artifactstest"
	"github.com/dmitrijs2005/healthgate/internal/config"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	gs "github.com/dmitrijs2005/healthgate/internal/server/grpc"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "users.db")
	cfg.ModelDir = t.TempDir()
	cfg.BcryptCost = bcrypt.MinCost
	cfg.EndpointAddrGRPC = freeAddr(t)
	for name, f := range artifactstest.DefaultFS() {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.ModelDir, name), f.Data, 0o600))
	}
	return cfg
}

func TestApp_ServesUntilCancelled(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsAddr = freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, cfg, logging.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	client, err := gs.NewClient(cfg.EndpointAddrGRPC)
	require.NoError(t, err)
	defer client.Close()

	require.Eventually(t, func() bool {
		pctx, pcancel := context.WithTimeout(ctx, time.Second)
		defer pcancel()
		return client.Ping(pctx) == nil
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, client.Register(ctx, "alice", []byte("pw")))
	res, err := client.Predict(ctx, "diabetes", artifactstest.DiabeticInput)
	require.NoError(t, err)
	assert.Equal(t, "The person is diabetic", res.Diagnosis)

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.MetricsAddr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		body = string(b)
		return err == nil && resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)
	assert.Contains(t, body, `healthgate_model_available{disease="diabetes"} 1`)
	assert.Contains(t, body, `healthgate_predictions_total{disease="diabetes",outcome="positive"} 1`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_BadDSN(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "missing", "dir", "users.db")

	_, err := NewApp(context.Background(), cfg, logging.Nop())
	require.Error(t, err)
}

func TestNewApp_WarnsOnDefaultSecretKey(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		warned bool
	}{
		{"default", config.DefaultSecretKey, true},
		{"overridden", "a-real-secret", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.SecretKey = tc.secret

			var buf bytes.Buffer
			logger, err := logging.New("info", "text", &buf)
			require.NoError(t, err)

			app, err := NewApp(context.Background(), cfg, logger)
			require.NoError(t, err)
			defer app.core.Close()

			assert.Equal(t, tc.warned, bytes.Contains(buf.Bytes(), []byte("default secret key")))
		})
	}
}
