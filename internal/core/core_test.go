package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/healthgate/internal/artifacts"
	"github.com/dmitrijs2005/healthgate/internal/artifacts/artifactstest"
	"github.com/dmitrijs2005/healthgate/internal/auth"
	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/config"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeModels(t *testing.T, dir string, skip ...string) {
	t.Helper()
	for name, f := range artifactstest.DefaultFS() {
		skipped := false
		for _, s := range skip {
			skipped = skipped || s == name
		}
		if skipped {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o600))
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "users.db")
	cfg.ModelDir = t.TempDir()
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

func TestBuild_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	writeModels(t, cfg.ModelDir)
	ctx := context.Background()

	c, err := Build(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.Len(t, c.Registry.Available(), 4)

	s := auth.NewSession()
	_, err = c.Pipeline.Predict(ctx, s, models.Diabetes, artifactstest.DiabeticInput)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	require.NoError(t, c.Gate.Register(ctx, s, "alice", []byte("pw")))
	res, err := c.Pipeline.Predict(ctx, s, models.Diabetes, artifactstest.DiabeticInput)
	require.NoError(t, err)
	assert.Equal(t, "The person is diabetic", res.Diagnosis)
}

func TestBuild_CredentialsSurviveRestart(t *testing.T) {
	cfg := testConfig(t)
	writeModels(t, cfg.ModelDir)
	ctx := context.Background()

	c, err := Build(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Store.Register(ctx, "bob", []byte("pw")))
	require.NoError(t, c.Close())

	c, err = Build(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	defer c.Close()

	ok, err := c.Store.Verify(ctx, "bob", []byte("pw"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_MissingModelsDoNotFailStartup(t *testing.T) {
	cfg := testConfig(t)
	writeModels(t, cfg.ModelDir, "heart_disease.json")

	c, err := Build(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.Len(t, c.Registry.Available(), 3)
	_, err = c.Registry.Lookup(models.HeartDisease)
	require.ErrorIs(t, err, common.ErrModelUnavailable)
}

func TestBuild_BadDSN(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "missing-dir", "users.db")

	_, err := Build(context.Background(), cfg, logging.Nop())
	require.Error(t, err)
}

func TestNewArtifactSource(t *testing.T) {
	cfg := testConfig(t)

	src, err := newArtifactSource(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &artifacts.FSSource{}, src)

	cfg.ModelSource = config.ModelSourceS3
	src, err = newArtifactSource(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &artifacts.S3Source{}, src)

	cfg.ModelSource = "ftp"
	_, err = newArtifactSource(context.Background(), cfg)
	require.Error(t, err)
}
