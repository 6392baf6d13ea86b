package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"leaf-advisor/config"
	"leaf-advisor/internal/domain/entity"
)

func baseConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Image.Path = "leaf.jpg"
	cfg.Image.OutputPath = "crop_analysis.jpg"
	cfg.LLM.Model = "tinyllama"
	cfg.LLM.PromptVersion = "v2"
	cfg.LLM.Timeout = time.Minute
	cfg.LLM.FallbackOnError = true
	cfg.Logging.Level = "info"
	return cfg
}

func TestRootCommand_FlagsOverride(t *testing.T) {
	var got *config.Config
	cmd := NewRootCommand(baseConfig(), func(ctx context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{"-i", "/data/a.jpg", "--webcam", "-m", "llama3", "--timeout", "5s", "--prompt-version", "v1", "--no-fallback"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "/data/a.jpg", got.Image.Path)
	require.True(t, got.Image.UseWebcam)
	require.Equal(t, "llama3", got.LLM.Model)
	require.Equal(t, 5*time.Second, got.LLM.Timeout)
	require.Equal(t, "v1", got.LLM.PromptVersion)
	require.False(t, got.LLM.FallbackOnError)
}

func TestRootCommand_DefaultsKept(t *testing.T) {
	var got *config.Config
	cmd := NewRootCommand(baseConfig(), func(ctx context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "leaf.jpg", got.Image.Path)
	require.Equal(t, "crop_analysis.jpg", got.Image.OutputPath)
	require.True(t, got.LLM.FallbackOnError)
}

func TestRootCommand_PropagatesError(t *testing.T) {
	want := errors.New("image load failed")
	cmd := NewRootCommand(baseConfig(), func(ctx context.Context, cfg *config.Config) error {
		return want
	})
	cmd.SetArgs([]string{})

	require.ErrorIs(t, cmd.ExecuteContext(context.Background()), want)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := NewRootCommand(baseConfig(), func(ctx context.Context, cfg *config.Config) error { return nil })
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestExecute_ReportsFailureOnce(t *testing.T) {
	loadErr := fmt.Errorf("%w: open leaf.jpg: no such file or directory", entity.ErrImageLoad)
	cmd := NewRootCommand(baseConfig(), func(ctx context.Context, cfg *config.Config) error {
		return loadErr
	})
	cmd.SetArgs([]string{})

	var stderr bytes.Buffer
	require.Equal(t, 1, Execute(cmd, &stderr))
	require.Equal(t, 1, strings.Count(stderr.String(), loadErr.Error()))
}

func TestExecute_Success(t *testing.T) {
	cmd := NewRootCommand(baseConfig(), func(ctx context.Context, cfg *config.Config) error { return nil })
	cmd.SetArgs([]string{})

	var stderr bytes.Buffer
	require.Equal(t, 0, Execute(cmd, &stderr))
	require.Empty(t, stderr.String())
}
