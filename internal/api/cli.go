package api

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"leaf-advisor/config"
)

// Version версия приложения
const Version = "0.1.0"

// RunFunc выполняет один прогон с итоговой конфигурацией
type RunFunc func(ctx context.Context, cfg *config.Config) error

// NewRootCommand создаёт команду leaf-advisor; флаги перекрывают значения из окружения
func NewRootCommand(cfg *config.Config, run RunFunc) *cobra.Command {
	var noFallback bool

	cmd := &cobra.Command{
		Use:           "leaf-advisor",
		Short:         "Analyze a leaf image and print disease and irrigation advice",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noFallback {
				cfg.LLM.FallbackOnError = false
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Image.Path, "image", "i", cfg.Image.Path, "Path to the leaf image")
	f.BoolVar(&cfg.Image.UseWebcam, "webcam", cfg.Image.UseWebcam, "Capture one frame from the camera instead of reading --image")
	f.IntVar(&cfg.Image.CameraIndex, "camera", cfg.Image.CameraIndex, "Camera device index")
	f.StringVarP(&cfg.Image.OutputPath, "output", "o", cfg.Image.OutputPath, "Where to write the analysed image (overwritten)")
	f.BoolVar(&cfg.Image.Annotate, "annotate", cfg.Image.Annotate, "Draw metrics on the saved image")
	f.StringVar(&cfg.LLM.Endpoint, "endpoint", cfg.LLM.Endpoint, "Text generation endpoint")
	f.StringVarP(&cfg.LLM.Model, "model", "m", cfg.LLM.Model, "Model name")
	f.StringVar(&cfg.LLM.PromptVersion, "prompt-version", cfg.LLM.PromptVersion, "Prompt and display strategy (v1 or v2)")
	f.DurationVar(&cfg.LLM.Timeout, "timeout", cfg.LLM.Timeout, "Advisory request timeout (0 disables)")
	f.BoolVar(&noFallback, "no-fallback", false, "Fail the run instead of using the fallback advisory")
	f.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	return cmd
}

// Execute запускает команду с контекстом, который отменяется по Ctrl+C или SIGTERM.
// Ошибка печатается в stderr один раз; возвращается код выхода процесса.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
