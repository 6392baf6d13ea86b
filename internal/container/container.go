package container

import (
	"os"

	"github.com/sirupsen/logrus"

	"leaf-advisor/config"
	app "leaf-advisor/internal/application"
	"leaf-advisor/internal/domain/entity"
	"leaf-advisor/internal/domain/port"
	"leaf-advisor/internal/infrastructure/hardware"
	"leaf-advisor/internal/infrastructure/llm"
	"leaf-advisor/internal/infrastructure/storage"
	"leaf-advisor/internal/infrastructure/telegram"
	"leaf-advisor/internal/infrastructure/vision"
)

type Container struct {
	AdvisoryService *app.AdvisoryService
}

// New собирает сервис анализа из конфигурации
func New(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	version, err := entity.ParsePromptVersion(cfg.LLM.PromptVersion)
	if err != nil {
		return nil, err
	}

	var source port.ImageSource = storage.NewFileSource(cfg.Image.Path)
	if cfg.Image.UseWebcam {
		source = vision.NewCameraSource(cfg.Image.CameraIndex)
	}

	analyzer := vision.NewGoCVAnalyzer(vision.DefaultParams())

	advisor := llm.NewOllamaClient(llm.ClientConfig{
		Endpoint: cfg.LLM.Endpoint,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
		Version:  version,
		Context: llm.PromptContext{
			Crop:   cfg.LLM.Crop,
			Region: cfg.LLM.Region,
			Season: cfg.LLM.Season,
		},
	}, logger)

	var presenter port.CanvasPresenter = hardware.NewTerminalPresenter(os.Stdout)
	if cfg.Hardware.DisplayPreviewPath != "" {
		presenter = hardware.NewPNGPresenter(cfg.Hardware.DisplayPreviewPath)
	}

	renderer := app.NewRenderer(app.RendererConfig{
		Version:      version,
		MaxChars:     cfg.Hardware.DisplayMaxChars,
		RelayPin:     cfg.Hardware.RelayPin,
		RelayKeyword: cfg.Hardware.RelayKeyword,
		RelayHold:    cfg.Hardware.RelayHold,
	},
		hardware.NewMockGPIO(logger),
		hardware.NewTextCanvas(cfg.Hardware.DisplayWidth, cfg.Hardware.DisplayHeight),
		presenter,
		hardware.NewMockSpeaker(logger),
		logger,
	)

	var notifier port.Notifier = telegram.NopNotifier{}
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		n, err := telegram.NewNotifier(cfg.Telegram.Token, cfg.Telegram.APIEndpoint, cfg.Telegram.ChatID, logger)
		if err != nil {
			// Telegram необязателен: без него анализ продолжается
			logger.WithError(err).Warn("Telegram notifier disabled")
		} else {
			notifier = n
		}
	}

	svc := app.NewAdvisoryService(
		source,
		analyzer,
		advisor,
		renderer,
		storage.NewFileSink(cfg.Image.OutputPath),
		notifier,
		app.ServiceOptions{
			FallbackOnError: cfg.LLM.FallbackOnError,
			Annotate:        cfg.Image.Annotate,
		},
		logger,
	)

	return &Container{AdvisoryService: svc}, nil
}
