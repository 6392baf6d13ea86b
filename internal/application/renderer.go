package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/entity"
	"leaf-advisor/internal/domain/port"
)

// speechChars сколько символов совета уходит в речь
const speechChars = 50

// RendererConfig параметры вывода результата
type RendererConfig struct {
	Version      entity.PromptVersion
	MaxChars     int
	RelayPin     int
	RelayKeyword string
	RelayHold    time.Duration
}

// RenderResult что было показано, сказано и включено
type RenderResult struct {
	Lines          entity.DisplayLines
	Utterance      string
	RelayTriggered bool
}

// Renderer выводит рекомендацию на дисплей, в речь и управляет реле
type Renderer struct {
	cfg       RendererConfig
	gpio      port.DigitalOutput
	composer  port.CanvasComposer
	presenter port.CanvasPresenter
	speaker   port.Speaker
	logger    *logrus.Logger
}

// NewRenderer создаёт рендерер с заданными устройствами
func NewRenderer(
	cfg RendererConfig,
	gpio port.DigitalOutput,
	composer port.CanvasComposer,
	presenter port.CanvasPresenter,
	speaker port.Speaker,
	logger *logrus.Logger,
) *Renderer {
	return &Renderer{
		cfg:       cfg,
		gpio:      gpio,
		composer:  composer,
		presenter: presenter,
		speaker:   speaker,
		logger:    logger,
	}
}

// DisplayLines строки дисплея для выбранной версии
func (r *Renderer) DisplayLines(m entity.Metrics, a entity.Advisory) entity.DisplayLines {
	if r.cfg.Version == entity.PromptV1 {
		return entity.NewDisplayLines(r.cfg.MaxChars,
			fmt.Sprintf("Disease: %.1f%%", m.DiseasePercentage),
			fmt.Sprintf("Wilt: %d", m.WiltingScore),
			a.Treatment,
		)
	}
	return entity.NewDisplayLines(r.cfg.MaxChars,
		a.DiseaseName,
		"Sev: "+a.Severity,
		a.Treatment,
	)
}

// Utterance фраза для синтеза речи
func (r *Renderer) Utterance(a entity.Advisory) string {
	if r.cfg.Version == entity.PromptV1 {
		return entity.Clip(a.Treatment, speechChars)
	}
	return a.DiseaseName + ". " + entity.Clip(a.Treatment, speechChars)
}

// Render выполняет три независимых действия; ошибки устройств только логируются
func (r *Renderer) Render(ctx context.Context, m entity.Metrics, a entity.Advisory) RenderResult {
	res := RenderResult{
		Lines:     r.DisplayLines(m, a),
		Utterance: r.Utterance(a),
	}

	canvas := r.composer.Compose(res.Lines, r.cfg.Version == entity.PromptV2)
	if err := r.presenter.Present(ctx, canvas); err != nil {
		r.logger.WithError(err).Warn("Display output failed")
	}

	if err := r.speaker.Say(ctx, res.Utterance); err != nil {
		r.logger.WithError(err).Warn("Speech output failed")
	}

	triggered, err := r.driveRelay(ctx, a.Treatment)
	if err != nil {
		r.logger.WithError(err).Warn("Relay output failed")
	}
	res.RelayTriggered = triggered

	return res
}

// driveRelay настраивает пин и, если в совете есть ключевое слово, держит его HIGH заданное время
func (r *Renderer) driveRelay(ctx context.Context, treatment string) (bool, error) {
	pin := r.cfg.RelayPin
	if err := r.gpio.Setup(pin); err != nil {
		return false, err
	}

	keyword := strings.ToLower(r.cfg.RelayKeyword)
	if keyword == "" || !strings.Contains(strings.ToLower(treatment), keyword) {
		return false, nil
	}

	if err := r.gpio.SetOutput(pin, port.High); err != nil {
		return false, err
	}
	r.logger.WithField("pin", pin).Info("Irrigation triggered (mock)")

	holdErr := r.hold(ctx)
	// Пин выключаем даже при отмене контекста.
	if err := r.gpio.SetOutput(pin, port.Low); err != nil {
		return true, err
	}
	return true, holdErr
}

func (r *Renderer) hold(ctx context.Context) error {
	if r.cfg.RelayHold <= 0 {
		return nil
	}
	timer := time.NewTimer(r.cfg.RelayHold)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
