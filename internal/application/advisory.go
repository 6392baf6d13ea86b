package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/entity"
	"leaf-advisor/internal/domain/port"
)

// ServiceOptions политика обработки рекомендаций и сохранения
type ServiceOptions struct {
	FallbackOnError bool // подставлять запасную рекомендацию вместо ошибки
	Annotate        bool // наносить метрики на сохраняемое изображение
}

// AdvisoryService прогон: изображение → метрики → рекомендация → вывод → сохранение
type AdvisoryService struct {
	source   port.ImageSource
	analyzer port.LeafAnalyzer
	advisor  port.Advisor
	renderer *Renderer
	sink     port.ImageSink
	notifier port.Notifier
	opts     ServiceOptions
	logger   *logrus.Logger
}

// NewAdvisoryService создаёт сервис анализа листа
func NewAdvisoryService(
	source port.ImageSource,
	analyzer port.LeafAnalyzer,
	advisor port.Advisor,
	renderer *Renderer,
	sink port.ImageSink,
	notifier port.Notifier,
	opts ServiceOptions,
	logger *logrus.Logger,
) *AdvisoryService {
	return &AdvisoryService{
		source:   source,
		analyzer: analyzer,
		advisor:  advisor,
		renderer: renderer,
		sink:     sink,
		notifier: notifier,
		opts:     opts,
		logger:   logger,
	}
}

// Run выполняет один прогон анализа.
// Ошибка загрузки изображения прерывает прогон до любого вывода.
func (s *AdvisoryService) Run(ctx context.Context) (*entity.Report, error) {
	report := &entity.Report{RunID: uuid.NewString()}
	log := s.logger.WithField("run_id", report.RunID)

	imageData, err := s.source.Load(ctx)
	if err != nil {
		if !errors.Is(err, entity.ErrImageLoad) {
			err = fmt.Errorf("%w: %v", entity.ErrImageLoad, err)
		}
		return nil, err
	}
	log.WithField("bytes", len(imageData)).Info("Image loaded")

	features, err := s.analyzer.Analyze(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("analyze image: %w", err)
	}

	report.Metrics = entity.NewMetrics(*features)
	log.WithFields(logrus.Fields{
		"disease_pct":     fmt.Sprintf("%.2f", report.Metrics.DiseasePercentage),
		"wilting_score":   report.Metrics.WiltingScore,
		"avg_circularity": fmt.Sprintf("%.3f", report.Metrics.AvgCircularity),
		"severity":        report.Metrics.Severity,
	}).Info("Leaf metrics computed")

	advisory, err := s.advise(ctx, report.Metrics)
	if err != nil {
		if !s.opts.FallbackOnError {
			return nil, fmt.Errorf("advisory: %w", err)
		}
		log.WithError(err).Warn("Advisory failed, using fallback")
		report.AdvisoryError = err.Error()
		advisory = entity.FallbackAdvisory(report.Metrics.Severity)
	}
	report.Advisory = advisory

	rendered := s.renderer.Render(ctx, report.Metrics, advisory)
	report.DisplayLines = rendered.Lines
	report.Utterance = rendered.Utterance
	report.RelayTriggered = rendered.RelayTriggered

	var overlay []string
	if s.opts.Annotate {
		overlay = []string{
			fmt.Sprintf("Disease: %.2f%% (%s)", report.Metrics.DiseasePercentage, report.Metrics.Severity),
			fmt.Sprintf("Wilt: %d  Circ: %.2f", report.Metrics.WiltingScore, report.Metrics.AvgCircularity),
		}
	}
	output, err := s.analyzer.Export(imageData, overlay)
	if err != nil {
		return nil, fmt.Errorf("export image: %w", err)
	}
	report.OutputPath, err = s.sink.Save(ctx, output)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, report, output); err != nil {
		log.WithError(err).Warn("Report notification failed")
	}

	log.WithFields(logrus.Fields{
		"disease":   advisory.DiseaseName,
		"severity":  advisory.Severity,
		"output":    report.OutputPath,
		"irrigated": report.RelayTriggered,
	}).Infof("Advice: %s", advisory.Treatment)

	return report, nil
}

// advise запрашивает рекомендацию; паника клиента тоже считается ошибкой
func (s *AdvisoryService) advise(ctx context.Context, m entity.Metrics) (adv entity.Advisory, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("advisor panic: %v", r)
		}
	}()

	res, err := s.advisor.Advise(ctx, m)
	if err != nil {
		return entity.Advisory{}, err
	}
	if res == nil {
		return entity.Advisory{}, errors.New("advisor returned no advisory")
	}
	return res.WithDefaults(m.Severity), nil
}
