package app

import (
	"context"
	"errors"
	"image"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/entity"
)

type fakeSource struct {
	data []byte
	err  error
}

func (f *fakeSource) Load(context.Context) ([]byte, error) { return f.data, f.err }

type fakeAnalyzer struct {
	features entity.LeafFeatures
	err      error
	overlays [][]string
}

func (f *fakeAnalyzer) Analyze(context.Context, []byte) (*entity.LeafFeatures, error) {
	if f.err != nil {
		return nil, f.err
	}
	feat := f.features
	return &feat, nil
}

func (f *fakeAnalyzer) Export(data []byte, overlay []string) ([]byte, error) {
	f.overlays = append(f.overlays, overlay)
	if len(overlay) == 0 {
		return append([]byte(nil), data...), nil
	}
	return append(append([]byte(nil), data...), []byte(strings.Join(overlay, "|"))...), nil
}

type fakeAdvisor struct {
	advisory *entity.Advisory
	err      error
	panics   bool
}

func (f *fakeAdvisor) Advise(context.Context, entity.Metrics) (*entity.Advisory, error) {
	if f.panics {
		panic("boom")
	}
	return f.advisory, f.err
}

type memSink struct {
	saved [][]byte
	err   error
}

func (m *memSink) Save(_ context.Context, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, data)
	return "crop_analysis.jpg", nil
}

type fakeNotifier struct {
	reports []*entity.Report
	err     error
}

func (f *fakeNotifier) Notify(_ context.Context, r *entity.Report, _ []byte) error {
	f.reports = append(f.reports, r)
	return f.err
}

type countingPresenter struct {
	canvases []image.Image
	err      error
}

func (p *countingPresenter) Present(_ context.Context, c image.Image) error {
	p.canvases = append(p.canvases, c)
	return p.err
}

var errEndpointDown = errors.New("connection refused")

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type recordingComposer struct {
	lines [][]string
	bold  []bool
}

func (c *recordingComposer) Compose(lines []string, bold bool) image.Image {
	c.lines = append(c.lines, lines)
	c.bold = append(c.bold, bold)
	return image.NewGray(image.Rect(0, 0, 1, 1))
}
