package telegram

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"leaf-advisor/internal/domain/entity"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testReport() *entity.Report {
	return &entity.Report{
		Metrics:        entity.Metrics{DiseasePercentage: 3.5, WiltingScore: 2, AvgCircularity: 0.5, Severity: entity.SeverityMedium},
		Advisory:       entity.Advisory{DiseaseName: "Septoria", Severity: "Medium", Treatment: "Irrigate less, spray chlorothalonil"},
		RelayTriggered: true,
		OutputPath:     "out/crop_analysis.jpg",
	}
}

func TestNotifier_SendsPhoto(t *testing.T) {
	fake := &fakeSender{}
	n := newNotifier(fake, 42, quietLogger())

	require.NoError(t, n.Notify(context.Background(), testReport(), []byte{0xff, 0xd8}))
	require.Len(t, fake.sent, 1)

	photo, ok := fake.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	require.Equal(t, int64(42), photo.ChatID)
	require.Contains(t, photo.Caption, "Septoria")
	fb, ok := photo.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	require.Equal(t, "crop_analysis.jpg", fb.Name)
}

func TestNotifier_TextWithoutImage(t *testing.T) {
	fake := &fakeSender{}
	n := newNotifier(fake, 7, quietLogger())

	require.NoError(t, n.Notify(context.Background(), testReport(), nil))
	msg, ok := fake.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Contains(t, msg.Text, "Treatment: Irrigate less")
}

func TestNotifier_SendError(t *testing.T) {
	fake := &fakeSender{err: errors.New("network down")}
	n := newNotifier(fake, 7, quietLogger())
	require.Error(t, n.Notify(context.Background(), testReport(), nil))
}

func TestCaption(t *testing.T) {
	c := Caption(testReport())
	require.Contains(t, c, "Diseased area: 3.50%")
	require.Contains(t, c, "wilting score: 2")
	require.True(t, strings.HasSuffix(c, "Irrigation triggered"))

	long := testReport()
	long.Advisory.Treatment = strings.Repeat("a", 2000)
	require.LessOrEqual(t, len([]rune(Caption(long))), maxCaption)
}

func TestCaption_UTF16Limit(t *testing.T) {
	r := testReport()
	// каждый 🌱 занимает две единицы UTF-16
	r.Advisory.Treatment = strings.Repeat("🌱", 600)

	c := Caption(r)
	units := len(utf16.Encode([]rune(c)))
	require.LessOrEqual(t, units, captionLimit-captionHeadroom)
	require.True(t, strings.HasSuffix(c, "..."))
}

func TestTruncateUTF16(t *testing.T) {
	require.Equal(t, "short", truncateUTF16("short", 10))
	require.Equal(t, "🌿🌿...", truncateUTF16("🌿🌿🌿🌿", 7))
	require.Equal(t, "🌿...", truncateUTF16("🌿🌿🌿🌿", 6))
}
