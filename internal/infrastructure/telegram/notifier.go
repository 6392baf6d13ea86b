package telegram

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/entity"
	"leaf-advisor/internal/domain/port"
)

// Telegram ограничивает подпись к фото 1024 единицами UTF-16, оставляем запас.
const (
	captionLimit    = 1024
	captionHeadroom = 8
	maxCaption      = captionLimit - captionHeadroom
)

// sender часть BotAPI, которой пользуется уведомитель
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет отчёт в чат Telegram
type Notifier struct {
	api    sender
	chatID int64
	logger *logrus.Logger
}

// NewNotifier авторизуется в Telegram и создаёт уведомитель; пустой apiEndpoint означает api.telegram.org
func NewNotifier(token, apiEndpoint string, chatID int64, logger *logrus.Logger) (*Notifier, error) {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	logger.Infof("Authorized on account %s", api.Self.UserName)
	return newNotifier(api, chatID, logger), nil
}

func newNotifier(api sender, chatID int64, logger *logrus.Logger) *Notifier {
	return &Notifier{api: api, chatID: chatID, logger: logger}
}

// Notify отправляет сохранённое изображение с подписью, без изображения только текст
func (n *Notifier) Notify(ctx context.Context, report *entity.Report, image []byte) error {
	_ = ctx
	caption := Caption(report)

	var msg tgbotapi.Chattable
	if len(image) > 0 {
		photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{
			Name:  filepath.Base(report.OutputPath),
			Bytes: image,
		})
		photo.Caption = caption
		msg = photo
	} else {
		msg = tgbotapi.NewMessage(n.chatID, caption)
	}

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	n.logger.WithField("chat_id", n.chatID).Info("Report sent to Telegram")
	return nil
}

// Caption текст отчёта для подписи
func Caption(r *entity.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🌿 Disease: %s\n", r.Advisory.DiseaseName)
	fmt.Fprintf(&sb, "⚠️ Severity: %s\n", r.Advisory.Severity)
	fmt.Fprintf(&sb, "📊 Diseased area: %.2f%%, wilting score: %d, circularity: %.2f\n",
		r.Metrics.DiseasePercentage, r.Metrics.WiltingScore, r.Metrics.AvgCircularity)
	fmt.Fprintf(&sb, "💊 Treatment: %s", r.Advisory.Treatment)
	if r.RelayTriggered {
		sb.WriteString("\n💧 Irrigation triggered")
	}
	return truncateUTF16(sb.String(), maxCaption)
}

// truncateUTF16 обрезает строку так, чтобы её длина в UTF-16 не превышала limit, с многоточием в конце.
func truncateUTF16(s string, limit int) string {
	if utf16Len(s) <= limit {
		return s
	}
	budget := limit - utf16Len(entity.Ellipsis)
	var sb strings.Builder
	used := 0
	for _, r := range s {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if used+n > budget {
			break
		}
		sb.WriteRune(r)
		used += n
	}
	sb.WriteString(entity.Ellipsis)
	return sb.String()
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// NopNotifier ничего не отправляет (Telegram не настроен)
type NopNotifier struct{}

// Notify ничего не делает
func (NopNotifier) Notify(context.Context, *entity.Report, []byte) error { return nil }

// Проверка реализации интерфейса
var (
	_ port.Notifier = (*Notifier)(nil)
	_ port.Notifier = NopNotifier{}
)
