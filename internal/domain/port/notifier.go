package port

import (
	"context"

	"leaf-advisor/internal/domain/entity"
)

// Notifier отправляет отчёт наружу (например, в Telegram)
type Notifier interface {
	Notify(ctx context.Context, report *entity.Report, image []byte) error
}
