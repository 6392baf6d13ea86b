package port

import (
	"context"

	"leaf-advisor/internal/domain/entity"
)

// Advisor интерфейс генератора рекомендаций
type Advisor interface {
	// Advise запрашивает диагноз и лечение по метрикам
	Advise(ctx context.Context, metrics entity.Metrics) (*entity.Advisory, error)
}
