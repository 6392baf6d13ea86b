package port

import (
	"context"

	"leaf-advisor/internal/domain/entity"
)

// LeafAnalyzer интерфейс анализатора изображения листа
type LeafAnalyzer interface {
	// Analyze считает долю поражения, оценку увядания и среднюю округлость
	Analyze(ctx context.Context, imageData []byte) (*entity.LeafFeatures, error)

	// Export кодирует изображение для сохранения, при непустом overlay наносит строки поверх
	Export(imageData []byte, overlay []string) ([]byte, error)
}
