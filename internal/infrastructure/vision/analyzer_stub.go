//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"leaf-advisor/internal/domain/entity"
)

// GoCVAnalyzer заглушка анализатора (без OpenCV).
type GoCVAnalyzer struct {
	Params Params
}

// NewGoCVAnalyzer создаёт анализатор-заглушку.
func NewGoCVAnalyzer(params Params) *GoCVAnalyzer {
	return &GoCVAnalyzer{Params: params}
}

// Analyze возвращает ошибку, если сборка без тега gocv.
func (a *GoCVAnalyzer) Analyze(ctx context.Context, imageData []byte) (*entity.LeafFeatures, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

// Export возвращает ошибку, если сборка без тега gocv.
func (a *GoCVAnalyzer) Export(imageData []byte, overlay []string) ([]byte, error) {
	_ = imageData
	_ = overlay
	return nil, errors.New("gocv build tag is not enabled")
}
