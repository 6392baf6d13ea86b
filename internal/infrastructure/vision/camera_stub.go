//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"fmt"

	"leaf-advisor/internal/domain/entity"
)

// CameraSource заглушка камеры (без OpenCV).
type CameraSource struct {
	Device int
}

// NewCameraSource создаёт источник-заглушку.
func NewCameraSource(device int) *CameraSource {
	return &CameraSource{Device: device}
}

// Load возвращает ошибку, если сборка без тега gocv.
func (c *CameraSource) Load(ctx context.Context) ([]byte, error) {
	_ = ctx
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", entity.ErrImageLoad)
}
