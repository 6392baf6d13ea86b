//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"leaf-advisor/internal/domain/entity"
)

// CameraSource снимает один кадр с камеры.
type CameraSource struct {
	Device int
}

// NewCameraSource создаёт источник для устройства с указанным индексом.
func NewCameraSource(device int) *CameraSource {
	return &CameraSource{Device: device}
}

// Load открывает камеру, читает кадр и кодирует его в JPEG.
func (c *CameraSource) Load(ctx context.Context) ([]byte, error) {
	_ = ctx
	capture, err := gocv.OpenVideoCapture(c.Device)
	if err != nil {
		return nil, fmt.Errorf("%w: open camera %d: %v", entity.ErrImageLoad, c.Device, err)
	}
	defer capture.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	if ok := capture.Read(&frame); !ok || frame.Empty() {
		return nil, fmt.Errorf("%w: camera %d returned no frame", entity.ErrImageLoad, c.Device)
	}

	data, err := encodeJPEG(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageLoad, err)
	}
	return data, nil
}
