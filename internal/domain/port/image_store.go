package port

import "context"

// ImageSource источник изображения (файл или камера)
type ImageSource interface {
	// Load возвращает закодированное изображение или ошибку entity.ErrImageLoad
	Load(ctx context.Context) ([]byte, error)
}

// ImageSink место сохранения результата
type ImageSink interface {
	// Save перезаписывает файл результата
	Save(ctx context.Context, data []byte) (string, error)
}
