package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Декодеры форматов для проверки входного файла.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"leaf-advisor/internal/domain/entity"
	"leaf-advisor/internal/domain/port"
)

// FileSource читает изображение с диска
type FileSource struct {
	Path string
}

// NewFileSource создаёт источник для указанного пути
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load читает файл и проверяет, что это изображение
func (s *FileSource) Load(ctx context.Context) ([]byte, error) {
	_ = ctx
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageLoad, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", entity.ErrImageLoad, s.Path)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a readable image: %v", entity.ErrImageLoad, s.Path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("%w: %s has zero size (%s)", entity.ErrImageLoad, s.Path, format)
	}

	return data, nil
}

// FileSink сохраняет результат, перезаписывая прежний файл
type FileSink struct {
	Path string
}

// NewFileSink создаёт приёмник для указанного пути
func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

// Save записывает данные и возвращает путь к файлу
func (s *FileSink) Save(ctx context.Context, data []byte) (string, error) {
	_ = ctx
	if dir := filepath.Dir(s.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return "", fmt.Errorf("write output image: %w", err)
	}
	return s.Path, nil
}

// Проверка реализации интерфейсов
var (
	_ port.ImageSource = (*FileSource)(nil)
	_ port.ImageSink   = (*FileSink)(nil)
)
