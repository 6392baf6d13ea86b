package hardware

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"leaf-advisor/internal/domain/port"
)

// TerminalPresenter выводит холст псевдографикой.
type TerminalPresenter struct {
	Out io.Writer
}

// NewTerminalPresenter создаёт презентер для указанного вывода
func NewTerminalPresenter(out io.Writer) *TerminalPresenter {
	return &TerminalPresenter{Out: out}
}

// Present печатает рамку с точками холста
func (p *TerminalPresenter) Present(ctx context.Context, canvas image.Image) error {
	_ = ctx
	_, err := io.WriteString(p.Out, ASCII(canvas))
	return err
}

// ASCII переводит холст в текст: '#' для светлых точек, ' ' для тёмных.
func ASCII(canvas image.Image) string {
	b := canvas.Bounds()
	border := "+" + strings.Repeat("-", b.Dx()) + "+\n"

	var sb strings.Builder
	sb.WriteString(border)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.WriteByte('|')
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := canvas.At(x, y).RGBA()
			if r+g+bl > 3*0x7fff {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// PNGPresenter сохраняет холст в PNG-файл (показ «один раз»).
type PNGPresenter struct {
	Path string
}

// NewPNGPresenter создаёт презентер с путём файла предпросмотра
func NewPNGPresenter(path string) *PNGPresenter {
	return &PNGPresenter{Path: path}
}

// Present перезаписывает файл предпросмотра
func (p *PNGPresenter) Present(ctx context.Context, canvas image.Image) error {
	_ = ctx
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("create display preview: %w", err)
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return fmt.Errorf("encode display preview: %w", err)
	}
	return f.Close()
}

// Проверка реализации интерфейса
var (
	_ port.CanvasPresenter = (*TerminalPresenter)(nil)
	_ port.CanvasPresenter = (*PNGPresenter)(nil)
)
