package hardware

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"leaf-advisor/internal/domain/port"
)

// LineHeight шаг строк на монохромном дисплее.
const LineHeight = 10

// CanvasOptions размер дисплея и оформление текста
type CanvasOptions struct {
	Width  int
	Height int
	Bold   bool // рисовать дважды со сдвигом в 1 пиксель
}

// RenderLines рисует строки по центру монохромного холста.
// Пиксели холста либо 0, либо 255.
func RenderLines(opts CanvasOptions, lines []string) *image.Gray {
	canvas := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		x := (opts.Width - width) / 2
		if x < 0 {
			x = 0
		}
		// basicfont выше шага строк, поэтому строки слегка перекрываются, как на 32-пиксельном OLED
		y := i*LineHeight + ascent - 2

		drawString(canvas, face, x, y, line)
		if opts.Bold {
			drawString(canvas, face, x+1, y, line)
		}
	}
	return canvas
}

func drawString(dst *image.Gray, face font.Face, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray{Y: 255}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextCanvas монохромный дисплей заданного размера
type TextCanvas struct {
	Width  int
	Height int
}

// NewTextCanvas создаёт холст дисплея
func NewTextCanvas(width, height int) *TextCanvas {
	return &TextCanvas{Width: width, Height: height}
}

// Compose рисует строки по центру
func (c *TextCanvas) Compose(lines []string, bold bool) image.Image {
	return RenderLines(CanvasOptions{Width: c.Width, Height: c.Height, Bold: bold}, lines)
}

// Проверка реализации интерфейса
var _ port.CanvasComposer = (*TextCanvas)(nil)
