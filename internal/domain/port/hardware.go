package port

import (
	"context"
	"image"
)

// Level уровень цифрового выхода
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// DigitalOutput цифровой выход (реле)
type DigitalOutput interface {
	// Setup настраивает пин на выход
	Setup(pin int) error

	// SetOutput выставляет уровень на пине
	SetOutput(pin int, level Level) error
}

// CanvasComposer рисует строки на кадре дисплея
type CanvasComposer interface {
	Compose(lines []string, bold bool) image.Image
}

// CanvasPresenter показывает готовый кадр дисплея
type CanvasPresenter interface {
	Present(ctx context.Context, canvas image.Image) error
}

// Speaker произносит фразу и ждёт окончания
type Speaker interface {
	Say(ctx context.Context, text string) error
}
