package hardware

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/port"
)

// MockGPIO имитация цифровых выходов: пишет в лог и запоминает уровни.
type MockGPIO struct {
	mu      sync.Mutex
	logger  *logrus.Logger
	outputs map[int]port.Level
	history []string
}

// NewMockGPIO создаёт имитацию GPIO
func NewMockGPIO(logger *logrus.Logger) *MockGPIO {
	return &MockGPIO{
		logger:  logger,
		outputs: make(map[int]port.Level),
	}
}

// Setup настраивает пин на выход (уровень LOW)
func (g *MockGPIO) Setup(pin int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.outputs[pin] = port.Low
	g.history = append(g.history, fmt.Sprintf("setup %d", pin))
	g.logger.WithField("pin", pin).Info("Mock GPIO pin setup")
	return nil
}

// SetOutput выставляет уровень; пин должен быть настроен
func (g *MockGPIO) SetOutput(pin int, level port.Level) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.outputs[pin]; !ok {
		return fmt.Errorf("gpio pin %d is not set up", pin)
	}
	g.outputs[pin] = level
	g.history = append(g.history, fmt.Sprintf("%d=%s", pin, level))
	g.logger.WithFields(logrus.Fields{"pin": pin, "level": level.String()}).Info("Mock GPIO pin set")
	return nil
}

// Level возвращает текущий уровень пина
func (g *MockGPIO) Level(pin int) port.Level {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outputs[pin]
}

// History возвращает журнал операций
func (g *MockGPIO) History() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.history...)
}

// Проверка реализации интерфейса
var _ port.DigitalOutput = (*MockGPIO)(nil)
