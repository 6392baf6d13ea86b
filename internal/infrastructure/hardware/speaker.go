package hardware

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/port"
)

// MockSpeaker имитация синтеза речи: фраза пишется в лог, вызов возвращается после «произнесения».
type MockSpeaker struct {
	mu     sync.Mutex
	logger *logrus.Logger
	spoken []string
}

// NewMockSpeaker создаёт имитацию синтезатора
func NewMockSpeaker(logger *logrus.Logger) *MockSpeaker {
	return &MockSpeaker{logger: logger}
}

// Say «произносит» фразу и ждёт окончания
func (s *MockSpeaker) Say(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.spoken = append(s.spoken, text)
	s.mu.Unlock()

	s.logger.WithField("utterance", text).Info("Speaking")
	return nil
}

// Spoken возвращает произнесённые фразы
func (s *MockSpeaker) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.spoken...)
}

// Проверка реализации интерфейса
var _ port.Speaker = (*MockSpeaker)(nil)
