package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"leaf-advisor/internal/domain/entity"
	"leaf-advisor/internal/domain/port"
)

// Классы ошибок запроса к генератору.
var (
	ErrTransport = errors.New("advisory transport error")
	ErrStatus    = errors.New("advisory endpoint returned non-2xx status")
	ErrDecode    = errors.New("advisory response is not valid JSON")
	ErrSchema    = errors.New("advisory response has unexpected shape")
)

// GenerateRequest тело запроса /api/generate
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

// GenerateResponse ответ /api/generate без стриминга
type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// ClientConfig параметры клиента генератора
type ClientConfig struct {
	Endpoint string
	Model    string
	Timeout  time.Duration
	Version  entity.PromptVersion
	Context  PromptContext
}

// OllamaClient клиент локального генератора текста
type OllamaClient struct {
	cfg        ClientConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewOllamaClient создает новый клиент; нулевой Timeout означает отсутствие ограничения
func NewOllamaClient(cfg ClientConfig, logger *logrus.Logger) *OllamaClient {
	return &OllamaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Advise строит промпт по метрикам, отправляет его и разбирает ответ
func (c *OllamaClient) Advise(ctx context.Context, metrics entity.Metrics) (*entity.Advisory, error) {
	prompt, err := BuildPrompt(c.cfg.Version, c.cfg.Context, metrics)
	if err != nil {
		return nil, err
	}

	raw, err := c.Generate(ctx, prompt, responseFormat(c.cfg.Version))
	if err != nil {
		return nil, err
	}

	advisory, err := ParseAdvice(c.cfg.Version, raw, metrics.Severity)
	if err != nil {
		return nil, err
	}
	return &advisory, nil
}

// Generate отправляет один блокирующий запрос и возвращает поле response
func (c *OllamaClient) Generate(ctx context.Context, prompt, format string) (string, error) {
	payload, err := json.Marshal(GenerateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Format: format,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithFields(logrus.Fields{
		"endpoint": c.cfg.Endpoint,
		"model":    c.cfg.Model,
	}).Debug("Sending generate request")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d, body: %s", ErrStatus, resp.StatusCode, truncateBody(body))
	}

	var gen GenerateResponse
	if err := json.Unmarshal(body, &gen); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if gen.Error != "" {
		return "", fmt.Errorf("%w: endpoint error: %s", ErrSchema, gen.Error)
	}

	c.logger.WithField("elapsed", time.Since(started).Round(time.Millisecond)).Debug("Generate response received")
	return gen.Response, nil
}

// ParseAdvice разбирает поле response в рекомендацию.
// v1 принимает любой непустой текст как лечение, v2 ожидает JSON-объект.
func ParseAdvice(version entity.PromptVersion, raw string, severity entity.Severity) (entity.Advisory, error) {
	text := strings.TrimSpace(raw)

	if version == entity.PromptV1 {
		if text == "" {
			return entity.Advisory{}, fmt.Errorf("%w: empty advice", ErrSchema)
		}
		return entity.Advisory{Treatment: text}.WithDefaults(severity), nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(extractObject(text)), &fields); err != nil {
		return entity.Advisory{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if fields == nil {
		return entity.Advisory{}, fmt.Errorf("%w: response is not an object", ErrSchema)
	}

	advisory := entity.Advisory{
		DiseaseName: stringField(fields, "disease_name"),
		Severity:    stringField(fields, "severity"),
		Treatment:   stringField(fields, "treatment"),
	}
	return advisory.WithDefaults(severity), nil
}

// extractObject вырезает JSON-объект, если модель обернула его в текст или ```-блок.
func extractObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func truncateBody(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

// Проверка реализации интерфейса
var _ port.Advisor = (*OllamaClient)(nil)
