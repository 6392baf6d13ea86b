package entity

import "fmt"

// PromptVersion вариант промпта и оформления вывода
type PromptVersion string

const (
	PromptV1 PromptVersion = "v1" // свободный текст совета
	PromptV2 PromptVersion = "v2" // JSON с диагнозом, тяжестью и лечением
)

// ParsePromptVersion проверяет строковое значение версии.
func ParsePromptVersion(s string) (PromptVersion, error) {
	switch v := PromptVersion(s); v {
	case PromptV1, PromptV2:
		return v, nil
	default:
		return "", fmt.Errorf("unknown prompt version %q", s)
	}
}
