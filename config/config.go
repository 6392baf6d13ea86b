package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config параметры одного прогона анализа
type Config struct {
	Image struct {
		Path        string
		UseWebcam   bool
		CameraIndex int
		OutputPath  string
		Annotate    bool
	}
	LLM struct {
		Endpoint        string
		Model           string
		Timeout         time.Duration
		PromptVersion   string
		FallbackOnError bool
		Crop            string
		Region          string
		Season          string
	}
	Hardware struct {
		RelayPin           int
		RelayKeyword       string
		RelayHold          time.Duration
		DisplayWidth       int
		DisplayHeight      int
		DisplayMaxChars    int
		DisplayPreviewPath string
	}
	Telegram struct {
		Token       string
		ChatID      int64
		APIEndpoint string // шаблон URL Bot API с двумя %s: токен и метод
	}
	Logging struct {
		Level  string
		Format string
	}
}

// MinDisplayMaxChars наименьший бюджет строки, в который помещается символ и многоточие "..."
const MinDisplayMaxChars = 4

// Load читает .env и переменные окружения, подставляя значения по умолчанию.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Image.Path = getEnv("LEAF_IMAGE_PATH", "leaf.jpg")
	cfg.Image.UseWebcam = getEnvBool("LEAF_USE_WEBCAM", false)
	cfg.Image.CameraIndex = getEnvInt("LEAF_CAMERA_INDEX", 0)
	cfg.Image.OutputPath = getEnv("LEAF_OUTPUT_PATH", "crop_analysis.jpg")
	cfg.Image.Annotate = getEnvBool("LEAF_ANNOTATE_OUTPUT", false)

	cfg.LLM.Endpoint = getEnv("OLLAMA_ENDPOINT", "http://localhost:11434/api/generate")
	cfg.LLM.Model = getEnv("OLLAMA_MODEL", "tinyllama")
	cfg.LLM.Timeout = time.Duration(getEnvInt("OLLAMA_TIMEOUT_SECONDS", 60)) * time.Second
	cfg.LLM.PromptVersion = getEnv("PROMPT_VERSION", "v2")
	cfg.LLM.FallbackOnError = getEnvBool("ADVISORY_FALLBACK", true)
	cfg.LLM.Crop = getEnv("CROP_NAME", "tomato")
	cfg.LLM.Region = getEnv("CROP_REGION", "")
	cfg.LLM.Season = getEnv("CROP_SEASON", "")

	cfg.Hardware.RelayPin = getEnvInt("RELAY_PIN", 23)
	cfg.Hardware.RelayKeyword = getEnv("RELAY_KEYWORD", "irrigate")
	cfg.Hardware.RelayHold = time.Duration(getEnvInt("RELAY_HOLD_MS", 2000)) * time.Millisecond
	cfg.Hardware.DisplayWidth = getEnvInt("DISPLAY_WIDTH", 128)
	cfg.Hardware.DisplayHeight = getEnvInt("DISPLAY_HEIGHT", 32)
	cfg.Hardware.DisplayMaxChars = getEnvInt("DISPLAY_MAX_CHARS", 18)
	if cfg.Hardware.DisplayMaxChars < MinDisplayMaxChars {
		cfg.Hardware.DisplayMaxChars = 18
	}
	cfg.Hardware.DisplayPreviewPath = getEnv("DISPLAY_PREVIEW_PATH", "")

	cfg.Telegram.Token = getEnv("TELEGRAM_TOKEN", "")
	cfg.Telegram.ChatID = int64(getEnvInt("TELEGRAM_CHAT_ID", 0))
	cfg.Telegram.APIEndpoint = getEnv("TELEGRAM_API_ENDPOINT", "")

	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")
	cfg.Logging.Format = getEnv("LOG_FORMAT", "text")

	return cfg, nil
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает int значение переменной окружения или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
