package main

import (
	"context"
	"log"
	"os"

	"leaf-advisor/config"
	"leaf-advisor/internal/api"
	"leaf-advisor/internal/container"
	"leaf-advisor/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cmd := api.NewRootCommand(cfg, func(ctx context.Context, cfg *config.Config) error {
		logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

		// Собираем сервис анализа
		appContainer, err := container.New(cfg, logger)
		if err != nil {
			return err
		}

		// Ошибку прогона печатает api.Execute
		_, err = appContainer.AdvisoryService.Run(ctx)
		return err
	})

	os.Exit(api.Execute(cmd, os.Stderr))
}
