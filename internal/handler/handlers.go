package handler

import (
	"github.com/apozdeyev/article-board/internal/config"
	"github.com/apozdeyev/article-board/internal/handler/http"
	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
