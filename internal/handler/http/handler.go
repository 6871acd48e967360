package http

import (
	"github.com/apozdeyev/article-board/internal/config"
	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/service"
)

type Handler struct {
	services *service.Services

	// exposeErrorDetail controls whether 500 responses carry the internal
	// error text. It is false in production.
	exposeErrorDetail bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		exposeErrorDetail: !cfg.IsProduction(),
		logger:            logger,
	}
}
