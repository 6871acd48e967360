package service

import (
	"github.com/apozdeyev/article-board/internal/config"
	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/store"
)

type Services struct {
	AuthService    AuthService
	ArticleService ArticleService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		ArticleService: NewArticleService(repositories.ArticleRepository, logger),
	}
}
