package service

import (
	"context"
	"fmt"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/store"
	"github.com/apozdeyev/article-board/internal/validation"
	"github.com/apozdeyev/article-board/models"
)

// articleService is the concrete implementation of ArticleService.
type articleService struct {
	articleRepository store.ArticleRepository
	logger            *logger.Logger
}

func NewArticleService(articleRepository store.ArticleRepository, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		logger:            logger,
	}
}

// Submit persists a new article attributed to userID.
//
// userID comes from the verified token of the authenticated request, never
// from the request body, so an article can only ever be attributed to its
// actual submitter.
//
// Returns the persisted article (with server-assigned id and timestamp) or a
// wrapped storage error (e.g. store.ErrSubmitterNotFound when the account was
// deleted between token issuance and submission).
func (s *articleService) Submit(ctx context.Context, request validation.CreateArticleRequest, userID int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	article := models.Article{
		Title:       request.Title,
		Body:        request.Body,
		Category:    request.Category,
		SubmittedBy: userID,
	}

	createdArticle, err := s.articleRepository.CreateArticle(ctx, article)
	if err != nil {
		log.Err(err).Int64("submitted_by", userID).Msg("article creation ended with error")
		return models.Article{}, fmt.Errorf("article creation ended with error: %w", err)
	}

	return createdArticle, nil
}

// List returns every article joined with its author's username, newest first.
// An empty board yields an empty slice, never nil.
func (s *articleService) List(ctx context.Context) ([]models.ArticleWithAuthor, error) {
	log := logger.FromContext(ctx)

	articles, err := s.articleRepository.ListArticles(ctx)
	if err != nil {
		log.Err(err).Msg("article listing ended with error")
		return nil, fmt.Errorf("article listing ended with error: %w", err)
	}

	return articles, nil
}
