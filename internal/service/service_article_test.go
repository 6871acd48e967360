package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/store"
	"github.com/apozdeyev/article-board/internal/validation"
	"github.com/apozdeyev/article-board/models"
)

func TestArticleService_Submit(t *testing.T) {
	request := validation.CreateArticleRequest{
		Title:    "Go worker pools",
		Body:     "A short write-up on bounded concurrency.",
		Category: "Tech",
	}

	repo := &mockArticleRepository{
		createArticleFunc: func(ctx context.Context, article models.Article) (models.Article, error) {
			article.ArticleID = 11
			article.CreatedAt = time.Now()
			return article, nil
		},
	}

	article, err := NewArticleService(repo, logger.Nop()).Submit(context.Background(), request, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(11), article.ArticleID)
	assert.Equal(t, "Go worker pools", article.Title)
	assert.Equal(t, int64(5), article.SubmittedBy)
}

func TestArticleService_Submit_SubmitterNotFound(t *testing.T) {
	repo := &mockArticleRepository{
		createArticleFunc: func(ctx context.Context, article models.Article) (models.Article, error) {
			return models.Article{}, store.ErrSubmitterNotFound
		},
	}

	_, err := NewArticleService(repo, logger.Nop()).Submit(context.Background(), validation.CreateArticleRequest{
		Title:    "Orphaned",
		Body:     "body",
		Category: "Tech",
	}, 404)

	assert.ErrorIs(t, err, store.ErrSubmitterNotFound)
}

func TestArticleService_List(t *testing.T) {
	rows := []models.ArticleWithAuthor{
		{ArticleID: 2, Title: "newer", Username: "bob"},
		{ArticleID: 1, Title: "older", Username: "alice"},
	}

	repo := &mockArticleRepository{
		listArticlesFunc: func(ctx context.Context) ([]models.ArticleWithAuthor, error) {
			return rows, nil
		},
	}

	articles, err := NewArticleService(repo, logger.Nop()).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, articles)
}

func TestArticleService_List_Error(t *testing.T) {
	wantErr := errors.New("connection reset")
	repo := &mockArticleRepository{
		listArticlesFunc: func(ctx context.Context) ([]models.ArticleWithAuthor, error) {
			return nil, wantErr
		},
	}

	_, err := NewArticleService(repo, logger.Nop()).List(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
