package service

import (
	"context"

	"github.com/apozdeyev/article-board/models"
)

// mockUserRepository implements store.UserRepository with pluggable
// function fields, so each test overrides only the calls it cares about.
type mockUserRepository struct {
	createUserFunc                func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc           func(ctx context.Context, email string) (models.User, error)
	findUserByEmailOrUsernameFunc func(ctx context.Context, email, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error) {
	return m.findUserByEmailOrUsernameFunc(ctx, email, username)
}

// mockArticleRepository implements store.ArticleRepository.
type mockArticleRepository struct {
	createArticleFunc func(ctx context.Context, article models.Article) (models.Article, error)
	listArticlesFunc  func(ctx context.Context) ([]models.ArticleWithAuthor, error)
}

func (m *mockArticleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	return m.createArticleFunc(ctx, article)
}

func (m *mockArticleRepository) ListArticles(ctx context.Context) ([]models.ArticleWithAuthor, error) {
	return m.listArticlesFunc(ctx)
}
