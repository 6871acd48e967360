package http

import (
	"context"
	"testing"

	"github.com/apozdeyev/article-board/internal/config"
	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/service"
	"github.com/apozdeyev/article-board/internal/validation"
	"github.com/apozdeyev/article-board/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, request validation.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request validation.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request validation.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request validation.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockArticleService implements service.ArticleService for unit tests.
type mockArticleService struct {
	submitFn func(ctx context.Context, request validation.CreateArticleRequest, userID int64) (models.Article, error)
	listFn   func(ctx context.Context) ([]models.ArticleWithAuthor, error)
}

func (m *mockArticleService) Submit(ctx context.Context, request validation.CreateArticleRequest, userID int64) (models.Article, error) {
	return m.submitFn(ctx, request, userID)
}

func (m *mockArticleService) List(ctx context.Context) ([]models.ArticleWithAuthor, error) {
	return m.listFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services with a
// development-grade config and a silent logger.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	cfg := &config.StructuredConfig{
		App: config.App{Environment: config.EnvDevelopment},
	}
	return NewHandler(services, cfg, logger.Nop())
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}
