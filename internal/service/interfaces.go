package service

import (
	"context"

	"github.com/apozdeyev/article-board/internal/validation"
	"github.com/apozdeyev/article-board/models"
)

type AuthService interface {
	// Register creates a new account from a validated registration
	// request. Returns store.ErrUserAlreadyExists when the email or
	// username is already taken.
	Register(ctx context.Context, request validation.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the matching user.
	// Returns ErrInvalidCredentials on any failure, never revealing
	// whether the email or the password was wrong.
	Login(ctx context.Context, request validation.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ArticleService interface {
	// Submit persists a new article on behalf of the authenticated user.
	Submit(ctx context.Context, request validation.CreateArticleRequest, userID int64) (models.Article, error)

	// List returns every article joined with its author, newest first.
	List(ctx context.Context) ([]models.ArticleWithAuthor, error)
}
