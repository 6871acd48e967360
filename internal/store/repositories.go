package store

import (
	"context"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrUserAlreadyExists on a duplicate
	// email or username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by (lowercased) email.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByEmailOrUsername returns any user matching either value.
	// Returns ErrUserNotFound when neither matches.
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error)
}

// ArticleRepository is the data-access contract for articles.
type ArticleRepository interface {
	// CreateArticle persists a new article and returns it with the
	// server-assigned id and timestamp. Returns ErrSubmitterNotFound when
	// submitted_by references no existing user.
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)

	// ListArticles returns every article joined with the submitting
	// user's username, newest first.
	ListArticles(ctx context.Context) ([]models.ArticleWithAuthor, error)
}

// Repositories bundles every repository behind one constructor so the
// wiring in cmd/server stays a single call.
type Repositories struct {
	UserRepository    UserRepository
	ArticleRepository ArticleRepository
}

// NewRepositories constructs all repositories over the shared connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ArticleRepository: NewArticleRepository(db, logger),
	}
}
