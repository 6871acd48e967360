package store

import (
	"context"
	"fmt"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/models"
	"github.com/jackc/pgerrcode"
)

// articleRepository is the PostgreSQL-backed implementation of
// [ArticleRepository].
type articleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArticleRepository constructs an [ArticleRepository] backed by the
// provided database connection and logger.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateArticle persists a new article and returns the fully populated
// [models.Article] with server-assigned fields (ArticleID, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on submitted_by →
//     [ErrSubmitterNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateArticleQuery(article.Title, article.Body, article.Category, article.SubmittedBy)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.CreateArticle").Msg("error: building insert query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&article.ArticleID, &article.Title, &article.Body, &article.Category, &article.SubmittedBy, &article.CreatedAt); err != nil {
		log.Err(err).Str("func", "*articleRepository.CreateArticle").Msg("error: inserting article")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Article{}, ErrSubmitterNotFound
		default:
			return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return article, nil
}

// ListArticles returns every stored article joined with the submitting
// user's username, ordered by creation time descending. The projection
// never touches credential columns.
func (r *articleRepository) ListArticles(ctx context.Context) ([]models.ArticleWithAuthor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListArticlesQuery()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: executing list query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	articles := make([]models.ArticleWithAuthor, 0)
	for rows.Next() {
		var a models.ArticleWithAuthor
		if err := rows.Scan(&a.ArticleID, &a.Title, &a.Body, &a.Category, &a.CreatedAt, &a.Username); err != nil {
			log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: scanning article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error: iterating article rows")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return articles, nil
}
