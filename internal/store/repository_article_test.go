package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/models"
	"github.com/jackc/pgerrcode"
)

func newTestArticleRepo(t *testing.T) (*articleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &articleRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateArticle_Success(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	article := models.Article{
		Title:       "Go generics in practice",
		Body:        "A long body",
		Category:    "Tech",
		SubmittedBy: 3,
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "title", "body", "category", "submitted_by", "created_at"}).
		AddRow(10, article.Title, article.Body, article.Category, article.SubmittedBy, now)

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs(article.Title, article.Body, article.Category, article.SubmittedBy).
		WillReturnRows(rows)

	created, err := repo.CreateArticle(ctx, article)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ArticleID != 10 {
		t.Errorf("expected ArticleID=10, got %d", created.ArticleID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned created_at")
	}
}

func TestCreateArticle_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()
	article := models.Article{Title: "t", Body: "b", Category: "c", SubmittedBy: 999}

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateArticle(ctx, article)
	if !errors.Is(err, ErrSubmitterNotFound) {
		t.Fatalf("expected ErrSubmitterNotFound, got %v", err)
	}
}

func TestCreateArticle_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateArticle(ctx, models.Article{})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestListArticles_Success(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	newest := time.Now()
	older := newest.Add(-time.Hour)

	rows := sqlmock.
		NewRows([]string{"id", "title", "body", "category", "created_at", "username"}).
		AddRow(2, "Second", "body two", "Tech", newest, "alice").
		AddRow(1, "First", "body one", "Life", older, "bob")

	mock.ExpectQuery("SELECT a.id, a.title").
		WillReturnRows(rows)

	articles, err := repo.ListArticles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Username != "alice" || articles[1].Username != "bob" {
		t.Errorf("expected usernames joined into rows, got %+v", articles)
	}
	if !articles[0].CreatedAt.After(articles[1].CreatedAt) {
		t.Error("expected newest-first ordering preserved from the query")
	}
}

func TestListArticles_Empty(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT a.id, a.title").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "category", "created_at", "username"}))

	articles, err := repo.ListArticles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if articles == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(articles) != 0 {
		t.Errorf("expected no articles, got %d", len(articles))
	}
}

func TestListArticles_ScanError(t *testing.T) {
	repo, mock, db := newTestArticleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("SELECT a.id, a.title").
		WillReturnRows(rows)

	_, err := repo.ListArticles(ctx)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}
