package store

import (
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByEmailOrUsername = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1 OR username = $2;`
)

// psql is the shared statement builder configured for PostgreSQL
// ($N placeholders).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildCreateArticleQuery builds the article INSERT returning every
// server-assigned column.
func buildCreateArticleQuery(title, body, category string, submittedBy int64) (string, []any, error) {
	return psql.
		Insert("articles").
		Columns("title", "body", "category", "submitted_by").
		Values(title, body, category, submittedBy).
		Suffix("RETURNING id, title, body, category, submitted_by, created_at").
		ToSql()
}

// buildListArticlesQuery builds the public listing query: all articles
// joined with the submitting user's username, newest first.
func buildListArticlesQuery() (string, []any, error) {
	return psql.
		Select("a.id", "a.title", "a.body", "a.category", "a.created_at", "u.username").
		From("articles a").
		Join("users u ON a.submitted_by = u.id").
		OrderBy("a.created_at DESC").
		ToSql()
}
