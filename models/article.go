package models

import "time"

// Article represents a single submitted article. Articles are immutable
// after creation and are never deleted through the API.
type Article struct {
	// ArticleID is the internal unique identifier of the article,
	// assigned by the database on creation.
	ArticleID int64 `json:"id"`

	// Title is the article headline (1–255 characters).
	Title string `json:"title"`

	// Body is the article text (1–5000 characters).
	Body string `json:"body"`

	// Category is a free-form category label (1–100 characters).
	Category string `json:"category"`

	// SubmittedBy references the UserID of the submitting user.
	SubmittedBy int64 `json:"submitted_by"`

	// CreatedAt is the server-assigned submission timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "articles"
}

// ArticleWithAuthor is an Article joined with the submitting user's
// username. It is the row shape of the public article listing and
// deliberately excludes every credential-related user field.
type ArticleWithAuthor struct {
	ArticleID int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`

	// Username is the handle of the user who submitted the article.
	Username string `json:"username"`
}
