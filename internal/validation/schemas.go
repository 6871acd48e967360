package validation

import "strings"

// RegisterRequest is the validated payload of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,passwordcomplexity"`
}

// Normalize trims the username and canonicalises the email to its
// trimmed, lowercased form. The password is left untouched: it is hashed
// exactly as the user typed it.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginRequest is the validated payload of POST /auth/login.
//
// The password carries no complexity rule here: complexity is enforced at
// registration only, and re-checking it at login would lock out accounts
// created before a rule change.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize canonicalises the email to its trimmed, lowercased form.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// CreateArticleRequest is the validated payload of POST /articles.
type CreateArticleRequest struct {
	Title    string `json:"title" validate:"required,max=255,containsalpha"`
	Body     string `json:"body" validate:"required,max=5000,containsalpha"`
	Category string `json:"category" validate:"required,max=100,containsalpha"`
}

// Normalize is a no-op: article fields are stored verbatim.
func (r *CreateArticleRequest) Normalize() {}

// fieldErrorMessages maps "<Struct>.<Field>.<tag>" to the client-facing
// message reported when that rule fails. Every declared rule has an
// entry; DecodeAndValidate falls back to a generic message for anything
// unmapped.
var fieldErrorMessages = map[string]string{
	"RegisterRequest.Username.required": "Username is required",
	"RegisterRequest.Username.min":      "Username must be at least 3 characters",
	"RegisterRequest.Username.max":      "Username must not exceed 50 characters",
	"RegisterRequest.Email.required":    "Email is required",
	"RegisterRequest.Email.email":       "Email must be a valid email",
	"RegisterRequest.Password.required": "Password is required",
	"RegisterRequest.Password.passwordcomplexity": "Password must be at least 8 characters long and include uppercase, lowercase, number, and a special character",

	"LoginRequest.Email.required":    "Email is required",
	"LoginRequest.Email.email":       "Email must be a valid email",
	"LoginRequest.Password.required": "Password is required",

	"CreateArticleRequest.Title.required":         "Title is required",
	"CreateArticleRequest.Title.max":              "Title must not exceed 255 characters",
	"CreateArticleRequest.Title.containsalpha":    "Title must contain letters",
	"CreateArticleRequest.Body.required":          "Body is required",
	"CreateArticleRequest.Body.max":               "Body must not exceed 5000 characters",
	"CreateArticleRequest.Body.containsalpha":     "Body must contain letters",
	"CreateArticleRequest.Category.required":      "Category is required",
	"CreateArticleRequest.Category.max":           "Category must not exceed 100 characters",
	"CreateArticleRequest.Category.containsalpha": "Category must contain letters",
}
