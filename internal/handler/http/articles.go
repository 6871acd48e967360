package http

import (
	"errors"
	"net/http"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/store"
	"github.com/apozdeyev/article-board/internal/utils"
	"github.com/apozdeyev/article-board/internal/validation"
)

func (h *Handler) submitArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		// only reachable if the route is registered without the auth
		// middleware
		h.internalError(w, r, errors.New("no user ID in request context"))
		return
	}

	var request validation.CreateArticleRequest
	if messages := validation.DecodeAndValidate(r.Body, &request); messages != nil {
		log.Debug().Strs("messages", messages).Msg("article payload rejected")
		writeValidationError(w, messages)
		return
	}

	article, err := h.services.ArticleService.Submit(ctx, request, userID)
	if err != nil {
		if errors.Is(err, store.ErrSubmitterNotFound) {
			// the account vanished after the token was issued
			log.Warn().Int64("id", userID).Msg("submitter no longer exists")
			writeError(w, http.StatusForbidden, ErrInvalidOrExpiredToken.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}

	log.Info().Int64("id", article.ArticleID).Int64("submitted_by", userID).Msg("article submitted")

	writeSuccess(w, http.StatusCreated, "article submitted successfully", article)
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.ArticleService.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "", articles)
}
