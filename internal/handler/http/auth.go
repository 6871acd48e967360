package http

import (
	"errors"
	"net/http"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/service"
	"github.com/apozdeyev/article-board/internal/store"
	"github.com/apozdeyev/article-board/internal/validation"
	"github.com/apozdeyev/article-board/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request validation.RegisterRequest
	if messages := validation.DecodeAndValidate(r.Body, &request); messages != nil {
		log.Debug().Strs("messages", messages).Msg("registration payload rejected")
		writeValidationError(w, messages)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Warn().Str("email", request.Email).Msg("user already exists")
			writeError(w, http.StatusConflict, "user already exists")
			return
		}
		h.internalError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	writeSuccess(w, http.StatusCreated, "user registered successfully", registeredUser.ToResponse())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request validation.LoginRequest
	if messages := validation.DecodeAndValidate(r.Body, &request); messages != nil {
		log.Debug().Strs("messages", messages).Msg("login payload rejected")
		writeValidationError(w, messages)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("email", request.Email).Msg("invalid credentials")
			writeError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	writeSuccess(w, http.StatusOK, "login successful", models.LoginResponse{
		User:  foundUser.ToResponse(),
		Token: token.SignedString,
	})
}
