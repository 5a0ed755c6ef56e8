package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/saulo-duarte/sahayak-lambda/internal/auth"
	"github.com/saulo-duarte/sahayak-lambda/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func setJWTCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body for Google login")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Code == "" {
		config.Fail(w, http.StatusBadRequest, "code is required")
		return
	}

	u, token, err := h.service.GoogleLogin(r.Context(), payload.Code)
	if err != nil {
		log.WithError(err).Error("Google login failed")
		config.Fail(w, http.StatusUnauthorized, "login failed")
		return
	}

	setJWTCookie(w, token)
	config.Success(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("jwt")
	if err != nil {
		config.Fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Refresh requested with invalid token")
		config.Fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	token, err := h.service.RefreshToken(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Fail(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		log.WithError(err).Error("Failed to refresh token")
		config.Fail(w, http.StatusInternalServerError, "failed to refresh token")
		return
	}

	setJWTCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.service.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Fail(w, http.StatusNotFound, "user not found")
			return
		}
		log.WithError(err).Error("Failed to load user")
		config.Fail(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	config.Success(w, http.StatusOK, u)
}
