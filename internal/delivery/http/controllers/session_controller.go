package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"wemetstudio/internal/delivery/http/helpers"
	"wemetstudio/internal/delivery/http/middleware"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

// CreateSessionRequest is the optional request body for POST /sessions.
type CreateSessionRequest struct {
	Lang string `json:"lang"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	if c.Lang != "" && i18n.Normalize(c.Lang) == "" {
		return []string{"lang must be one of ru, en, he"}
	}
	return nil
}

// CreateSessionResponse is the response body for POST /sessions.
type CreateSessionResponse struct {
	Token     string             `json:"token"`
	TokenType string             `json:"token_type"`
	ExpiresIn int64              `json:"expires_in"`
	Session   domain.SessionInfo `json:"session"`
}

// SetLanguageRequest is the request body for PUT /session/language.
type SetLanguageRequest struct {
	Lang string `json:"lang"`
}

// Validate implements Validator.
func (s SetLanguageRequest) Validate() []string {
	if strings.TrimSpace(s.Lang) == "" {
		return []string{"lang is required"}
	}
	return nil
}

type SessionController struct {
	Logger   *slog.Logger
	Sessions *services.SessionRegistry
	Tokens   domain.SessionTokenIssuer
	TTL      time.Duration
}

func NewSessionController(logger *slog.Logger, sessions *services.SessionRegistry, tokens domain.SessionTokenIssuer, ttl time.Duration) *SessionController {
	return &SessionController{
		Logger:   logger,
		Sessions: sessions,
		Tokens:   tokens,
		TTL:      ttl,
	}
}

// CreateSession godoc
// @Summary Start a browser session
// @Description Creates an anonymous session holding a cart, a calendar and a notification slot. The language comes from the body or, when omitted, from Accept-Language.
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body CreateSessionRequest false "Preferred language"
// @Success 201 {object} helpers.APIResponse{data=controllers.CreateSessionResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength != 0 {
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	lang := req.Lang
	if lang == "" {
		lang = i18n.Negotiate(r.Header.Get("Accept-Language"))
	}
	s := c.Sessions.Create(lang)
	token, err := c.Tokens.Issue(s.ID, c.TTL)
	if err != nil {
		c.Sessions.Delete(s.ID)
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not issue session token")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateSessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(c.TTL.Seconds()),
		Session:   s.Info(),
	})
}

// GetSession godoc
// @Summary Get the current session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.SessionInfo}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /session [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Info())
}

// SetLanguage godoc
// @Summary Switch the session language
// @Description Accepts ru, en, he or a locale tag such as he-IL.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetLanguageRequest true "Language"
// @Success 200 {object} helpers.APIResponse{data=domain.SessionInfo}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /session/language [put]
func (c *SessionController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req SetLanguageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := s.SetLang(req.Lang); err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Info())
}

// EndSession godoc
// @Summary End the current session
// @Description Drops the cart, calendar and notification state. The token stops working.
// @Tags sessions
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /session [delete]
func (c *SessionController) EndSession(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	c.Sessions.Delete(s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// sessionFrom returns the session set by middleware.RequireSession or writes 401.
func sessionFrom(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return s, true
}
