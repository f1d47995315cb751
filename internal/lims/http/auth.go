package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the first admin account.
//
//	@Summary		Bootstrap the LIMS
//	@Description	Creates the first admin user. Only available when a bootstrap token is configured and no user exists yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token"
//	@Param			request				body		limssdk.BootstrapRequest		true	"Admin account"
//	@Success		201					{object}	limssdk.User					"Created admin"
//	@Failure		400					{object}	limssdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	limssdk.ErrorResponse			"Missing or invalid bootstrap token"
//	@Failure		404					{object}	limssdk.ErrorResponse			"Bootstrap not enabled"
//	@Failure		409					{object}	limssdk.ErrorResponse			"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		writeError(w, http.StatusNotFound, limssdk.ErrorCodeNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body
	var req limssdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	// 4. Perform bootstrap
	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, service.RegisterInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(admin))
}

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates a lab_tech account.
//
//	@Summary		Register
//	@Description	Creates a new account with the lab_tech role. Higher roles are granted by an admin.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		limssdk.RegisterRequest			true	"Account details"
//	@Success		201		{object}	limssdk.User					"Created user"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed"
//	@Failure		409		{object}	limssdk.ErrorResponse			"Email already registered"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req limssdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleLogin exchanges email and password for an access token.
//
//	@Summary		Login
//	@Description	Verifies the credentials and returns a signed access token. Records the login time.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		limssdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	limssdk.TokenResponse	"Access token"
//	@Failure		400		{object}	limssdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	limssdk.ErrorResponse	"Invalid email or password"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req limssdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, limssdk.TokenResponse{
		AccessToken: sess.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(sess.ExpiresAt).Seconds()),
		ExpiresAt:   sess.ExpiresAt,
		User:        toUser(sess.User),
	})
}

// HandleMe returns the caller's account.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	limssdk.User			"Current user"
//	@Failure		401	{object}	limssdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Account no longer exists"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.AuthService.Me(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdateMe changes the caller's display name.
//
//	@Summary		Update current user
//	@Description	Changes the display name. Batches recorded by the user show the new name.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		limssdk.UpdateMeRequest			true	"New display name"
//	@Success		200		{object}	limssdk.User					"Updated user"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	limssdk.ErrorResponse			"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [patch].
func (h *AuthHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var req limssdk.UpdateMeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	u, err := h.AuthService.UpdateDisplayName(r.Context(), userID, req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("display name changed", slog.String("user_id", userID))
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
