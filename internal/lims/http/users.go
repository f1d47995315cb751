package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList returns every account.
//
//	@Summary		List users
//	@Description	Requires the admin role.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	limssdk.ListUsersResponse	"Users"
//	@Failure		401	{object}	limssdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403	{object}	limssdk.ErrorResponse		"Requires admin"
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := limssdk.ListUsersResponse{Users: make([]limssdk.User, len(users))}
	for i, u := range users {
		resp.Users[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleChangeRole sets another user's role.
//
//	@Summary		Change user role
//	@Description	Requires the admin role. Admins cannot change their own role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		limssdk.ChangeRoleRequest		true	"New role"
//	@Success		200		{object}	limssdk.User					"Updated user"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Unknown role"
//	@Failure		403		{object}	limssdk.ErrorResponse			"Requires admin"
//	@Failure		404		{object}	limssdk.ErrorResponse			"User not found"
//	@Failure		409		{object}	limssdk.ErrorResponse			"Own role"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/role [patch].
func (h *UsersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	var req limssdk.ChangeRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	actor := identityFromRequest(r)
	u, err := h.UserService.ChangeRole(r.Context(), actor, r.PathValue("id"), req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user role changed",
		slog.String("actor_id", actor.UserID),
		slog.String("user_id", u.ID),
		slog.String("role", string(u.Role)),
	)
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
