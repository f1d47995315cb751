package http

import (
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
)

// requireRole gates a route on the role hierarchy. It must run after
// httpx.AuthnMiddleware.
func requireRole(role domain.Role) httpx.Middleware {
	return httpx.RequireClaims("requires role "+string(role), func(c jwtx.Claims) bool {
		id := identityFromClaims(c)
		return id.Can(role)
	})
}

func identityFromClaims(c jwtx.Claims) domain.Identity {
	return domain.Identity{
		UserID:      c.Subject,
		DisplayName: c.Name,
		Role:        domain.Role(c.Role),
	}
}

// identityFromRequest returns the caller verified by AuthnMiddleware.
func identityFromRequest(r *http.Request) domain.Identity {
	c, _ := httpx.ClaimsFromContext(r.Context())
	return identityFromClaims(c)
}
