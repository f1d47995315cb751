package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
)

// RequireClaims lets the request through only when allow accepts the
// verified claims. It must run after AuthnMiddleware. desc names the
// requirement in the 403 body, e.g. "requires role researcher".
func RequireClaims(desc string, allow func(jwtx.Claims) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !allow(claims) {
				WriteError(w, http.StatusForbidden, "insufficient_role", desc)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
