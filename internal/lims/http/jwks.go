package http

import (
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

// JWKSHandler publishes the token verification keys so other services can
// check LIMS access tokens without calling back.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify access tokens.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	limssdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=300")
		httpx.WriteJSON(w, http.StatusOK, limssdk.JWKSResponse(keys.PublicJWKS()))
	}
}
