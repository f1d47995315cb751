package jwtx

import (
	"crypto/ed25519"
	"encoding/base64"
)

// JWK is the public half of a signing key, as published in a JWKS.
// Only Ed25519 (OKP) keys are produced.
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use,omitempty"`
	Alg string `json:"alg,omitempty"`
	Kid string `json:"kid,omitempty"`
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"` // base64url public key
}

type JWKS struct {
	Keys []JWK `json:"keys"`
}

func NewEd25519JWK(kid string, pub ed25519.PublicKey) JWK {
	return JWK{
		Kty: "OKP",
		Use: "sig",
		Alg: "EdDSA",
		Kid: kid,
		Crv: "Ed25519",
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}
}
