package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
)

// SigningKeys bundles the signer with the key set and verifier built from it.
type SigningKeys struct {
	Signer   *jwtx.EdDSASigner
	KeySet   *jwtx.KeySet
	Verifier *jwtx.EdDSAVerifier
}

// InitSigningKeys loads the Ed25519 key from cfg.SigningKeyFile, creating it
// on first start. Without a file the key is ephemeral and every token is
// invalidated on restart.
func InitSigningKeys(cfg Config, logger *slog.Logger) (*SigningKeys, error) {
	var (
		pemKey []byte
		err    error
	)
	if cfg.SigningKeyFile == "" {
		pemKey, err = cryptox.GenerateEd25519Key()
		logger.Warn("using ephemeral signing key; tokens will not survive a restart")
	} else {
		pemKey, err = cryptox.LoadOrGenerateEd25519Key(cfg.SigningKeyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("signing key: %w", err)
	}

	// The kid is only stable for a persisted key; derive it from the public half.
	unkeyed, err := jwtx.NewSignerEdDSA("", pemKey)
	if err != nil {
		return nil, fmt.Errorf("signing key: %w", err)
	}
	sum := sha256.Sum256(unkeyed.PublicKey())
	kid := hex.EncodeToString(sum[:8])

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, fmt.Errorf("signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	logger.Info("signing key loaded", "kid", kid, "alg", signer.Alg())

	return &SigningKeys{
		Signer:   signer,
		KeySet:   keys,
		Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer, nil),
	}, nil
}
