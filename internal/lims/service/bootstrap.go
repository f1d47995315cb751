package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type BootstrapService struct {
	Store store.Store
	Token string // pre-configured bootstrap token; empty disables bootstrap
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the first admin account on an empty system.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if done, err := s.IsBootstrapped(ctx); err != nil {
		return domain.User{}, err
	} else if done {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, ErrBootstrapAlready
	}

	// 2. Validate provided token
	if s.Token == "" || !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	// 3. Validate and hash
	in.Email = domain.NormalizeEmail(in.Email)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if err := domain.ValidateRegistration(in.Email, in.DisplayName, in.Password); err != nil {
		return domain.User{}, err
	}
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	// 4. Create the admin
	admin := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// re-check inside the tx so two racing requests cannot both win
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("bootstrap: %w", err)
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", admin.ID))
	return admin, nil
}
