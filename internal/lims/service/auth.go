package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        domain.User
}

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	Audience []string
	TokenTTL time.Duration
}

// Register creates a lab_tech account. Higher roles are granted by an admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	in.Email = domain.NormalizeEmail(in.Email)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if err := domain.ValidateRegistration(in.Email, in.DisplayName, in.Password); err != nil {
		return domain.User{}, err
	}

	// 2. Hash password
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Store the user
	u := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: hash,
		Role:         domain.RoleLabTech,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// Login checks the password and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	u, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// burn the same time as a real check
			_ = cryptox.VerifyPassword(password, dummyHash())
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", u.ID))
		return Session{}, ErrInvalidCredentials
	}

	if err := s.Store.Users().TouchLastLogin(ctx, u.ID); err != nil {
		return Session{}, fmt.Errorf("touch last login: %w", err)
	}
	u.LastLogin = &now

	claims := jwtx.NewAccessClaims(jwtx.AccessParams{
		Subject:  u.ID,
		Email:    u.Email,
		Name:     u.DisplayName,
		Role:     string(u.Role),
		Issuer:   s.Issuer,
		Audience: s.Audience,
		TTL:      s.TokenTTL,
	}, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign access token", slog.Any("error", err))
		return Session{}, err
	}

	l.Info("user logged in", slog.String("user_id", u.ID))
	return Session{AccessToken: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, notFound(err, ErrUserNotFound)
	}
	return u, nil
}

// UpdateDisplayName renames the user and the copies held on their batches.
func (s *AuthService) UpdateDisplayName(ctx context.Context, userID, displayName string) (domain.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		v := &domain.ValidationError{}
		v.Add("displayName", "is required")
		return domain.User{}, v
	}

	var u domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateDisplayName(ctx, userID, displayName); err != nil {
			return notFound(err, ErrUserNotFound)
		}
		n, err := tx.Batches().RenameLabTech(ctx, userID, displayName)
		if err != nil {
			return err
		}
		slogx.FromContext(ctx).Debug("lab tech name refreshed", slog.Int64("batches", n))

		u, err = tx.Users().GetUserByID(ctx, userID)
		return err
	})
	return u, err
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("not-a-real-password")
	return h
})
