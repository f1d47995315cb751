package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, notFound(err, ErrUserNotFound)
	}
	return u, nil
}

// ChangeRole sets another user's role. Admins cannot change their own role,
// which keeps at least one admin in place.
func (s *UserService) ChangeRole(ctx context.Context, actor domain.Identity, userID, role string) (domain.User, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		v := &domain.ValidationError{}
		v.Add("role", "must be one of admin, researcher, lab_tech")
		return domain.User{}, v
	}
	if actor.UserID == userID {
		return domain.User{}, ErrOwnRole
	}

	var u domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateUserRole(ctx, userID, r); err != nil {
			return notFound(err, ErrUserNotFound)
		}
		u, err = tx.Users().GetUserByID(ctx, userID)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user role changed",
		slog.String("user_id", userID),
		slog.String("role", string(r)),
		slog.String("changed_by", actor.UserID),
	)
	return u, nil
}
