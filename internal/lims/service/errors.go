package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

// Not-found errors wrap store.ErrNotFound (and so domain.ErrNotFound).
var (
	ErrUserNotFound     = fmt.Errorf("user %w", store.ErrNotFound)
	ErrEnzymeNotFound   = fmt.Errorf("enzyme %w", store.ErrNotFound)
	ErrOrganismNotFound = fmt.Errorf("organism %w", store.ErrNotFound)
	ErrBatchNotFound    = fmt.Errorf("batch %w", store.ErrNotFound)
	ErrFileNotFound     = fmt.Errorf("file %w", store.ErrNotFound)
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidTransition     = errors.New("batch status transition not allowed")
	ErrOwnRole               = errors.New("cannot change your own role")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file too large")
)

// notFound swaps store.ErrNotFound for the caller's typed error.
func notFound(err, typed error) error {
	if errors.Is(err, store.ErrNotFound) {
		return typed
	}
	return err
}
