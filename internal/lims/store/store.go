package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
)

var (
	// ErrNotFound also matches domain.ErrNotFound.
	ErrNotFound      = fmt.Errorf("store: %w", domain.ErrNotFound)
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Each collection is exposed as its own repository so a Tx
// can hand out the same repositories bound to the transaction.
type Store interface {
	Users() Users
	Enzymes() Enzymes
	Organisms() Organisms
	Batches() Batches

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate email returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalized address.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns all users ordered by creation date (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	UpdateUserRole(ctx context.Context, userID string, role domain.Role) error
	UpdateDisplayName(ctx context.Context, userID, displayName string) error

	// TouchLastLogin records a successful sign-in.
	TouchLastLogin(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type EnzymeFilter struct {
	Type           domain.EnzymeType
	Specialization domain.Specialization
	WithNewick     bool // only enzymes carrying a phylogeny
}

type Enzymes interface {
	CreateEnzyme(ctx context.Context, e domain.Enzyme) error
	GetEnzymeByID(ctx context.Context, id string) (domain.Enzyme, error)

	// ListEnzymes returns matching enzymes ordered by name.
	ListEnzymes(ctx context.Context, f EnzymeFilter) ([]domain.Enzyme, error)

	// UpdateEnzyme replaces the mutable fields and bumps updated_at.
	UpdateEnzyme(ctx context.Context, e domain.Enzyme) error

	// DeleteEnzyme removes the enzyme only. Batches keep their loose
	// reference and copied name.
	DeleteEnzyme(ctx context.Context, id string) error

	CountEnzymes(ctx context.Context) (int64, error)
}

type OrganismFilter struct {
	Type     domain.OrganismType
	EnzymeID string // organisms expressing this enzyme
}

type Organisms interface {
	CreateOrganism(ctx context.Context, o domain.Organism) error
	GetOrganismByID(ctx context.Context, id string) (domain.Organism, error)

	// ListOrganisms returns matching organisms ordered by name.
	ListOrganisms(ctx context.Context, f OrganismFilter) ([]domain.Organism, error)

	// UpdateOrganism replaces every mutable field, including the file lists.
	UpdateOrganism(ctx context.Context, o domain.Organism) error

	DeleteOrganism(ctx context.Context, id string) error
	CountOrganisms(ctx context.Context) (int64, error)
}

type BatchFilter struct {
	EnzymeID  string
	LabTechID string
	Status    domain.BatchStatus
}

type Batches interface {
	CreateBatch(ctx context.Context, b domain.Batch) error
	GetBatchByID(ctx context.Context, id string) (domain.Batch, error)

	// ListBatches returns matching batches, newest first.
	ListBatches(ctx context.Context, f BatchFilter) ([]domain.Batch, error)

	UpdateBatchStatus(ctx context.Context, id string, status domain.BatchStatus) error
	DeleteBatch(ctx context.Context, id string) error
	CountBatches(ctx context.Context, f BatchFilter) (int64, error)

	// RenameEnzyme rewrites the copied enzyme name on every batch of the enzyme.
	RenameEnzyme(ctx context.Context, enzymeID, name string) (int64, error)

	// RenameLabTech rewrites the copied lab tech name on every batch of the user.
	RenameLabTech(ctx context.Context, userID, name string) (int64, error)

	// RefreshDenormalizedNames resyncs every copied name with its source
	// record and returns the number of batches touched.
	RefreshDenormalizedNames(ctx context.Context) (int64, error)
}
