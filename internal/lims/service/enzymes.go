package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/yield"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type EnzymeService struct {
	Store store.Store
}

// Create stores a new enzyme. ID and timestamps are assigned here.
func (s *EnzymeService) Create(ctx context.Context, e domain.Enzyme) (domain.Enzyme, error) {
	e.Name = strings.TrimSpace(e.Name)
	if err := e.Validate(); err != nil {
		return domain.Enzyme{}, err
	}

	now := time.Now().UTC()
	e.ID = idx.New().String()
	e.CreatedAt, e.UpdatedAt = now, now
	if err := s.Store.Enzymes().CreateEnzyme(ctx, e); err != nil {
		return domain.Enzyme{}, fmt.Errorf("create enzyme: %w", err)
	}

	slogx.FromContext(ctx).Info("enzyme created", slog.String("enzyme_id", e.ID), slog.String("name", e.Name))
	return e, nil
}

func (s *EnzymeService) Get(ctx context.Context, id string) (domain.Enzyme, error) {
	e, err := s.Store.Enzymes().GetEnzymeByID(ctx, id)
	if err != nil {
		return domain.Enzyme{}, notFound(err, ErrEnzymeNotFound)
	}
	return e, nil
}

func (s *EnzymeService) List(ctx context.Context, f store.EnzymeFilter) ([]domain.Enzyme, error) {
	return s.Store.Enzymes().ListEnzymes(ctx, f)
}

// Update replaces the mutable fields. A rename is copied onto the enzyme's
// batches in the same transaction.
func (s *EnzymeService) Update(ctx context.Context, id string, e domain.Enzyme) (domain.Enzyme, error) {
	e.Name = strings.TrimSpace(e.Name)
	if err := e.Validate(); err != nil {
		return domain.Enzyme{}, err
	}

	var out domain.Enzyme
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Enzymes().GetEnzymeByID(ctx, id)
		if err != nil {
			return notFound(err, ErrEnzymeNotFound)
		}

		e.ID = cur.ID
		e.CreatedAt = cur.CreatedAt
		if err := tx.Enzymes().UpdateEnzyme(ctx, e); err != nil {
			return err
		}
		if cur.Name != e.Name {
			n, err := tx.Batches().RenameEnzyme(ctx, id, e.Name)
			if err != nil {
				return err
			}
			slogx.FromContext(ctx).Debug("enzyme name refreshed on batches", slog.Int64("batches", n))
		}

		out, err = tx.Enzymes().GetEnzymeByID(ctx, id)
		return err
	})
	return out, err
}

// Delete removes the enzyme. Its batches are kept with their copied name.
func (s *EnzymeService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Enzymes().DeleteEnzyme(ctx, id); err != nil {
		return notFound(err, ErrEnzymeNotFound)
	}
	slogx.FromContext(ctx).Info("enzyme deleted", slog.String("enzyme_id", id))
	return nil
}

// YieldSummary aggregates every batch recorded against the enzyme.
func (s *EnzymeService) YieldSummary(ctx context.Context, id string) (yield.Summary, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return yield.Summary{}, err
	}
	batches, err := s.Store.Batches().ListBatches(ctx, store.BatchFilter{EnzymeID: id})
	if err != nil {
		return yield.Summary{}, err
	}
	return yield.Summarize(id, batches), nil
}

// Phylogeny lists the enzymes that carry a Newick tree.
func (s *EnzymeService) Phylogeny(ctx context.Context) ([]domain.Enzyme, error) {
	return s.Store.Enzymes().ListEnzymes(ctx, store.EnzymeFilter{WithNewick: true})
}
