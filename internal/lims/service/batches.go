package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/yield"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

type BatchService struct {
	Store   store.Store
	Metrics *metrics.Metrics // optional
}

// CreateBatch records a batch for actor and classifies it against every
// earlier batch of the same enzyme. A batch whose total is at least as high
// as all others starts as peak-yield; earlier peaks are left alone.
func (s *BatchService) CreateBatch(ctx context.Context, actor domain.Identity, in domain.BatchInput) (domain.Batch, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate fields, then the output window
	in.EnzymeID = strings.TrimSpace(in.EnzymeID)
	if err := in.Validate(); err != nil {
		return domain.Batch{}, err
	}
	if err := yield.ValidateOutputs(in.Outputs); err != nil {
		s.Metrics.BatchRejected()
		l.Info("batch rejected", slog.String("enzyme_id", in.EnzymeID), slog.Any("error", err))
		return domain.Batch{}, err
	}

	b := domain.Batch{
		ID:        idx.New().String(),
		EnzymeID:  in.EnzymeID,
		CBGAInput: in.CBGAInput,
		Outputs:   in.Outputs,
		Timestamp: time.Now().UTC(),
		LabTechID: actor.UserID,
		Status:    domain.BatchInProgress,
		Notes:     strings.TrimSpace(in.Notes),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Resolve the names copied onto the batch
		enzyme, err := tx.Enzymes().GetEnzymeByID(ctx, b.EnzymeID)
		if err != nil {
			return notFound(err, ErrEnzymeNotFound)
		}
		b.EnzymeName = enzyme.Name

		// the token name is only a fallback for accounts removed since sign-in
		u, err := tx.Users().GetUserByID(ctx, actor.UserID)
		switch {
		case err == nil:
			b.LabTechName = u.DisplayName
		case errors.Is(err, store.ErrNotFound):
			b.LabTechName = actor.DisplayName
		default:
			return fmt.Errorf("resolve lab tech: %w", err)
		}

		// 3. Insert
		if err := tx.Batches().CreateBatch(ctx, b); err != nil {
			return fmt.Errorf("create batch: %w", err)
		}

		// 4. Classify against the enzyme's batches, this one included
		all, err := tx.Batches().ListBatches(ctx, store.BatchFilter{EnzymeID: b.EnzymeID})
		if err != nil {
			return err
		}
		if yield.ClassifyPeakYield(b.ID, all) {
			if err := tx.Batches().UpdateBatchStatus(ctx, b.ID, domain.BatchPeakYield); err != nil {
				return err
			}
			b.Status = domain.BatchPeakYield
		}
		return nil
	})
	if err != nil {
		return domain.Batch{}, err
	}

	peak := b.Status == domain.BatchPeakYield
	s.Metrics.BatchCreated(b.EnzymeID, peak)
	l.Info("batch recorded",
		slog.String("batch_id", b.ID),
		slog.String("enzyme_id", b.EnzymeID),
		slog.Float64("total", yield.Total(b)),
		slog.Bool("peak_yield", peak),
	)
	return b, nil
}

func (s *BatchService) Get(ctx context.Context, id string) (domain.Batch, error) {
	b, err := s.Store.Batches().GetBatchByID(ctx, id)
	if err != nil {
		return domain.Batch{}, notFound(err, ErrBatchNotFound)
	}
	return b, nil
}

func (s *BatchService) List(ctx context.Context, f store.BatchFilter) ([]domain.Batch, error) {
	if f.Status != "" && !f.Status.Valid() {
		v := &domain.ValidationError{}
		v.Add("status", "must be one of in-progress, completed, peak-yield")
		return nil, v
	}
	return s.Store.Batches().ListBatches(ctx, f)
}

// UpdateStatus applies an explicit status change. Only in-progress to
// completed is allowed; peak-yield is never set or cleared by hand.
func (s *BatchService) UpdateStatus(ctx context.Context, id string, status domain.BatchStatus) (domain.Batch, error) {
	if !status.Valid() {
		v := &domain.ValidationError{}
		v.Add("status", "must be one of in-progress, completed, peak-yield")
		return domain.Batch{}, v
	}

	var b domain.Batch
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Batches().GetBatchByID(ctx, id)
		if err != nil {
			return notFound(err, ErrBatchNotFound)
		}
		if !domain.CanTransition(cur.Status, status) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, cur.Status, status)
		}
		if err := tx.Batches().UpdateBatchStatus(ctx, id, status); err != nil {
			return err
		}
		cur.Status = status
		b = cur
		return nil
	})
	if err != nil {
		return domain.Batch{}, err
	}

	slogx.FromContext(ctx).Info("batch status updated", slog.String("batch_id", id), slog.String("status", string(status)))
	return b, nil
}

func (s *BatchService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Batches().DeleteBatch(ctx, id); err != nil {
		return notFound(err, ErrBatchNotFound)
	}
	slogx.FromContext(ctx).Info("batch deleted", slog.String("batch_id", id))
	return nil
}
