package service

import (
	"context"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

// Stats are the dashboard counters.
type Stats struct {
	Batches           int64
	PeakYieldBatches  int64
	InProgressBatches int64
	CompletedBatches  int64
	Enzymes           int64
	Organisms         int64
}

type StatsService struct {
	Store store.Store
}

func (s *StatsService) Get(ctx context.Context) (Stats, error) {
	var (
		st  Stats
		err error
	)
	counts := []struct {
		dst *int64
		fn  func() (int64, error)
	}{
		{&st.Batches, func() (int64, error) { return s.Store.Batches().CountBatches(ctx, store.BatchFilter{}) }},
		{&st.PeakYieldBatches, func() (int64, error) {
			return s.Store.Batches().CountBatches(ctx, store.BatchFilter{Status: domain.BatchPeakYield})
		}},
		{&st.InProgressBatches, func() (int64, error) {
			return s.Store.Batches().CountBatches(ctx, store.BatchFilter{Status: domain.BatchInProgress})
		}},
		{&st.CompletedBatches, func() (int64, error) {
			return s.Store.Batches().CountBatches(ctx, store.BatchFilter{Status: domain.BatchCompleted})
		}},
		{&st.Enzymes, func() (int64, error) { return s.Store.Enzymes().CountEnzymes(ctx) }},
		{&st.Organisms, func() (int64, error) { return s.Store.Organisms().CountOrganisms(ctx) }},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(); err != nil {
			return Stats{}, err
		}
	}
	return st, nil
}
