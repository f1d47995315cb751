package yield_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/yield"
	"github.com/stretchr/testify/require"
)

func batch(id string, thca, cbda, cbca float64) domain.Batch {
	return domain.Batch{ID: id, Outputs: domain.CannabinoidOutputs{THCA: thca, CBDA: cbda, CBCA: cbca}}
}

func TestValidateOutputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  domain.CannabinoidOutputs
		ok   bool
	}{
		{"lower bound inclusive", domain.CannabinoidOutputs{THCA: 95}, true},
		{"just below lower bound", domain.CannabinoidOutputs{THCA: 94.99}, false},
		{"upper bound inclusive", domain.CannabinoidOutputs{THCA: 50, CBDA: 50, CBCA: 5}, true},
		{"just above upper bound", domain.CannabinoidOutputs{THCA: 105.01}, false},
		{"decimal entries summing to 95", domain.CannabinoidOutputs{THCA: 0.02, CBDA: 65.49, CBCA: 29.49}, true},
		{"decimal entries summing to 105", domain.CannabinoidOutputs{THCA: 70.1, CBDA: 30.2, CBCA: 4.7}, true},
		{"decimal entries just below 95", domain.CannabinoidOutputs{THCA: 0.02, CBDA: 65.48, CBCA: 29.49}, false},
		{"typical promiscuous mix", domain.CannabinoidOutputs{THCA: 35, CBDA: 32, CBCA: 33}, true},
		{"nothing produced", domain.CannabinoidOutputs{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := yield.ValidateOutputs(tt.out)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)

			var rangeErr *yield.OutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			require.InDelta(t, yield.Sum(tt.out), rangeErr.Sum, 1e-9)
		})
	}
}

func TestSumRoundsFloatNoise(t *testing.T) {
	t.Parallel()

	require.Equal(t, 95.0, yield.Sum(domain.CannabinoidOutputs{THCA: 0.02, CBDA: 65.49, CBCA: 29.49}))
	require.Equal(t, 100.0, yield.Sum(domain.CannabinoidOutputs{THCA: 0.1, CBDA: 0.2, CBCA: 99.7}))

	// equal decimal totals tie for peak even when float addition differs
	batches := []domain.Batch{batch("a", 0.1, 0.2, 99.7), batch("b", 100, 0, 0)}
	require.True(t, yield.ClassifyPeakYield("a", batches))
	require.True(t, yield.ClassifyPeakYield("b", batches))
}

func TestComputeAverages(t *testing.T) {
	t.Parallel()

	t.Run("empty input is all zeros", func(t *testing.T) {
		require.Equal(t, domain.CannabinoidOutputs{}, yield.ComputeAverages(nil))
		require.Equal(t, domain.CannabinoidOutputs{}, yield.ComputeAverages([]domain.Batch{}))
	})

	t.Run("element-wise mean", func(t *testing.T) {
		got := yield.ComputeAverages([]domain.Batch{
			batch("a", 30, 35, 35),
			batch("b", 45, 52.5, 52.5),
		})
		require.InDelta(t, 37.5, got.THCA, 1e-9)
		require.InDelta(t, 43.75, got.CBDA, 1e-9)
		require.InDelta(t, 43.75, got.CBCA, 1e-9)
	})
}

func TestClassifyPeakYield(t *testing.T) {
	t.Parallel()

	batches := []domain.Batch{
		batch("first", 100, 0, 0),
		batch("second", 50, 50, 0),
		batch("third", 90, 0, 0),
	}

	t.Run("ties are both peak", func(t *testing.T) {
		require.True(t, yield.ClassifyPeakYield("first", batches))
		require.True(t, yield.ClassifyPeakYield("second", batches))
		require.False(t, yield.ClassifyPeakYield("third", batches))
	})

	t.Run("sole batch is peak", func(t *testing.T) {
		require.True(t, yield.ClassifyPeakYield("only", []domain.Batch{batch("only", 40, 30, 26)}))
	})

	t.Run("absent candidate is not peak", func(t *testing.T) {
		require.False(t, yield.ClassifyPeakYield("missing", batches))
		require.False(t, yield.ClassifyPeakYield("missing", nil))
	})

	t.Run("idempotent and non-mutating", func(t *testing.T) {
		before := append([]domain.Batch(nil), batches...)
		first := yield.ClassifyPeakYield("first", batches)
		second := yield.ClassifyPeakYield("first", batches)
		require.Equal(t, first, second)
		require.Equal(t, before, batches)
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	a := batch("a", 30, 35, 35)
	b := batch("b", 45, 52.5, 2.5)
	b.Status = domain.BatchPeakYield

	s := yield.Summarize("enz", []domain.Batch{a, b})
	require.Equal(t, "enz", s.EnzymeID)
	require.Equal(t, 2, s.BatchCount)
	require.InDelta(t, 100.0, s.MaxTotal, 1e-9)
	require.Equal(t, []string{"b"}, s.PeakBatches)

	empty := yield.Summarize("none", nil)
	require.Zero(t, empty.BatchCount)
	require.Equal(t, domain.CannabinoidOutputs{}, empty.Averages)
	require.Empty(t, empty.PeakBatches)
}
