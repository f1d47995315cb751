// Package yield holds the pure batch computations: output validation,
// averaging across batches and peak-yield classification.
package yield

import (
	"fmt"
	"math"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
)

// Accepted window for the combined THCA+CBDA+CBCA percentage, inclusive.
const (
	MinTotal = 95.0
	MaxTotal = 105.0
)

// OutOfRangeError reports a batch whose outputs do not add up to roughly
// the whole CBGA input.
type OutOfRangeError struct {
	Sum float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("output percentages must sum to ~100%%, current total: %g%%", e.Sum)
}

func (e *OutOfRangeError) Is(target error) bool { return target == domain.ErrValidation }

// sumPrecision is the rounding step applied to sums, well below the
// resolution anyone records percentages at.
const sumPrecision = 1e6

// Sum adds the three product percentages, rounded so that entries like
// 0.02+65.49+29.49 total exactly 95.
func Sum(o domain.CannabinoidOutputs) float64 {
	return math.Round((o.THCA+o.CBDA+o.CBCA)*sumPrecision) / sumPrecision
}

// Total is the combined output percentage of a batch.
func Total(b domain.Batch) float64 { return Sum(b.Outputs) }

// ValidateOutputs rejects outputs whose sum falls outside [MinTotal, MaxTotal].
func ValidateOutputs(o domain.CannabinoidOutputs) error {
	sum := Sum(o)
	if sum < MinTotal || sum > MaxTotal {
		return &OutOfRangeError{Sum: sum}
	}
	return nil
}

// ComputeAverages returns the element-wise mean of the batch outputs. An
// empty input yields all zeros.
func ComputeAverages(batches []domain.Batch) domain.CannabinoidOutputs {
	if len(batches) == 0 {
		return domain.CannabinoidOutputs{}
	}

	var acc domain.CannabinoidOutputs
	for _, b := range batches {
		acc.THCA += b.Outputs.THCA
		acc.CBDA += b.Outputs.CBDA
		acc.CBCA += b.Outputs.CBCA
	}

	n := float64(len(batches))
	return domain.CannabinoidOutputs{
		THCA: acc.THCA / n,
		CBDA: acc.CBDA / n,
		CBCA: acc.CBCA / n,
	}
}

// ClassifyPeakYield reports whether the batch identified by candidateID has
// a total at least as high as every other batch in the slice. Ties count as
// peak. A candidate that is not in the slice is never peak.
//
// The caller decides what to do with the answer; nothing here mutates a
// batch, so asking twice gives the same result.
func ClassifyPeakYield(candidateID string, batches []domain.Batch) bool {
	idx := -1
	for i := range batches {
		if batches[i].ID == candidateID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	candidate := Total(batches[idx])
	for i := range batches {
		if i == idx {
			continue
		}
		if Total(batches[i]) > candidate {
			return false
		}
	}
	return true
}

// Summary is the per-enzyme view used by the yield endpoints.
type Summary struct {
	EnzymeID    string
	BatchCount  int
	Averages    domain.CannabinoidOutputs
	MaxTotal    float64
	PeakBatches []string // ids currently holding peak-yield status
}

// Summarize builds the yield summary of one enzyme from its batches.
func Summarize(enzymeID string, batches []domain.Batch) Summary {
	s := Summary{
		EnzymeID:    enzymeID,
		BatchCount:  len(batches),
		Averages:    ComputeAverages(batches),
		PeakBatches: []string{},
	}
	for _, b := range batches {
		if t := Total(b); t > s.MaxTotal {
			s.MaxTotal = t
		}
		if b.Status == domain.BatchPeakYield {
			s.PeakBatches = append(s.PeakBatches, b.ID)
		}
	}
	return s
}
