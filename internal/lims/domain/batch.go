package domain

import (
	"strings"
	"time"
)

type BatchStatus string

const (
	BatchInProgress BatchStatus = "in-progress"
	BatchCompleted  BatchStatus = "completed"
	BatchPeakYield  BatchStatus = "peak-yield"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchInProgress, BatchCompleted, BatchPeakYield:
		return true
	}
	return false
}

// CannabinoidOutputs are product percentages of the CBGA input.
type CannabinoidOutputs struct {
	THCA float64
	CBDA float64
	CBCA float64
}

type Batch struct {
	ID          string
	EnzymeID    string
	EnzymeName  string // copy of the enzyme name at write time
	CBGAInput   float64
	Outputs     CannabinoidOutputs
	Timestamp   time.Time
	LabTechID   string
	LabTechName string // copy of the lab tech display name at write time
	Status      BatchStatus
	Notes       string
}

// BatchInput is what a lab tech submits to record a batch.
type BatchInput struct {
	EnzymeID  string
	CBGAInput float64
	Outputs   CannabinoidOutputs
	Notes     string
}

// Validate checks the individual fields. The output sum window is checked
// separately by the yield package.
func (in BatchInput) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(in.EnzymeID) == "" {
		v.Add("enzymeId", "is required")
	}
	if in.CBGAInput < 0 {
		v.Add("cbgaInput", "must not be negative")
	}
	checkPercent(v, "outputs.thca", in.Outputs.THCA)
	checkPercent(v, "outputs.cbda", in.Outputs.CBDA)
	checkPercent(v, "outputs.cbca", in.Outputs.CBCA)
	return v.Err()
}

func checkPercent(v *ValidationError, field string, val float64) {
	if val < 0 || val > 100 {
		v.Add(field, "must be between 0 and 100")
	}
}

// CanTransition reports whether a batch may move from one status to another
// through an explicit update. Peak status is assigned only at creation and
// never leaves.
func CanTransition(from, to BatchStatus) bool {
	return from == BatchInProgress && to == BatchCompleted
}
