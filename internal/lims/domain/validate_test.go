package domain_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/stretchr/testify/require"
)

func TestBatchInputValidate(t *testing.T) {
	t.Parallel()

	ok := domain.BatchInput{
		EnzymeID:  "enz",
		CBGAInput: 100,
		Outputs:   domain.CannabinoidOutputs{THCA: 30, CBDA: 35, CBCA: 35},
	}
	require.NoError(t, ok.Validate())

	bad := domain.BatchInput{CBGAInput: -1, Outputs: domain.CannabinoidOutputs{THCA: 101, CBDA: -2}}
	err := bad.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "enzymeId")
	require.Contains(t, verr.Fields, "cbgaInput")
	require.Contains(t, verr.Fields, "outputs.thca")
	require.Contains(t, verr.Fields, "outputs.cbda")
	require.NotContains(t, verr.Fields, "outputs.cbca")
}

func TestEnzymeValidate(t *testing.T) {
	t.Parallel()

	score := 0.87
	e := domain.Enzyme{
		Name:           "THCA Synthase Modern",
		Type:           domain.EnzymeModern,
		Specialization: domain.SpecializationTHCA,
		Metadata:       domain.EnzymeMetadata{Sequence: "MNCSAFSFWF", ConfidenceScore: &score},
		NewickData:     "((A1A2a:0.1,Ca:0.2):0.05,HCa:0.3);",
	}
	require.NoError(t, e.Validate())

	bad := 1.5
	e.Metadata.ConfidenceScore = &bad
	e.Type = "primordial"
	e.NewickData = "((A,B);"

	var verr *domain.ValidationError
	require.True(t, errors.As(e.Validate(), &verr))
	require.Len(t, verr.Fields, 3)
}

func TestValidNewick(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ValidNewick("(A,B,(C,D));"))
	require.True(t, domain.ValidNewick("('odd (name)',B);"))
	require.False(t, domain.ValidNewick("(A,B)"))
	require.False(t, domain.ValidNewick("(A,B));"))
	require.False(t, domain.ValidNewick("(A;B);"))
}

func TestOrganismValidate(t *testing.T) {
	t.Parallel()

	o := domain.Organism{Name: "S. cerevisiae", Type: domain.OrganismYeast, Strain: "CEN.PK2-1C"}
	require.NoError(t, o.Validate())

	o.Strain = " "
	require.ErrorIs(t, o.Validate(), domain.ErrValidation)
}

func TestUniqueIDs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b", "c"}, domain.UniqueIDs([]string{"a", "", "b", "a", " c "}))
	require.Empty(t, domain.UniqueIDs(nil))
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	require.True(t, domain.CanTransition(domain.BatchInProgress, domain.BatchCompleted))
	require.False(t, domain.CanTransition(domain.BatchPeakYield, domain.BatchCompleted))
	require.False(t, domain.CanTransition(domain.BatchPeakYield, domain.BatchInProgress))
	require.False(t, domain.CanTransition(domain.BatchInProgress, domain.BatchPeakYield))
	require.False(t, domain.CanTransition(domain.BatchCompleted, domain.BatchInProgress))
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	require.NoError(t, domain.ValidateRegistration("tech@lab.example", "Tech", "correct-horse"))

	var verr *domain.ValidationError
	require.True(t, errors.As(domain.ValidateRegistration("not-an-email", "", "short"), &verr))
	require.Len(t, verr.Fields, 3)
}
